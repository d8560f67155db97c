package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/codepack/codepack/internal/cli"
	"github.com/codepack/codepack/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CODEPACK",
		Section: "1",
		Source:  "codepack " + version.Version,
		Manual:  "codepack manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
