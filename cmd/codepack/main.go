package main

import (
	"os"

	"github.com/codepack/codepack/internal/cli"
	"github.com/codepack/codepack/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr); rerr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(1)
	}
}
