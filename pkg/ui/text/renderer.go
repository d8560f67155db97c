// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/codepack/codepack/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult prints the confirmation line, a count line and any unreadable files
func (r *Renderer) RenderResult(result *types.Result) error {
	s := result.Summary()
	if _, err := fmt.Fprintln(r.output, s.Confirmation()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.output, "%d files packed, %d unreadable\n", s.Files, s.Failed); err != nil {
		return err
	}
	for _, path := range s.Unreadable {
		if _, err := fmt.Fprintf(r.output, "  unreadable: %s\n", path); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}
