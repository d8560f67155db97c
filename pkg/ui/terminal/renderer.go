// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/codepack/codepack/pkg/types"
	"github.com/codepack/codepack/pkg/ui/styles"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders the confirmation with the output path highlighted
func (r *Renderer) RenderResult(result *types.Result) error {
	s := result.Summary()

	line := styles.GetStyle("Success").Render("Done!") + " Code saved to " + styles.GetStyle("FilePath").Render(s.Output)
	if _, err := fmt.Fprintln(r.output, line); err != nil {
		return err
	}

	counts := fmt.Sprintf("%d files packed, %d unreadable", s.Files, s.Failed)
	if _, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render(counts)); err != nil {
		return err
	}

	for _, path := range s.Unreadable {
		if _, err := fmt.Fprintln(r.output, styles.GetStyle("Warning").Render("  unreadable: "+path)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return err2
}
