// Package ui renders pack results and errors in terminal (rich), text
// (plain) or JSON form.
package ui

import (
	"fmt"
	"io"

	"github.com/codepack/codepack/pkg/types"
	"github.com/codepack/codepack/pkg/ui/json"
	"github.com/codepack/codepack/pkg/ui/terminal"
	"github.com/codepack/codepack/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders the confirmation and summary of a pack run
	RenderResult(result *types.Result) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a renderer for format writing to output.
// FormatAuto is resolved with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(output)
	}
	switch format {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
