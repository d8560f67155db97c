// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/codepack/codepack/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderResult renders the result summary as JSON
func (r *Renderer) RenderResult(result *types.Result) error {
	return r.encoder.Encode(result.Summary())
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}
