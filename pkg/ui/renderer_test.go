package ui_test

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/codepack/codepack/pkg/types"
	"github.com/codepack/codepack/pkg/ui"
	"github.com/codepack/codepack/pkg/ui/terminal"
	"github.com/codepack/codepack/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *types.Result {
	return &types.Result{
		Output: "codebase.txt",
		Records: []types.Record{
			{Path: "./a/x.cpp", Bytes: 12},
			{Path: "./a/y.h", Err: errors.New("permission denied")},
		},
		Skipped: 1,
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &text.Renderer{}, r, "non-file writers get plain text")

	r, err = ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)
	assert.IsType(t, &terminal.Renderer{}, r)

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	r, err = ui.NewRenderer(ui.FormatAuto, f)
	require.NoError(t, err)
	assert.IsType(t, &text.Renderer{}, r, "redirected files get plain text")

	_, err = ui.NewRenderer(ui.Format(42), &buf)
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	assert.Equal(t,
		"Done! Code saved to codebase.txt\n"+
			"2 files packed, 1 unreadable\n"+
			"  unreadable: ./a/y.h\n",
		buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	out := buf.String()
	assert.Contains(t, out, "Done!")
	assert.Contains(t, out, "codebase.txt")
	assert.Contains(t, out, "2 files packed, 1 unreadable")
	assert.Contains(t, out, "./a/y.h")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New("boom")))
	assert.Contains(t, buf.String(), "Error: boom")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))

	var got types.Summary
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleResult().Summary(), got)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}
