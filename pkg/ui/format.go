package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a pack summary is rendered
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText from the output writer
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// formatNames maps each accepted --format value to its Format. The first
// name listed for a Format is its canonical one.
var formatNames = []struct {
	name   string
	format Format
}{
	{"auto", FormatAuto},
	{"term", FormatTerminal},
	{"terminal", FormatTerminal},
	{"text", FormatText},
	{"plain", FormatText},
	{"json", FormatJSON},
}

func (f Format) String() string {
	for _, n := range formatNames {
		if n.format == f {
			return n.name
		}
	}
	return "unknown"
}

// ParseFormat parses a --format value, case-insensitively. An empty value
// means FormatAuto.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatAuto, nil
	}
	for _, n := range formatNames {
		if n.name == s {
			return n.format, nil
		}
	}
	return FormatAuto, fmt.Errorf("unknown format: %s (want auto, term, text or json)", s)
}

// DetectFormat picks styled output only for a colour-capable terminal.
// Anything that is not an *os.File, a redirected file, NO_COLOR, or an
// ASCII-only terminal profile gets plain text.
func DetectFormat(w io.Writer) Format {
	f, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(f).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
