package packer

import (
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/codepack/codepack/pkg/errors"
)

// SeparatorWidth is the number of '=' characters in a header rule
const SeparatorWidth = 50

var separator = strings.Repeat("=", SeparatorWidth)

// Header returns the header block written before a file's content
func Header(path string) string {
	var b strings.Builder
	b.Grow(2*SeparatorWidth + len(path) + 16)
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteString("\nFILE PATH: ")
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteString("\n\n")
	return b.String()
}

// ErrorPlaceholder returns the text written instead of content for an unreadable file
func ErrorPlaceholder(err error) string {
	return fmt.Sprintf("[Error reading file: %s]", describe(err))
}

// describe strips the codepack error code so the placeholder carries the
// underlying reason only
func describe(err error) string {
	var cpErr *errors.CodepackError
	if stderrors.As(err, &cpErr) {
		if cpErr.Wrapped != nil {
			return cpErr.Wrapped.Error()
		}
		return cpErr.Message
	}
	return err.Error()
}

// checkUTF8 returns an ErrEncoding error if content is not valid UTF-8
func checkUTF8(content []byte) error {
	if utf8.Valid(content) {
		return nil
	}
	offset := 0
	for offset < len(content) {
		r, size := utf8.DecodeRune(content[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return errors.Newf(errors.ErrEncoding, "invalid UTF-8 byte 0x%02x at offset %d", content[offset], offset).
		WithDetail("offset", offset)
}
