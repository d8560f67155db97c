package config

import (
	"path/filepath"
	"strings"

	"github.com/codepack/codepack/pkg/errors"
)

// PackConfig holds the extension set, ignore set and output path
type PackConfig struct {
	Extensions []string `koanf:"extensions" toml:"extensions" yaml:"extensions"`
	IgnoreDirs []string `koanf:"ignore_dirs" toml:"ignore_dirs" yaml:"ignore_dirs"`
	Output     string   `koanf:"output" toml:"output" yaml:"output"`
}

// LoggingConfig holds runtime-adjustable logging settings
type LoggingConfig struct {
	Level string `koanf:"level" toml:"level,omitempty" yaml:"level,omitempty"`
	File  string `koanf:"file" toml:"file,omitempty" yaml:"file,omitempty"`
}

// Config is the configuration for a codepack run. It is built once by
// Load or Default and must not be modified afterwards.
type Config struct {
	Pack    PackConfig    `koanf:"pack" toml:"pack" yaml:"pack"`
	Logging LoggingConfig `koanf:"logging" toml:"logging" yaml:"logging"`
}

// Extensions returns a copy of the accepted file-name suffixes
func (c *Config) Extensions() []string {
	return append([]string(nil), c.Pack.Extensions...)
}

// IgnoreDirs returns a copy of the excluded directory basenames
func (c *Config) IgnoreDirs() []string {
	return append([]string(nil), c.Pack.IgnoreDirs...)
}

// Output returns the output file path
func (c *Config) Output() string {
	return c.Pack.Output
}

// Validate checks the configuration invariants
func (c *Config) Validate() error {
	if len(c.Pack.Extensions) == 0 {
		return errors.New(errors.ErrConfigInvalid, "extension set is empty")
	}
	for i, ext := range c.Pack.Extensions {
		if ext == "" {
			return errors.Newf(errors.ErrConfigInvalid, "extension %d is empty", i)
		}
	}

	if len(c.Pack.IgnoreDirs) == 0 {
		return errors.New(errors.ErrConfigInvalid, "ignore set is empty")
	}
	ignored := make(map[string]bool, len(c.Pack.IgnoreDirs))
	for i, dir := range c.Pack.IgnoreDirs {
		if dir == "" || strings.ContainsAny(dir, `/\`) {
			return errors.Newf(errors.ErrConfigInvalid, "ignore entry %d must be a plain directory name", i).
				WithDetail("entry", dir)
		}
		ignored[dir] = true
	}

	if c.Pack.Output == "" {
		return errors.New(errors.ErrConfigInvalid, "output path is empty")
	}
	dir := filepath.Dir(filepath.Clean(c.Pack.Output))
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if ignored[part] {
			return errors.Newf(errors.ErrConfigInvalid, "output path %s lies under ignored directory %s", c.Pack.Output, part).
				WithDetail("output", c.Pack.Output)
		}
	}

	return nil
}

// dedupe removes repeated entries, keeping first-seen order
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
