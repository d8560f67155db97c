package config

import (
	"bytes"

	"github.com/codepack/codepack/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported Marshal formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Marshal renders the configuration in the given format
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(c); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", format).
			WithDetail("supported", []string{FormatTOML, FormatYAML})
	}
}
