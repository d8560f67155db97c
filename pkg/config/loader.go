package config

import (
	"strings"

	"github.com/codepack/codepack/pkg/errors"
	"github.com/codepack/codepack/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "CODEPACK_"

// Load builds the configuration from the embedded defaults and the
// CODEPACK_LOGGING_* environment variables
func Load() (*Config, error) {
	return load(true)
}

// Default returns the built-in configuration without environment overrides
func Default() (*Config, error) {
	return load(false)
}

// MustDefault is like Default but panics on error; the embedded defaults
// are part of the binary, so failure means a broken build
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(err)
	}
	return cfg
}

func load(withEnv bool) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Environment, logging section only
	if withEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 3. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 4. Post-process
	cfg.Pack.Extensions = dedupe(cfg.Pack.Extensions)
	cfg.Pack.IgnoreDirs = dedupe(cfg.Pack.IgnoreDirs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("extensions", cfg.Pack.Extensions).
		Strs("ignoreDirs", cfg.Pack.IgnoreDirs).
		Str("output", cfg.Pack.Output).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps CODEPACK_LOGGING_LEVEL to logging.level; anything outside
// the logging section is dropped so the pack settings stay built-in
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, ok := strings.Cut(key, "_")
	if !ok || section != "logging" {
		return ""
	}
	return section + "." + name
}
