// Package config builds codepack's immutable configuration value.
//
// The pack settings (extension set, ignore set, output path) come from an
// embedded TOML file and are fixed for a given binary. Only the logging
// section can be adjusted at runtime, through CODEPACK_LOGGING_LEVEL and
// CODEPACK_LOGGING_FILE.
package config
