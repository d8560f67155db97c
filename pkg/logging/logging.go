package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls logger setup beyond the verbosity count
type Options struct {
	// Verbosity is the -v count: 0 WARN, 1 INFO, 2 DEBUG, 3+ TRACE
	Verbosity int

	// Level overrides Verbosity when set (any zerolog level name)
	Level string

	// File is the log file path; empty selects the XDG state location
	File string

	// Console receives the human-readable output, os.Stderr when nil
	Console io.Writer
}

// SetupConsoleLogger configures the global logger to write to console only.
// Commands that never load the configuration stay on this logger.
func SetupConsoleLogger(verbosity int, console io.Writer) {
	closeLogFile()
	zerolog.SetGlobalLevel(levelFor(Options{Verbosity: verbosity}))
	log.Logger = zerolog.New(newConsoleWriter(console)).With().Timestamp().Logger()
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// SetupLoggerWithOptions configures the global logger from opts, replacing
// any logger set up earlier
func SetupLoggerWithOptions(opts Options) {
	closeLogFile()
	zerolog.SetGlobalLevel(levelFor(opts))

	writers := []io.Writer{newConsoleWriter(opts.Console)}

	logFile := opts.File
	if logFile == "" {
		logFile = getLogFilePath()
	}
	handle, err := setupLogFile(logFile)
	if err == nil {
		openLogFile = handle
		writers = append(writers, handle)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// openLogFile is the handle owned by the current global logger
var openLogFile *os.File

func closeLogFile() {
	if openLogFile != nil {
		_ = openLogFile.Close()
		openLogFile = nil
	}
}

func newConsoleWriter(console io.Writer) zerolog.ConsoleWriter {
	if console == nil {
		console = os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(console),
	}
}

func levelFor(opts Options) zerolog.Level {
	if opts.Level != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level)); err == nil && lvl != zerolog.NoLevel {
			return lvl
		}
	}
	switch opts.Verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the path to the log file under XDG_STATE_HOME
// (~/.local/state/codepack/codepack.log by default)
func getLogFilePath() string {
	path, err := xdg.StateFile(filepath.Join("codepack", "codepack.log"))
	if err != nil {
		return filepath.Join(os.TempDir(), "codepack.log")
	}
	return path
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
