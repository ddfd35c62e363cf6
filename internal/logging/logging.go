// Package logging provides structured logging built on zerolog.
//
// Loggers are carried on the context so that every component can retrieve
// the logger configured by the CLI entrypoint with FromContext. Components
// tag their log lines with a "component" field via ComponentLogger.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Unparseable values fall back to "info".
	Level string
	// Format is "console" for human-readable output or "json" for
	// machine-readable output.
	Format string
	// Output selects the destination: "stderr", "stdout", or "file".
	Output string
	// File is the log file path when Output is "file".
	File string
	// Caller enables caller annotation on log lines.
	Caller bool
}

// Result describes the logger that New produced, including whether the
// configured file destination could actually be used.
type Result struct {
	Logger       zerolog.Logger
	UsingFile    bool
	FilePath     string
	FallbackUsed bool
	// FallbackReason explains why file output was abandoned.
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. When cfg requests file output but the file
// cannot be opened, New falls back to stderr and records the reason in the
// returned Result rather than failing the command.
func New(cfg Config) Result {
	result := Result{}

	var out io.Writer
	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "file":
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			out = os.Stderr
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			out = file
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
		}
	default:
		out = os.Stderr
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	builder := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		builder = builder.Caller()
	}
	result.Logger = builder.Logger()

	return result
}

// FromContext returns the logger stored on ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
