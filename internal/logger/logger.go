// Package logger builds the zerolog logger used by the roundpair command.
// Diagnostics go to stderr (or a file) so that stdout only carries the
// rendered rounds.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger together with the file it may own.
type Logger struct {
	logger zerolog.Logger
	file   *os.File
}

// Config holds logger configuration.
type Config struct {
	Level  string `mapstructure:"level" toml:"level"`   // debug, info, warn, error, disabled
	Pretty bool   `mapstructure:"pretty" toml:"pretty"` // human-readable console output
	File   string `mapstructure:"file" toml:"file"`     // optional log file, appended to
}

// DefaultConfig keeps the command quiet unless something goes wrong.
func DefaultConfig() Config {
	return Config{Level: "warn", Pretty: true}
}

// New creates a logger writing to console, which defaults to os.Stderr when
// nil. An unknown level falls back to warn.
func New(cfg Config, console io.Writer) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	if console == nil {
		console = os.Stderr
	}
	var writer = console
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.Kitchen,
			NoColor:    console != os.Stderr,
		}
	}

	var file *os.File
	if cfg.File != "" {
		if err = os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = zerolog.MultiLevelWriter(writer, file)
	}

	return &Logger{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
		file:   file,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Zerolog returns the underlying zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.logger
}
