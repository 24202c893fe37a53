// Package logger builds the zerolog logger used across commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing JSON lines to w at level.
// An unknown level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}

// Console returns a human-readable logger for non-interactive commands.
func Console(w io.Writer, level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// OpenFile opens path for appending and returns a logger writing to it.
// The returned closer must be called on exit.
func OpenFile(path, level string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, level), f, nil
}
