// Package logging wires the CLI's structured logger on top of
// charmbracelet/log. Commands pull the logger out of their context; the
// decoration engine itself never logs.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Shared default for commands that run without a context logger.
//
//nolint:gochecknoglobals // single process-wide fallback logger
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New returns a logger writing to stderr at the named level. Level names
// are case-insensitive; unknown names fall back to info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the shared logger, creating it at info level on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetDefault replaces the shared logger. The replacement sticks even when
// Default has not been called yet.
func SetDefault(logger *log.Logger) {
	defaultOnce.Do(func() {})
	defaultLogger = logger
}

// SetLevel adjusts the shared logger's level in place.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
