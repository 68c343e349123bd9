// Package logger provides structured logging for the label worker.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps log/slog with level parsing from configuration strings.
type Logger struct {
	internal *slog.Logger
}

// New creates a logger writing text records to w at the given level.
// Unknown levels fall back to info.
func New(level string, w io.Writer) *Logger {
	lvl := new(slog.LevelVar)

	switch strings.ToLower(level) {
	case "debug":
		lvl.Set(slog.LevelDebug)
	case "warn":
		lvl.Set(slog.LevelWarn)
	case "error":
		lvl.Set(slog.LevelError)
	default:
		lvl.Set(slog.LevelInfo)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})

	return &Logger{internal: slog.New(handler)}
}

// NewStderr creates a logger writing to standard error.
func NewStderr(level string) *Logger {
	return New(level, os.Stderr)
}

// NewDiscard creates a logger that drops everything. Meant for tests.
func NewDiscard() *Logger {
	return New("error", io.Discard)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// With creates a child logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{internal: l.internal.With(args...)}
}
