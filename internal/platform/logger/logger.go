// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a structured JSON logger on stdout. Every record carries the
// service name and, when set, the bus instance name.
func New(level slog.Level, instance string) *slog.Logger {
	return NewWithWriter(os.Stdout, level, instance)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, level slog.Level, instance string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	log := slog.New(slog.NewJSONHandler(w, opts)).With("service", "hiebus")
	if instance != "" {
		log = log.With("instance", instance)
	}
	return log
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
