package logging

import (
	"log/slog"
	"strings"
)

// LineWriter forwards subprocess output to a logger, one record per line.
// Package-manager output is noisy; routing it through the logger keeps the
// trace and the output interleaved in order.
type LineWriter struct {
	logger *slog.Logger
	attr   string
}

// NewLineWriter constructs a LineWriter that logs lines under the given key.
func NewLineWriter(logger *slog.Logger, attr string) *LineWriter {
	if attr == "" {
		attr = "line"
	}
	return &LineWriter{logger: logger, attr: attr}
}

// Write logs each non-empty line of p at info level.
func (w *LineWriter) Write(p []byte) (int, error) {
	if w.logger == nil {
		return len(p), nil
	}
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		w.logger.Info("command output", w.attr, line)
	}
	return len(p), nil
}
