// Package logging configures structured, colorized logging for provisionctl.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Level is the log level used across provisionctl commands.
type Level slog.Level

const (
	// LevelDebug enables command-by-command diagnostics.
	LevelDebug Level = Level(slog.LevelDebug)
	// LevelInfo is the default level.
	LevelInfo Level = Level(slog.LevelInfo)
	// LevelWarn reports recoverable problems only.
	LevelWarn Level = Level(slog.LevelWarn)
	// LevelError reports failures only.
	LevelError Level = Level(slog.LevelError)
)

// ParseLevel converts a textual level into a Level, defaulting to info.
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// NewLogger builds a slog.Logger with a tint handler on the given writer.
// Color is disabled when NO_COLOR is set so CI logs stay clean.
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      slog.Level(level),
		TimeFormat: time.TimeOnly,
		NoColor:    os.Getenv("NO_COLOR") != "",
	})

	return slog.New(handler)
}
