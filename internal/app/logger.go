package app

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// newLogger creates a logger for one App. It does not touch the global
// logger, so tests can run several apps side by side. The text format is
// rendered by charmbracelet/log for humans at a terminal, the json format by
// slog for log collectors.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: true,
	})
	return slog.New(handler)
}
