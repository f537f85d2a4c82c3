package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Service tags every record so contact-api lines can be split out of a shared
// log stream.
const Service = "contact-api"

var Log *slog.Logger

func init() {
	// safe defaults for tests and tools, main overrides from config
	Initialize("info", false)
}

// Initialize replaces the global logger and the slog default.
func Initialize(level string, useJSON bool) {
	Log = New(os.Stdout, level, useJSON)
	slog.SetDefault(Log)
}

// New builds a logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string, useJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if useJSON {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", Service))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
