package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init sets up the shared JSON logger. LOG_LEVEL overrides the default
// info level (debug, info, warn, error).
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	Log = slog.New(handler)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
