package config

import (
	"log/slog"
	"os"
)

// serviceName tags every log line so aggregated output can be told apart
// from the DeepFace sidecar's.
const serviceName = "eduface-api"

// NewLogger builds the process logger: JSON at info level in production,
// debug-level text elsewhere, with source locations in development.
func NewLogger(env string) *slog.Logger {
	var handler slog.Handler

	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: env == "development",
		})
	}

	return slog.New(handler).With(slog.String("service", serviceName))
}
