// Package logger builds the root zerolog logger for the service.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns the root logger for the named service. The level defaults to
// info; MOOD_TRACKER_LOG_LEVEL=debug enables per-request access logs.
func New(serviceName string) zerolog.Logger {
	level := zerolog.InfoLevel
	if v := os.Getenv("MOOD_TRACKER_LOG_LEVEL"); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
