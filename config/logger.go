package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger creates the structured JSON logger shared by the whole service.
func NewLogger(cfg *Config) zerolog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg *Config) zerolog.Logger {
	logger := zerolog.New(w).With().
		Timestamp().
		Str("service", "storefront").
		Str("env", cfg.Env).
		Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}
