package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/tenpin/internal/config"
)

// setupLogger configures zerolog with pretty console output, or structured
// JSON when the config asks for it
func setupLogger(w io.Writer, cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.LogFormat == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
