package main

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/lox/tenpin/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `help:"Path to HCL config file" default:"${config_file}" type:"path"`
	Debug    bool   `help:"Enable debug logging"`
	JSONLogs bool   `name:"json-logs" help:"Write logs as JSON"`
	NoColor  bool   `help:"Disable colored scorecards"`

	out    io.Writer
	errOut io.Writer
}

// setup loads the config file and applies flag overrides on top of it.
func (g *Globals) setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}
	if g.JSONLogs {
		cfg.LogFormat = "json"
	}
	if g.NoColor {
		cfg.NoColor = true
	}

	logger := setupLogger(g.errOut, cfg)
	logger.Debug().
		Str("config", g.Config).
		Str("player", cfg.Player).
		Int("lane", cfg.Lane).
		Msg("Loaded configuration")
	return cfg, logger, nil
}
