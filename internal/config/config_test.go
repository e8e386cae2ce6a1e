package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level  = "debug"
log_format = "json"
no_color   = true
player     = "alice"
lane       = 7
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:  "debug",
		LogFormat: "json",
		NoColor:   true,
		Player:    "alice",
		Lane:      7,
	}, cfg)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `lane = 3`))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "anonymous", cfg.Player)
	assert.Equal(t, 3, cfg.Lane)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `log_level = `, "failed to parse HCL file"},
		{"unknown attribute", `colour = true`, "failed to decode HCL"},
		{"bad level", `log_level = "loud"`, "invalid log_level"},
		{"bad format", `log_format = "xml"`, "invalid log_format"},
		{"negative lane", `lane = -1`, "invalid lane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
