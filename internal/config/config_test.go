package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.Simulation.TimeLimitMs)
	assert.Equal(t, 0.5, cfg.Simulation.Threshold)
	assert.Equal(t, 1, cfg.Simulation.Workers)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaultsForMissingValues(t *testing.T) {
	path := writeConfig(t, `
simulation {
  workers = 4
}

ui {
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, 10000, cfg.Simulation.TimeLimitMs)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
simulation {
  time_limit_ms = 2500
  threshold     = 0.6
  workers       = 8
  seed          = 12345
}

ui {
  log_level = "debug"
  log_file  = "advisor.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2500, cfg.Simulation.TimeLimitMs)
	assert.Equal(t, 0.6, cfg.Simulation.Threshold)
	assert.Equal(t, 8, cfg.Simulation.Workers)
	assert.Equal(t, int64(12345), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "advisor.log", cfg.UI.LogFile)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, `simulation { time_limit_ms = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative time limit", func(c *Config) { c.Simulation.TimeLimitMs = -1 }},
		{"threshold above one", func(c *Config) { c.Simulation.Threshold = 1.5 }},
		{"zero workers", func(c *Config) { c.Simulation.Workers = 0 }},
		{"unknown log level", func(c *Config) { c.UI.LogLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerbot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
