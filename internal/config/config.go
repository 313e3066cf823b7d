// Package config loads advisor configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete advisor configuration
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	UI         UISettings         `hcl:"ui,block"`
}

// SimulationSettings controls the Monte Carlo engine
type SimulationSettings struct {
	TimeLimitMs int     `hcl:"time_limit_ms,optional"`
	Threshold   float64 `hcl:"threshold,optional"`
	Workers     int     `hcl:"workers,optional"`
	Seed        int64   `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			TimeLimitMs: 10000,
			Threshold:   0.5,
			Workers:     1,
			Seed:        0,
		},
		UI: UISettings{
			LogLevel: "warn",
			LogFile:  "",
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an
// error; defaults are returned.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if config.Simulation.TimeLimitMs == 0 {
		config.Simulation.TimeLimitMs = defaults.Simulation.TimeLimitMs
	}
	if config.Simulation.Threshold == 0 {
		config.Simulation.Threshold = defaults.Simulation.Threshold
	}
	if config.Simulation.Workers == 0 {
		config.Simulation.Workers = defaults.Simulation.Workers
	}
	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.TimeLimitMs <= 0 {
		return fmt.Errorf("time limit must be positive")
	}

	if c.Simulation.Threshold < 0 || c.Simulation.Threshold > 1 {
		return fmt.Errorf("threshold must be between 0 and 1")
	}

	if c.Simulation.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}
