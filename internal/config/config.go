package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PixPMusic/lumamap/internal/tuning"
)

// Config holds generator settings
type Config struct {
	CCMode  bool   `json:"cc_mode"` // Emit key type overrides
	Tuning  string `json:"tuning"`  // Tuning system name for the tuning table
	Verbose bool   `json:"verbose"` // Debug logging
}

// Default returns the settings used when no config file is given
func Default() *Config {
	return &Config{
		Tuning: tuning.Default().Name,
	}
}

// Load reads the config from path, returning defaults if path is empty or
// the file does not exist
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Ensure a tuning is always selected
	if cfg.Tuning == "" {
		cfg.Tuning = tuning.Default().Name
	}

	return cfg, cfg.Validate()
}

// Validate checks that the settings can be used
func (c *Config) Validate() error {
	if _, err := tuning.ByName(c.Tuning); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TuningSystem returns the selected tuning
func (c *Config) TuningSystem() (tuning.System, error) {
	return tuning.ByName(c.Tuning)
}
