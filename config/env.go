package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvConfig   = "SOLITAIRE_CONFIG"
	EnvSeed     = "SOLITAIRE_SEED"
	EnvLogLevel = "SOLITAIRE_LOG_LEVEL"
)

// FromEnv loads the file named by SOLITAIRE_CONFIG, or the defaults when it is
// unset, then applies the SOLITAIRE_SEED and SOLITAIRE_LOG_LEVEL overrides.
func FromEnv() (*Config, error) {
	var cfg *Config
	if path := os.Getenv(EnvConfig); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		d := Default()
		cfg = &d
	}

	if val := os.Getenv(EnvSeed); val != "" {
		seed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Shuffle.Seed = &seed
	}
	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.LogLevel = val
		cfg.ApplyDefaults()
		if _, err := cfg.Level(); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	return cfg, nil
}
