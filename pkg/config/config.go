package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads the configuration from the given path. A missing file is not an
// error: callers always receive a fully-populated Config with sane defaults.
// Fields explicitly set in the file override the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return NewDefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// Parse decodes raw TOML into a Config without applying defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults fills zero-value fields in cfg with values from NewDefaultConfig().
func applyDefaults(cfg *Config) {
	defaults := NewDefaultConfig()

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = defaults.Server.Listen
	}

	if cfg.Upstream.URL == "" {
		cfg.Upstream.URL = defaults.Upstream.URL
	}
	if cfg.Upstream.Model == "" {
		cfg.Upstream.Model = defaults.Upstream.Model
	}
	if cfg.Upstream.MaxTokens == 0 {
		cfg.Upstream.MaxTokens = defaults.Upstream.MaxTokens
	}
	if cfg.Upstream.Temperature == 0 {
		cfg.Upstream.Temperature = defaults.Upstream.Temperature
	}

	if cfg.Image.Model == "" {
		cfg.Image.Model = defaults.Image.Model
	}
	if cfg.Image.Size == "" {
		cfg.Image.Size = defaults.Image.Size
	}

	if cfg.Client.Target == "" {
		cfg.Client.Target = defaults.Client.Target
	}
}
