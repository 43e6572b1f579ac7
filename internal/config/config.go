// Package config loads the compiler driver's tauc.yaml settings: log
// level, whether the compile cache is enabled, and where it lives.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCachePath is used when a config omits CachePath but enables
// the cache.
const DefaultCachePath = "./tauc-cache.db"

// Config is the top-level tauc.yaml document.
type Config struct {
	LogLevel     string `yaml:"logLevel"`
	CacheEnabled bool   `yaml:"cacheEnabled"`
	CachePath    string `yaml:"cachePath"`
}

// Default returns the configuration used when no tauc.yaml is present.
func Default() *Config {
	return &Config{LogLevel: "info", CacheEnabled: false, CachePath: DefaultCachePath}
}

// Load reads and parses path. A missing file is not an error — callers
// get Default() instead, since tauc.yaml is optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.CacheEnabled && cfg.CachePath == "" {
		cfg.CachePath = DefaultCachePath
	}
	return cfg, nil
}
