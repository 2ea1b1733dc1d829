// Package config loads process configuration. Precedence per setting:
// environment variable, then config file, then built-in default.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = 3001
	DefaultDBPath     = "data/blog.db"
	defaultConfigFile = "config.yaml"
)

// Config holds all configuration for the application.
type Config struct {
	Port   int    `yaml:"port"`
	DBPath string `yaml:"dbPath"`
}

// Load reads configuration from the environment and the optional YAML
// config file. A .env file in the working directory is honored if present.
// The config file path itself can be overridden with CONFIG_FILE.
func Load() (*Config, error) {
	// Missing .env is fine; real environment still applies.
	_ = godotenv.Load()

	cfg := &Config{Port: DefaultPort, DBPath: DefaultDBPath}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}

	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
