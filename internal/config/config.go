// Package config handles configuration loading and validation for the
// returns service.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration.
type Config struct {
	Server            ServerConfig      `yaml:"server"`
	Database          DatabaseConfig    `yaml:"database"`
	EmailVerification EmailConfig       `yaml:"email_verification"`
	AuthTokens        map[string]string `yaml:"auth_tokens"` // token -> user id
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type EmailConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: "data/returns.db"},
		EmailVerification: EmailConfig{
			BaseURL:        "", // empty disables the remote call
			TimeoutSeconds: 2,
		},
		AuthTokens: map[string]string{},
	}
}

// Load reads the config file at path over the defaults. A missing file is
// not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return cfg, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Database.Path == "" {
		return cfg, fmt.Errorf("database path must not be empty")
	}

	return cfg, nil
}
