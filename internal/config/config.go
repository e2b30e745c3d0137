// Package config loads the hotelx configuration: compiled defaults, then an
// optional YAML config file, then environment variables (with an optional
// .env file loaded first), each layer overriding the previous one.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/me/hotelx/pkg/hotelapi"
)

// EnvConfigFile overrides the config file location.
const EnvConfigFile = "HOTELX_CONFIG"

// Config holds the CLI-side settings.
type Config struct {
	BackendURL string `yaml:"backend_url"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

// Default returns the compiled-in CLI defaults.
func Default() Config {
	return Config{
		BackendURL: hotelapi.DefaultHost,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load resolves the CLI configuration. A missing config file is not an
// error; a malformed one is.
func Load() (Config, error) {
	_ = godotenv.Load() // best effort; absence of .env is normal

	cfg := Default()

	path, err := Path()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(hotelapi.EnvBackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("HOTELX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HOTELX_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg, nil
}

// Path returns the config file location: $HOTELX_CONFIG when set, otherwise
// ~/.hotelx/config.yaml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".hotelx", "config.yaml"), nil
}

// ServerConfig holds the dev server settings.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	DBPath         string `yaml:"db_path"`
	JWTSecret      string `yaml:"jwt_secret"`
	AccessTTLMin   int    `yaml:"access_ttl_min"`
	RefreshTTLDays int    `yaml:"refresh_ttl_days"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

// DefaultServerConfig returns dev-friendly defaults. The listen port matches
// the backend root the client falls back to.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":5172",
		DBPath:         ":memory:",
		JWTSecret:      "dev-only-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// LoadServer resolves the dev server configuration from defaults and
// environment variables.
func LoadServer() ServerConfig {
	_ = godotenv.Load()

	cfg := DefaultServerConfig()
	if v := os.Getenv("HOTELX_DEV_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("HOTELX_DEV_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("HOTELX_DEV_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("HOTELX_DEV_ACCESS_TTL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AccessTTLMin = n
		}
	}
	if v := os.Getenv("HOTELX_DEV_REFRESH_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RefreshTTLDays = n
		}
	}
	if v := os.Getenv("HOTELX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HOTELX_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}
