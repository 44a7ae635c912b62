// Package config provides runtime configuration values for the storefront.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultAdminPassword is the legacy shared secret. A plaintext credential
// is a documented weakness of this demo; override it via config.
const DefaultAdminPassword = "G-pace2026"

// Config holds configuration knobs for the storefront process.
type Config struct {
	// DBPath is the SQLite file backing the store adapter.
	DBPath string `yaml:"db_path"`
	// AdminPassword is the shared secret checked by the admin gate.
	AdminPassword string `yaml:"admin_password"`
	// SeedOnEmpty loads the demo catalog when the store holds no products.
	SeedOnEmpty bool `yaml:"seed_on_empty"`
	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath:        "storefront.db",
		AdminPassword: DefaultAdminPassword,
		SeedOnEmpty:   true,
	}
}

// Load collects configuration from an optional YAML file and the environment.
// File values override defaults; environment variables override the file. An
// empty path falls back to STOREFRONT_CONFIG, and no file at all is fine.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("STOREFRONT_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.DBPath = getenv("STOREFRONT_DB", cfg.DBPath)
	cfg.AdminPassword = getenv("STOREFRONT_ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.SeedOnEmpty = boolenv("STOREFRONT_SEED_ON_EMPTY", cfg.SeedOnEmpty)
	cfg.Verbose = boolenv("STOREFRONT_VERBOSE", cfg.Verbose)
	return cfg, nil
}
