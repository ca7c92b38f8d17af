// Package config handles configuration loading, saving, and schema
// definition for the drixl CLI and embedding applications.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/drixl-io/drixl-go/internal/ctxstore"
)

// Config is the top-level drixl configuration.
type Config struct {
	Store ctxstore.Config `json:"store"`
}

// DefaultConfig returns the configuration used when no file exists:
// in-memory store, Redis fields prefilled for an easy switch.
func DefaultConfig() Config {
	return Config{
		Store: ctxstore.Config{
			Backend: ctxstore.BackendMemory,
			Host:    "localhost",
			Port:    6379,
		},
	}
}

// GetConfigPath returns the default config file path (~/.drixl/config.json).
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".drixl", "config.json")
}

// Load reads configuration from a JSON file.
// If path is empty, uses the default config path.
// If the file doesn't exist, returns DefaultConfig().
func Load(path string) (Config, error) {
	if path == "" {
		path = GetConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}

	cfg := DefaultConfig() // start with defaults so zero-value fields get filled
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes configuration to a JSON file.
// If path is empty, uses the default config path.
func Save(cfg Config, path string) error {
	if path == "" {
		path = GetConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
