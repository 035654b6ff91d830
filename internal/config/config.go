// Package config loads the application configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"movie-catalog/internal/catalog"
)

// Config represents the application configuration.
type Config struct {
	Store  StoreConfig `yaml:"store"`
	Genres []string    `yaml:"genres"`
	IDs    IDConfig    `yaml:"ids"`
	Users  []User      `yaml:"users"`
	Log    LogConfig   `yaml:"log"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	// Backend is one of "sqlite", "file", "memory".
	Backend string `yaml:"backend"`
	// Path is the database file (sqlite) or directory (file).
	Path string `yaml:"path"`
}

// IDConfig selects the identifier generation strategy.
type IDConfig struct {
	// Strategy is one of "timerand", "uuid".
	Strategy string `yaml:"strategy"`
}

// User is one login credential pair. Matching is plain equality.
type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "~/.movie-catalog/catalog.db",
		},
		Genres: catalog.DefaultGenres,
		IDs:    IDConfig{Strategy: "timerand"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads and parses the configuration file. A missing file is not an
// error: the defaults apply so the tool works out of the box. Environment
// variables in the YAML content are expanded before parsing.
func Load(path string) (*Config, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	switch cfg.Store.Backend {
	case "sqlite", "file", "memory":
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	switch cfg.IDs.Strategy {
	case "timerand", "uuid":
	default:
		return nil, fmt.Errorf("unknown id strategy %q", cfg.IDs.Strategy)
	}
	if len(cfg.Genres) == 0 {
		return nil, fmt.Errorf("at least one genre is required")
	}

	cfg.Store.Path, err = expandHome(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func expandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
