// Package config reads optional settings from the thirty config file,
// ~/.config/thirty/config.toml. Flags always win over the file; the file
// wins over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jmsalazar/thirty/internal/constants"
)

// Config captures settings from config.toml.
type Config struct {
	// Storage is the storage file path; extension selects the backend
	// (.json for the JSON store, anything else for SQLite).
	Storage string `toml:"storage"`
	// Postgres selects the Postgres backend, with the connection string
	// taken from the OS keyring.
	Postgres bool `toml:"postgres"`
	// Debug mirrors logs to stderr at debug level.
	Debug bool `toml:"debug"`
}

// DefaultDir returns the config directory, ~/.config/thirty.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + constants.AppName
	}
	return filepath.Join(home, ".config", constants.AppName)
}

// DefaultStoragePath is the SQLite store path used when neither flag nor
// config file names one.
func DefaultStoragePath() string {
	return filepath.Join(DefaultDir(), constants.AppName+".db")
}

// Load reads config.toml from the config directory. A missing file is not
// an error; it yields the zero config.
func Load(configDir string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
