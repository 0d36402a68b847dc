// Package config loads server settings from an optional TOML file. Flags
// override file values; the file overrides defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Server holds settings for the serve command.
type Server struct {
	Addr        string `toml:"addr"`
	PersistPath string `toml:"persist_path"`
	LogLevel    string `toml:"log_level"`
	Solver      string `toml:"solver"`
}

// Default returns the settings used when no file and no flags are given.
func Default() Server {
	return Server{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		Solver:      "dlx",
	}
}

// Load reads path and overlays it onto the defaults. Unknown keys are
// ignored; a missing file is an error (the caller decides whether a config
// file was requested at all).
func Load(path string) (Server, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
