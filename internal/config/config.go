// Package config loads the tabulate CLI configuration file.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "tabulate"

// Config holds rendering defaults. Command-line flags override every field.
type Config struct {
	// Style names a styling preset. Empty picks "unicode" on a terminal and
	// "ascii" otherwise.
	Style string `toml:"style"`

	Format string `toml:"format"`

	// Align applies to every cell unless HeaderAlign or Columns say
	// otherwise.
	Align       string   `toml:"align"`
	HeaderAlign string   `toml:"header_align"`
	Columns     []string `toml:"columns"`

	// Names transforms header labels read from keyed inputs.
	Names string `toml:"names"`

	RowLines bool `toml:"row_lines"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Format: "table",
		Align:  "left",
		Names:  "none",
	}
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/tabulate/config.toml
//  2. ~/.config/tabulate/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. The file must
// exist; only [Load] falls back to defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader. Fields absent from
// the input keep their defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets TABULATE_STYLE and TABULATE_FORMAT win over the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TABULATE_STYLE"); v != "" {
		cfg.Style = v
	}
	if v := os.Getenv("TABULATE_FORMAT"); v != "" {
		cfg.Format = v
	}
}

func searchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName, "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}
