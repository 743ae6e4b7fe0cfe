// Package config loads the toolbelt configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "toolbelt.yaml"

// Config is the root configuration.
type Config struct {
	LogLevel string   `yaml:"log_level" json:"log_level"`
	HTTP     HTTP     `yaml:"http" json:"http"`
	Metrics  Metrics  `yaml:"metrics" json:"metrics"`
	Redis    Redis    `yaml:"redis" json:"redis"`
	Palettes Palettes `yaml:"palettes" json:"palettes"`
	Dates    Dates    `yaml:"dates" json:"dates"`
}

type HTTP struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Metrics struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// Redis configures the shared throttle gate. An empty Addr disables it.
type Redis struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
	Prefix   string `yaml:"prefix" json:"prefix"`
}

// Palettes points at a directory of palette documents. An empty Dir disables named palettes.
type Palettes struct {
	Dir string `yaml:"dir" json:"dir"`
}

// Dates holds the IANA zone used by the date tools.
type Dates struct {
	Location string `yaml:"location" json:"location"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		HTTP:     HTTP{Addr: ":8080"},
		Redis:    Redis{Prefix: "toolbelt:gate:"},
		Dates:    Dates{Location: "Local"},
	}
}

// Load reads path as JSON (by extension) or YAML, on top of Default.
// A missing file is not an error when path is DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if _, err := cfg.Location(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Location resolves Dates.Location.
func (c Config) Location() (*time.Location, error) {
	if c.Dates.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Dates.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid dates.location %q: %w", c.Dates.Location, err)
	}
	return loc, nil
}
