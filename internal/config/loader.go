package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// raw mirrors Config with pointer fields so a file can override only
// the values it mentions; everything else keeps its default.
type raw struct {
	WindowGap     *float64   `yaml:"window_gap"`
	EdgeGap       *float64   `yaml:"edge_gap"`
	SidebarWidth  *float64   `yaml:"sidebar_width"`
	Tolerance     *float64   `yaml:"tolerance"`
	MaximizeSizes *[]float64 `yaml:"maximize_sizes"`
	Sidebar       *struct {
		ProbeCommand    *[]string `yaml:"probe_command"`
		RefreshInterval *string   `yaml:"refresh_interval"`
	} `yaml:"sidebar"`
	Hotkeys  map[string]string `yaml:"hotkeys"`
	LogLevel *string           `yaml:"log_level"`
}

// Load reads the configuration from the standard location. A missing
// file yields the defaults.
func Load() (Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates a config file, applying defaults
// for everything it omits.
func LoadFromPath(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var r raw
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := applyRaw(&cfg, r); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func applyRaw(cfg *Config, r raw) error {
	if r.WindowGap != nil {
		cfg.WindowGap = *r.WindowGap
	}
	if r.EdgeGap != nil {
		cfg.EdgeGap = *r.EdgeGap
	}
	if r.SidebarWidth != nil {
		cfg.SidebarWidth = *r.SidebarWidth
	}
	if r.Tolerance != nil {
		cfg.Tolerance = *r.Tolerance
	}
	if r.MaximizeSizes != nil {
		cfg.MaximizeSizes = append([]float64(nil), (*r.MaximizeSizes)...)
	}
	if r.Sidebar != nil {
		if r.Sidebar.ProbeCommand != nil {
			cfg.Sidebar.ProbeCommand = append([]string(nil), (*r.Sidebar.ProbeCommand)...)
		}
		if r.Sidebar.RefreshInterval != nil {
			d, err := parseDuration(*r.Sidebar.RefreshInterval)
			if err != nil {
				return fmt.Errorf("sidebar.refresh_interval: %w", err)
			}
			cfg.Sidebar.RefreshInterval = d
		}
	}
	for action, seq := range r.Hotkeys {
		if seq == "" {
			// Empty sequence unbinds a default.
			delete(cfg.Hotkeys, action)
			continue
		}
		cfg.Hotkeys[action] = seq
	}
	if r.LogLevel != nil {
		cfg.LogLevel = *r.LogLevel
	}
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
