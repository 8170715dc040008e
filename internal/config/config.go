package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when the config file omits a value.
const (
	DefaultWindowGap       = 8.0
	DefaultEdgeGap         = 0.0
	DefaultSidebarWidth    = 64.0
	DefaultTolerance       = 0.02
	DefaultRefreshInterval = 3 * time.Second
)

// DefaultMaximizeSizes is the almost-maximize ladder used when the
// config file does not provide one.
var DefaultMaximizeSizes = []float64{0.9, 0.65}

// SidebarConfig configures the environment probe for the reserved
// workspace-switcher strip.
type SidebarConfig struct {
	// ProbeCommand is the external command whose output reports the
	// dock position. An empty command disables the probe and the
	// sidebar reservation with it.
	ProbeCommand []string `yaml:"probe_command,omitempty"`
	// RefreshInterval is how often the probe is re-run.
	RefreshInterval time.Duration `yaml:"refresh_interval,omitempty"`
}

// Hotkeys maps action names to keybind sequences. Action names match
// the CLI subcommands: left, right, top, bottom, corner1..corner4,
// maximize, center, upper-center, next-screen, prev-screen.
type Hotkeys map[string]string

// Config is the effective daemon configuration.
type Config struct {
	WindowGap     float64       `yaml:"window_gap"`
	EdgeGap       float64       `yaml:"edge_gap"`
	SidebarWidth  float64       `yaml:"sidebar_width"`
	Tolerance     float64       `yaml:"tolerance,omitempty"`
	MaximizeSizes []float64     `yaml:"maximize_sizes,omitempty"`
	Sidebar       SidebarConfig `yaml:"sidebar,omitempty"`
	Hotkeys       Hotkeys       `yaml:"hotkeys,omitempty"`
	LogLevel      string        `yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WindowGap:     DefaultWindowGap,
		EdgeGap:       DefaultEdgeGap,
		SidebarWidth:  DefaultSidebarWidth,
		Tolerance:     DefaultTolerance,
		MaximizeSizes: append([]float64(nil), DefaultMaximizeSizes...),
		Sidebar: SidebarConfig{
			RefreshInterval: DefaultRefreshInterval,
		},
		Hotkeys: Hotkeys{
			"left":         "Mod4-Left",
			"right":        "Mod4-Right",
			"top":          "Mod4-Up",
			"bottom":       "Mod4-Down",
			"corner1":      "Mod4-u",
			"corner2":      "Mod4-i",
			"corner3":      "Mod4-j",
			"corner4":      "Mod4-k",
			"maximize":     "Mod4-Return",
			"center":       "Mod4-c",
			"upper-center": "Mod4-Shift-c",
			"next-screen":  "Mod4-Next",
			"prev-screen":  "Mod4-Prior",
		},
		LogLevel: "info",
	}
}

// Validate checks the boundary rules for user-supplied values.
func (c *Config) Validate() error {
	if c.WindowGap < 0 {
		return fmt.Errorf("window_gap must not be negative, got %v", c.WindowGap)
	}
	if c.EdgeGap < 0 {
		return fmt.Errorf("edge_gap must not be negative, got %v", c.EdgeGap)
	}
	if c.SidebarWidth <= 0 {
		return fmt.Errorf("sidebar_width must be positive, got %v", c.SidebarWidth)
	}
	if c.Tolerance <= 0 || c.Tolerance >= 1 {
		return fmt.Errorf("tolerance must be in (0,1), got %v", c.Tolerance)
	}
	if err := ValidateMaximizeSizes(c.MaximizeSizes); err != nil {
		return err
	}
	if c.Sidebar.RefreshInterval < 0 {
		return fmt.Errorf("sidebar.refresh_interval must not be negative")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// ValidateMaximizeSizes checks an almost-maximize ladder: it must be
// non-empty with every fraction in (0,1].
func ValidateMaximizeSizes(sizes []float64) error {
	if len(sizes) == 0 {
		return fmt.Errorf("maximize_sizes must not be empty")
	}
	for i, f := range sizes {
		if f <= 0 || f > 1 {
			return fmt.Errorf("maximize_sizes[%d] = %v outside (0,1]", i, f)
		}
	}
	return nil
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "stagedirector", "config.yaml"), nil
}
