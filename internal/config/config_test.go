package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromPathPartialOverride(t *testing.T) {
	path := writeConfig(t, `
window_gap: 12
maximize_sizes: [0.85, 0.7, 0.5]
sidebar:
  refresh_interval: 10s
hotkeys:
  left: "Mod1-h"
`)
	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.WindowGap)
	assert.Equal(t, DefaultEdgeGap, cfg.EdgeGap)
	assert.Equal(t, []float64{0.85, 0.7, 0.5}, cfg.MaximizeSizes)
	assert.Equal(t, 10*time.Second, cfg.Sidebar.RefreshInterval)
	assert.Equal(t, "Mod1-h", cfg.Hotkeys["left"])
	// Unmentioned hotkeys keep their defaults.
	assert.Equal(t, "Mod4-Right", cfg.Hotkeys["right"])
}

func TestLoadFromPathUnbindHotkey(t *testing.T) {
	path := writeConfig(t, `
hotkeys:
  corner1: ""
`)
	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	_, bound := cfg.Hotkeys["corner1"]
	assert.False(t, bound)
}

func TestLoadFromPathRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative gap", "window_gap: -1"},
		{"zero sidebar width", "sidebar_width: 0"},
		{"empty ladder", "maximize_sizes: []"},
		{"fraction above one", "maximize_sizes: [0.9, 1.5]"},
		{"bad duration", "sidebar:\n  refresh_interval: soon"},
		{"bad log level", "log_level: loud"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestStoreSettersValidate(t *testing.T) {
	s := NewStore(Default())

	require.NoError(t, s.SetWindowGap(16))
	assert.Equal(t, 16.0, s.Current().WindowGap)

	// Rejected updates leave the previous value in place.
	assert.Error(t, s.SetWindowGap(-1))
	assert.Equal(t, 16.0, s.Current().WindowGap)

	assert.Error(t, s.SetSidebarWidth(0))
	assert.Equal(t, DefaultSidebarWidth, s.Current().SidebarWidth)

	assert.Error(t, s.SetMaximizeSizes(nil))
	assert.Error(t, s.SetMaximizeSizes([]float64{0.5, 0}))
	require.NoError(t, s.SetMaximizeSizes([]float64{0.8}))
	assert.Equal(t, []float64{0.8}, s.Current().MaximizeSizes)
}

func TestStoreCurrentIsACopy(t *testing.T) {
	s := NewStore(Default())
	cfg := s.Current()
	cfg.MaximizeSizes[0] = 0.1
	assert.Equal(t, DefaultMaximizeSizes[0], s.Current().MaximizeSizes[0])
}

func TestStoreReplaceValidates(t *testing.T) {
	s := NewStore(Default())
	bad := Default()
	bad.SidebarWidth = -5
	assert.Error(t, s.Replace(bad))
	assert.Equal(t, DefaultSidebarWidth, s.Current().SidebarWidth)
}
