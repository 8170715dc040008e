package config

import (
	"fmt"
	"sync"
)

// Store holds the live configuration behind a reader-writer lock.
// Geometry actions read point-in-time copies via Current; the IPC
// server and the file watcher are the writers. Invalid updates are
// rejected and the previous configuration is retained.
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

// NewStore wraps an already-validated configuration.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Current returns a copy of the live configuration.
func (s *Store) Current() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.cfg
	cfg.MaximizeSizes = append([]float64(nil), s.cfg.MaximizeSizes...)
	return cfg
}

// Replace swaps in a full configuration, used on file reload.
func (s *Store) Replace(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return nil
}

// SetWindowGap updates the gap between windows. Negative values are
// rejected.
func (s *Store) SetWindowGap(px float64) error {
	if px < 0 {
		return fmt.Errorf("window gap must not be negative, got %v", px)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.WindowGap = px
	return nil
}

// SetEdgeGap updates the gap between windows and screen edges.
// Negative values are rejected.
func (s *Store) SetEdgeGap(px float64) error {
	if px < 0 {
		return fmt.Errorf("edge gap must not be negative, got %v", px)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.EdgeGap = px
	return nil
}

// SetSidebarWidth updates the reserved sidebar strip width. Values
// that are not strictly positive are rejected.
func (s *Store) SetSidebarWidth(px float64) error {
	if px <= 0 {
		return fmt.Errorf("sidebar width must be positive, got %v", px)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.SidebarWidth = px
	return nil
}

// SetMaximizeSizes replaces the almost-maximize ladder. The list must
// be non-empty with every fraction in (0,1].
func (s *Store) SetMaximizeSizes(sizes []float64) error {
	if err := ValidateMaximizeSizes(sizes); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.MaximizeSizes = append([]float64(nil), sizes...)
	return nil
}
