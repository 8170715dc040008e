package sidebar

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

// Monitor keeps the most recent probe result behind a reader-writer
// lock. The refresh loop is the single writer; geometry actions read
// snapshots by value so an in-flight computation never observes a
// half-applied update.
type Monitor struct {
	probe    Probe
	interval time.Duration
	logger   *slog.Logger

	mu      sync.RWMutex
	current geometry.Sidebar
}

// NewMonitor creates a monitor and runs one synchronous probe so the
// first geometry action already sees real state.
func NewMonitor(probe Probe, interval time.Duration, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Monitor{
		probe:    probe,
		interval: interval,
		logger:   logger,
	}
	m.Refresh()
	return m
}

// Current returns the latest sidebar snapshot.
func (m *Monitor) Current() geometry.Sidebar {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Refresh runs the probe once. Probe failures downgrade to a disabled
// sidebar rather than keeping stale state.
func (m *Monitor) Refresh() {
	state, err := m.probe.Probe()
	if err != nil {
		m.logger.Debug("sidebar probe failed, assuming disabled", "error", err)
		state = geometry.Sidebar{}
	}

	m.mu.Lock()
	changed := state != m.current
	m.current = state
	m.mu.Unlock()

	if changed {
		m.logger.Info("sidebar state changed", "enabled", state.Enabled, "dock", string(state.Dock))
	}
}

// Run refreshes on a fixed interval until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	if m.interval <= 0 {
		m.interval = 3 * time.Second
	}
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info("sidebar monitor started", "interval", m.interval)
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("sidebar monitor stopped")
			return
		case <-ticker.C:
			m.Refresh()
		}
	}
}
