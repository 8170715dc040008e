package sidebar

import (
	"errors"
	"testing"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

type stubProbe struct {
	state geometry.Sidebar
	err   error
}

func (s *stubProbe) Probe() (geometry.Sidebar, error) {
	return s.state, s.err
}

func TestMonitorRefresh(t *testing.T) {
	probe := &stubProbe{state: geometry.Sidebar{Enabled: true, Dock: geometry.DockBottom}}
	m := NewMonitor(probe, 0, nil)

	got := m.Current()
	if !got.Enabled || got.Dock != geometry.DockBottom {
		t.Fatalf("Current = %+v, want enabled bottom-dock state", got)
	}

	probe.state = geometry.Sidebar{}
	m.Refresh()
	if m.Current().Enabled {
		t.Fatal("expected disabled state after refresh")
	}
}

func TestMonitorProbeFailureDefaultsToDisabled(t *testing.T) {
	probe := &stubProbe{
		state: geometry.Sidebar{Enabled: true, Dock: geometry.DockLeft},
	}
	m := NewMonitor(probe, 0, nil)
	if !m.Current().Enabled {
		t.Fatal("precondition: sidebar enabled")
	}

	probe.err = errors.New("command unavailable")
	m.Refresh()
	if m.Current().Enabled {
		t.Fatal("probe failure must report a disabled sidebar")
	}
}

func TestParseProbeOutput(t *testing.T) {
	cases := []struct {
		in      string
		want    geometry.Sidebar
		wantErr bool
	}{
		{"'BOTTOM'\n", geometry.Sidebar{Enabled: true, Dock: geometry.DockBottom}, false},
		{"left", geometry.Sidebar{Enabled: true, Dock: geometry.DockLeft}, false},
		{"off", geometry.Sidebar{}, false},
		{"", geometry.Sidebar{}, false},
		{"sideways", geometry.Sidebar{}, true},
	}
	for _, tc := range cases {
		got, err := parseProbeOutput(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseProbeOutput(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseProbeOutput(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseProbeOutput(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
