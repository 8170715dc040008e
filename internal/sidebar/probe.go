// Package sidebar tracks the reserved workspace-switcher strip by
// polling an external environment probe. The geometry engine only ever
// sees immutable snapshots of the probed state.
package sidebar

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

// Probe reports the sidebar state from the environment. A failed probe
// must degrade to a disabled sidebar, never an error that propagates
// into a geometry action.
type Probe interface {
	Probe() (geometry.Sidebar, error)
}

// CommandProbe runs an external command and parses its single-line
// output into a sidebar state. Recognized outputs are the four dock
// edges; "off", "none" or "disabled" report an inactive sidebar.
type CommandProbe struct {
	Argv []string
}

func (p CommandProbe) Probe() (geometry.Sidebar, error) {
	if len(p.Argv) == 0 {
		return geometry.Sidebar{}, nil
	}
	out, err := exec.Command(p.Argv[0], p.Argv[1:]...).Output()
	if err != nil {
		return geometry.Sidebar{}, fmt.Errorf("probe command %s: %w", p.Argv[0], err)
	}
	return parseProbeOutput(string(out))
}

func parseProbeOutput(out string) (geometry.Sidebar, error) {
	value := strings.ToLower(strings.Trim(strings.TrimSpace(out), "'\""))
	switch value {
	case "off", "none", "disabled", "":
		return geometry.Sidebar{}, nil
	case "top":
		return geometry.Sidebar{Enabled: true, Dock: geometry.DockTop}, nil
	case "bottom":
		return geometry.Sidebar{Enabled: true, Dock: geometry.DockBottom}, nil
	case "left":
		return geometry.Sidebar{Enabled: true, Dock: geometry.DockLeft}, nil
	case "right":
		return geometry.Sidebar{Enabled: true, Dock: geometry.DockRight}, nil
	}
	return geometry.Sidebar{}, fmt.Errorf("unrecognized probe output %q", value)
}
