package mcp

// MoveOrResizeInput is the input for the move_or_resize tool.
type MoveOrResizeInput struct {
	Direction string `json:"direction" jsonschema:"required,Edge direction: left, right, top, or bottom"`
}

// CornerCycleInput is the input for the corner_cycle tool.
type CornerCycleInput struct {
	Corner int `json:"corner" jsonschema:"required,Corner quadrant: 1 (top-left), 2 (top-right), 3 (bottom-left), 4 (bottom-right)"`
}

// CenterInput is the input for the center tool.
type CenterInput struct {
	Upper bool `json:"upper,omitempty" jsonschema:"When true, place the window in the upper third vertically instead of the exact center"`
}

// MoveToScreenInput is the input for the move_to_screen tool.
type MoveToScreenInput struct {
	Direction string `json:"direction" jsonschema:"required,Adjacent display to move to: next or prev"`
}

// ActionOutput reports the action that was dispatched to the daemon.
type ActionOutput struct {
	Action     string `json:"action"`
	Dispatched bool   `json:"dispatched"`
}

// EmptyInput is used by tools that take no arguments.
type EmptyInput struct{}

// MonitorOutput describes a single display.
type MonitorOutput struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors []MonitorOutput `json:"monitors"`
}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	DaemonRunning  bool      `json:"daemon_running"`
	UptimeSeconds  int64     `json:"uptime_seconds"`
	WindowGap      float64   `json:"window_gap"`
	EdgeGap        float64   `json:"edge_gap"`
	SidebarWidth   float64   `json:"sidebar_width"`
	MaximizeSizes  []float64 `json:"maximize_sizes"`
	SidebarEnabled bool      `json:"sidebar_enabled"`
	DockEdge       string    `json:"dock_edge,omitempty"`
}
