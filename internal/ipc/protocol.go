package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types.
type CommandType string

const (
	CommandAction      CommandType = "ACTION"
	CommandSetConfig   CommandType = "SET_CONFIG"
	CommandGetStatus   CommandType = "GET_STATUS"
	CommandGetMonitors CommandType = "GET_MONITORS"
	CommandGetWindows  CommandType = "GET_WINDOWS"
	CommandReload      CommandType = "RELOAD"
)

// Request represents an IPC request from client to server.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ActionPayload selects a window action. Corner is only meaningful for
// the "corner" action.
type ActionPayload struct {
	Name   string `json:"name"`
	Corner int    `json:"corner,omitempty"`
}

// SetConfigPayload carries a single configuration mutation. Exactly
// one of Value or MaximizeSizes is used depending on Key.
type SetConfigPayload struct {
	Key           string    `json:"key"` // window_gap | edge_gap | sidebar_width | maximize_sizes
	Value         float64   `json:"value,omitempty"`
	MaximizeSizes []float64 `json:"maximize_sizes,omitempty"`
}

// StatusData is returned by GET_STATUS.
type StatusData struct {
	DaemonRunning  bool      `json:"daemon_running"`
	UptimeSeconds  int64     `json:"uptime_seconds"`
	WindowGap      float64   `json:"window_gap"`
	EdgeGap        float64   `json:"edge_gap"`
	SidebarWidth   float64   `json:"sidebar_width"`
	MaximizeSizes  []float64 `json:"maximize_sizes"`
	SidebarEnabled bool      `json:"sidebar_enabled"`
	DockEdge       string    `json:"dock_edge,omitempty"`
}

// MonitorInfo describes a single display.
type MonitorInfo struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MonitorsData is returned by GET_MONITORS.
type MonitorsData struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// WindowInfo describes a visible window and the display it sits on.
type WindowInfo struct {
	ID         uint32  `json:"id"`
	Title      string  `json:"title"`
	MonitorID  int     `json:"monitor_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Fullscreen bool    `json:"fullscreen,omitempty"`
	Active     bool    `json:"active,omitempty"`
}

// WindowsData is returned by GET_WINDOWS.
type WindowsData struct {
	Windows []WindowInfo `json:"windows"`
}

// DecodePayload unmarshals a request payload into the given type.
func DecodePayload[T any](req *Request) (T, error) {
	var payload T
	if len(req.Payload) == 0 {
		return payload, fmt.Errorf("missing payload for %s", req.Command)
	}
	if err := json.Unmarshal(req.Payload, &payload); err != nil {
		return payload, fmt.Errorf("invalid payload for %s: %w", req.Command, err)
	}
	return payload, nil
}
