package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleMoveOrResize(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveOrResizeInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	switch args.Direction {
	case "left", "right", "top", "bottom":
	default:
		return nil, ActionOutput{}, fmt.Errorf("invalid direction %q; expected left, right, top, or bottom", args.Direction)
	}

	if err := s.ipcClient.Action(args.Direction); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Action: args.Direction, Dispatched: true}, nil
}

func (s *Server) handleCornerCycle(_ context.Context, _ *mcpsdk.CallToolRequest, args CornerCycleInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if args.Corner < 1 || args.Corner > 4 {
		return nil, ActionOutput{}, fmt.Errorf("invalid corner %d; expected 1-4", args.Corner)
	}

	if err := s.ipcClient.Corner(args.Corner); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Action: fmt.Sprintf("corner %d", args.Corner), Dispatched: true}, nil
}

func (s *Server) handleMaximizeCycle(_ context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	if err := s.ipcClient.Action("maximize"); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Action: "maximize", Dispatched: true}, nil
}

func (s *Server) handleCenter(_ context.Context, _ *mcpsdk.CallToolRequest, args CenterInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	action := "center"
	if args.Upper {
		action = "upper-center"
	}

	if err := s.ipcClient.Action(action); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Action: action, Dispatched: true}, nil
}

func (s *Server) handleMoveToScreen(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveToScreenInput) (*mcpsdk.CallToolResult, ActionOutput, error) {
	var action string
	switch args.Direction {
	case "next":
		action = "next-screen"
	case "prev":
		action = "prev-screen"
	default:
		return nil, ActionOutput{}, fmt.Errorf("invalid direction %q; expected next or prev", args.Direction)
	}

	if err := s.ipcClient.Action(action); err != nil {
		return nil, ActionOutput{}, err
	}
	return nil, ActionOutput{Action: action, Dispatched: true}, nil
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	data, err := s.ipcClient.GetMonitors()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}

	out := ListMonitorsOutput{Monitors: make([]MonitorOutput, len(data.Monitors))}
	for i, m := range data.Monitors {
		out.Monitors[i] = MonitorOutput{
			ID:     m.ID,
			Name:   m.Name,
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.ipcClient.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}

	return nil, GetStatusOutput{
		DaemonRunning:  status.DaemonRunning,
		UptimeSeconds:  status.UptimeSeconds,
		WindowGap:      status.WindowGap,
		EdgeGap:        status.EdgeGap,
		SidebarWidth:   status.SidebarWidth,
		MaximizeSizes:  status.MaximizeSizes,
		SidebarEnabled: status.SidebarEnabled,
		DockEdge:       status.DockEdge,
	}, nil
}
