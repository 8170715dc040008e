package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

const (
	ServerName    = "stagedirector"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing window geometry actions. All tools
// proxy to the daemon over the IPC socket, so the daemon must be
// running for them to succeed.
type Server struct {
	mcpServer *mcpsdk.Server
	ipcClient *ipc.Client
}

// NewServer creates a new MCP server backed by the daemon IPC socket.
func NewServer() *Server {
	s := &Server{
		ipcClient: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_or_resize",
		Description: "Snap the focused window to a screen edge, or cycle its size through the fraction ladder when it is already there. Direction is left, right, top, or bottom.",
	}, s.handleMoveOrResize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "corner_cycle",
		Description: "Snap the focused window to a screen corner, or step it through the corner size ladder when it is already flush there. Corners are numbered 1-4: top-left, top-right, bottom-left, bottom-right.",
	}, s.handleCornerCycle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_cycle",
		Description: "Cycle the focused window through the almost-maximize ladder, ending at full usable area.",
	}, s.handleMaximizeCycle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "center",
		Description: "Center the focused window on its display without resizing. Set upper=true to place it in the upper third vertically.",
	}, s.handleCenter)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_to_screen",
		Description: "Move the focused window to the next or previous display, preserving its proportional size and position.",
	}, s.handleMoveToScreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List the connected displays with their geometry as the daemon sees them.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report daemon status: uptime, gap settings, maximize ladder, and sidebar state.",
	}, s.handleGetStatus)
}
