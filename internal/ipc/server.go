package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/rinodrops/stagedirector/internal/config"
	"github.com/rinodrops/stagedirector/internal/engine"
	"github.com/rinodrops/stagedirector/internal/platform"
	"github.com/rinodrops/stagedirector/internal/runtimepath"
	"github.com/rinodrops/stagedirector/internal/sidebar"
)

// Server handles IPC requests from clients.
type Server struct {
	socketPath   string
	listener     net.Listener
	controller   *engine.Controller
	store        *config.Store
	sidebar      *sidebar.Monitor
	backend      platform.Backend
	configPath   string
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server.
func NewServer(controller *engine.Controller, store *config.Store, sb *sidebar.Monitor, backend platform.Backend, configPath string) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present.
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		controller: controller,
		store:      store,
		sidebar:    sb,
		backend:    backend,
		configPath: configPath,
		startTime:  time.Now(),
	}, nil
}

// Start begins listening for IPC connections.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC server listening on %s", s.socketPath)
	go s.acceptLoop()
	return nil
}

// Stop shuts the server down and removes the socket.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()
	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			done := s.shuttingDown
			s.shutdownMu.Unlock()
			if done {
				return
			}
			log.Printf("IPC accept error: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(10 * time.Second))

	reader := bufio.NewReader(conn)
	data, err := reader.ReadBytes('\n')
	if err != nil {
		return
	}

	var req Request
	var resp *Response
	if err := json.Unmarshal(data, &req); err != nil {
		resp = errorResponse(fmt.Errorf("invalid request: %w", err))
	} else {
		resp = s.handleRequest(&req)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return
	}
	out = append(out, '\n')
	conn.Write(out)
}

func (s *Server) handleRequest(req *Request) *Response {
	switch req.Command {
	case CommandAction:
		return s.handleAction(req)
	case CommandSetConfig:
		return s.handleSetConfig(req)
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandGetMonitors:
		return s.handleGetMonitors()
	case CommandGetWindows:
		return s.handleGetWindows()
	case CommandReload:
		return s.handleReload()
	default:
		return errorResponse(fmt.Errorf("unknown command %q", req.Command))
	}
}

func (s *Server) handleAction(req *Request) *Response {
	payload, err := DecodePayload[ActionPayload](req)
	if err != nil {
		return errorResponse(err)
	}

	switch payload.Name {
	case "left", "right", "top", "bottom":
		dir, err := engine.ParseDirection(payload.Name)
		if err != nil {
			return errorResponse(err)
		}
		err = s.controller.MoveOrResize(dir)
		return resultResponse(err)
	case "corner":
		corner, err := engine.ParseCorner(payload.Corner)
		if err != nil {
			return errorResponse(err)
		}
		return resultResponse(s.controller.MoveOrResizeCorner(corner))
	case "maximize":
		return resultResponse(s.controller.ToggleMaximize())
	case "center":
		return resultResponse(s.controller.Center())
	case "upper-center":
		return resultResponse(s.controller.UpperCenter())
	case "next-screen":
		return resultResponse(s.controller.MoveToScreen(1))
	case "prev-screen":
		return resultResponse(s.controller.MoveToScreen(-1))
	default:
		return errorResponse(fmt.Errorf("unknown action %q", payload.Name))
	}
}

func (s *Server) handleSetConfig(req *Request) *Response {
	payload, err := DecodePayload[SetConfigPayload](req)
	if err != nil {
		return errorResponse(err)
	}

	switch payload.Key {
	case "window_gap":
		err = s.store.SetWindowGap(payload.Value)
	case "edge_gap":
		err = s.store.SetEdgeGap(payload.Value)
	case "sidebar_width":
		err = s.store.SetSidebarWidth(payload.Value)
	case "maximize_sizes":
		err = s.store.SetMaximizeSizes(payload.MaximizeSizes)
	default:
		err = fmt.Errorf("unknown config key %q", payload.Key)
	}
	if err != nil {
		log.Printf("config update rejected: %v", err)
	}
	return resultResponse(err)
}

func (s *Server) handleGetStatus() *Response {
	cfg := s.store.Current()
	sb := s.sidebar.Current()
	status := StatusData{
		DaemonRunning:  true,
		UptimeSeconds:  int64(time.Since(s.startTime).Seconds()),
		WindowGap:      cfg.WindowGap,
		EdgeGap:        cfg.EdgeGap,
		SidebarWidth:   cfg.SidebarWidth,
		MaximizeSizes:  cfg.MaximizeSizes,
		SidebarEnabled: sb.Enabled,
		DockEdge:       string(sb.Dock),
	}
	return dataResponse(status)
}

func (s *Server) handleGetMonitors() *Response {
	displays, err := s.backend.Displays()
	if err != nil {
		return errorResponse(err)
	}
	data := MonitorsData{Monitors: make([]MonitorInfo, len(displays))}
	for i, d := range displays {
		data.Monitors[i] = MonitorInfo{
			ID:     d.ID,
			Name:   d.Name,
			X:      d.Frame.X,
			Y:      d.Frame.Y,
			Width:  d.Frame.W,
			Height: d.Frame.H,
		}
	}
	return dataResponse(data)
}

func (s *Server) handleGetWindows() *Response {
	displays, err := s.backend.Displays()
	if err != nil {
		return errorResponse(err)
	}
	active, haveActive, err := s.backend.ActiveWindow()
	if err != nil {
		haveActive = false
	}

	var data WindowsData
	for _, d := range displays {
		windows, err := s.backend.VisibleWindows(d.ID)
		if err != nil {
			return errorResponse(err)
		}
		for _, w := range windows {
			data.Windows = append(data.Windows, WindowInfo{
				ID:         uint32(w.ID),
				Title:      w.Title,
				MonitorID:  d.ID,
				X:          w.Frame.X,
				Y:          w.Frame.Y,
				Width:      w.Frame.W,
				Height:     w.Frame.H,
				Fullscreen: w.Fullscreen,
				Active:     haveActive && w.ID == active.ID,
			})
		}
	}
	return dataResponse(data)
}

func (s *Server) handleReload() *Response {
	cfg, err := config.LoadFromPath(s.configPath)
	if err != nil {
		return errorResponse(err)
	}
	if err := s.store.Replace(cfg); err != nil {
		return errorResponse(err)
	}
	s.sidebar.Refresh()
	log.Printf("configuration reloaded from %s", s.configPath)
	return resultResponse(nil)
}

func errorResponse(err error) *Response {
	return &Response{Status: "ERROR", Error: err.Error()}
}

func resultResponse(err error) *Response {
	if err != nil {
		return errorResponse(err)
	}
	return &Response{Status: "OK"}
}

func dataResponse(v any) *Response {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResponse(err)
	}
	return &Response{Status: "OK", Data: data}
}
