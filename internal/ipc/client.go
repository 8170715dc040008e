package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/rinodrops/stagedirector/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// Action asks the daemon to run a window action ("left", "maximize", ...).
func (c *Client) Action(name string) error {
	payload, err := json.Marshal(ActionPayload{Name: name})
	if err != nil {
		return fmt.Errorf("failed to marshal action payload: %w", err)
	}

	req := &Request{
		Command: CommandAction,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// Corner asks the daemon to run the corner action for the given quadrant (1-4).
func (c *Client) Corner(corner int) error {
	payload, err := json.Marshal(ActionPayload{Name: "corner", Corner: corner})
	if err != nil {
		return fmt.Errorf("failed to marshal action payload: %w", err)
	}

	req := &Request{
		Command: CommandAction,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// SetConfig updates a numeric runtime setting on the daemon.
func (c *Client) SetConfig(key string, value float64) error {
	payload, err := json.Marshal(SetConfigPayload{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to marshal config payload: %w", err)
	}

	req := &Request{
		Command: CommandSetConfig,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// SetMaximizeSizes replaces the daemon's almost-maximize ladder.
func (c *Client) SetMaximizeSizes(sizes []float64) error {
	payload, err := json.Marshal(SetConfigPayload{Key: "maximize_sizes", MaximizeSizes: sizes})
	if err != nil {
		return fmt.Errorf("failed to marshal config payload: %w", err)
	}

	req := &Request{
		Command: CommandSetConfig,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// Reload sends a RELOAD command to the daemon
func (c *Client) Reload() error {
	req := &Request{
		Command: CommandReload,
	}

	_, err := c.sendRequest(req)
	return err
}

// GetStatus retrieves daemon status
func (c *Client) GetStatus() (*StatusData, error) {
	req := &Request{
		Command: CommandGetStatus,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}

	return &status, nil
}

// GetMonitors retrieves monitor information
func (c *Client) GetMonitors() (*MonitorsData, error) {
	req := &Request{
		Command: CommandGetMonitors,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var monitors MonitorsData
	if err := json.Unmarshal(resp.Data, &monitors); err != nil {
		return nil, fmt.Errorf("failed to parse monitors data: %w", err)
	}

	return &monitors, nil
}

// GetWindows retrieves the visible windows across all displays.
func (c *Client) GetWindows() (*WindowsData, error) {
	req := &Request{
		Command: CommandGetWindows,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var windows WindowsData
	if err := json.Unmarshal(resp.Data, &windows); err != nil {
		return nil, fmt.Errorf("failed to parse windows data: %w", err)
	}

	return &windows, nil
}

// Ping checks if the daemon is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
