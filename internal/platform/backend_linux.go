package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/rinodrops/stagedirector/internal/geometry"
	"github.com/rinodrops/stagedirector/internal/x11"
)

// X11Backend implements Backend on top of an X11 connection.
type X11Backend struct {
	conn *x11.Connection
}

// NewX11Backend connects to the X server.
func NewX11Backend() (*X11Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("connect to X11: %w", err)
	}
	return &X11Backend{conn: conn}, nil
}

// Conn exposes the underlying connection for the hotkey handler and
// the event loop.
func (b *X11Backend) Conn() *x11.Connection {
	return b.conn
}

// XUtil returns the xgbutil handle for keybind registration.
func (b *X11Backend) XUtil() *xgbutil.XUtil {
	return b.conn.XUtil
}

// RootWindow returns the X root window.
func (b *X11Backend) RootWindow() xproto.Window {
	return b.conn.Root
}

// Close disconnects from the X server.
func (b *X11Backend) Close() {
	b.conn.Close()
}

func (b *X11Backend) Displays() ([]Display, error) {
	monitors, err := b.conn.Monitors()
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors found")
	}
	displays := make([]Display, len(monitors))
	for i, m := range monitors {
		displays[i] = Display{ID: i, Name: m.Name, Frame: m.Frame}
	}
	return displays, nil
}

func (b *X11Backend) ActiveWindow() (Window, bool, error) {
	id, ok, err := b.conn.ActiveWindow()
	if err != nil || !ok {
		return Window{}, false, err
	}
	return b.window(id)
}

func (b *X11Backend) VisibleWindows(displayID int) ([]Window, error) {
	displays, err := b.Displays()
	if err != nil {
		return nil, err
	}
	ids, err := b.conn.VisibleWindows()
	if err != nil {
		return nil, err
	}

	var windows []Window
	for _, id := range ids {
		win, ok, err := b.window(id)
		if err != nil || !ok {
			continue
		}
		if d, ok := DisplayFor(displays, win.Frame); ok && d.ID == displayID {
			windows = append(windows, win)
		}
	}
	return windows, nil
}

func (b *X11Backend) SetFrame(id WindowID, frame geometry.Rect) error {
	return b.conn.SetWindowFrame(uint32(id), frame)
}

func (b *X11Backend) window(id uint32) (Window, bool, error) {
	frame, err := b.conn.WindowFrame(id)
	if err != nil {
		// Windows come and go between the enumeration and the frame
		// query; a vanished window is not an error.
		return Window{}, false, nil
	}
	return Window{
		ID:         WindowID(id),
		Title:      b.conn.WindowTitle(id),
		Frame:      frame,
		Fullscreen: b.conn.IsFullscreen(id),
	}, true, nil
}
