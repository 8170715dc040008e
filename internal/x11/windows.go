package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

// ActiveWindow returns the focused window ID, or ok=false when no
// window has input focus.
func (c *Connection) ActiveWindow() (uint32, bool, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, false, fmt.Errorf("get active window: %w", err)
	}
	if win == 0 {
		return 0, false, nil
	}
	return uint32(win), true, nil
}

// WindowFrame returns a window's rect in root coordinates.
func (c *Connection) WindowFrame(windowID uint32) (geometry.Rect, error) {
	win := xproto.Window(windowID)

	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("get geometry: %w", err)
	}
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("translate coordinates: %w", err)
	}

	return geometry.Rect{
		X: float64(translate.DstX),
		Y: float64(translate.DstY),
		W: float64(geom.Width),
		H: float64(geom.Height),
	}, nil
}

// VisibleWindows returns the normal, mapped windows on the current
// virtual desktop.
func (c *Connection) VisibleWindows() ([]uint32, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("get client list: %w", err)
	}

	currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil)
	if err != nil {
		currentDesktop = 0
	}

	var visible []uint32
	for _, win := range clients {
		if !c.isNormalWindow(win) {
			continue
		}
		if c.hasState(win, "_NET_WM_STATE_HIDDEN") {
			continue
		}
		// Sticky windows (0xFFFFFFFF) are visible everywhere.
		if desktop, err := ewmh.WmDesktopGet(c.XUtil, win); err == nil &&
			desktop != 0xFFFFFFFF && desktop != currentDesktop {
			continue
		}
		visible = append(visible, uint32(win))
	}
	return visible, nil
}

// IsFullscreen reports whether a window carries the fullscreen state.
func (c *Connection) IsFullscreen(windowID uint32) bool {
	return c.hasState(xproto.Window(windowID), "_NET_WM_STATE_FULLSCREEN")
}

// WindowTitle returns a window's EWMH name, best effort.
func (c *Connection) WindowTitle(windowID uint32) string {
	name, err := ewmh.WmNameGet(c.XUtil, xproto.Window(windowID))
	if err != nil {
		return ""
	}
	return name
}

// SetWindowFrame moves and resizes a window. Maximized state is
// removed first; a maximized window silently ignores move requests
// under most window managers.
func (c *Connection) SetWindowFrame(windowID uint32, frame geometry.Rect) error {
	win := xproto.Window(windowID)
	c.unmaximize(win)

	x, y := int(frame.X), int(frame.Y)
	w, h := int(frame.W), int(frame.H)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if err := ewmh.MoveresizeWindow(c.XUtil, win, x, y, w, h); err != nil {
		// Fallback to direct configuration for non-EWMH window managers.
		xwindow.New(c.XUtil, win).MoveResize(x, y, w, h)
	}
	return nil
}

func (c *Connection) unmaximize(win xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		return
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_MAXIMIZED_HORZ" || state == "_NET_WM_STATE_MAXIMIZED_VERT" {
			ewmh.WmStateReq(c.XUtil, win, 0, state)
		}
	}
}

func (c *Connection) hasState(win xproto.Window, state string) bool {
	states, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		return false
	}
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

func (c *Connection) isNormalWindow(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil {
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION",
			"_NET_WM_WINDOW_TYPE_TOOLBAR",
			"_NET_WM_WINDOW_TYPE_MENU":
			return false
		}
	}
	return len(types) == 0
}
