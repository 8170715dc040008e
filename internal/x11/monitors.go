package x11

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

// Monitor is a physical display with its work-area-adjusted frame.
type Monitor struct {
	Name  string
	Frame geometry.Rect
}

// Monitors retrieves all active monitors using XRandR, adjusts each
// for dock struts, and orders them left-to-right (ties broken
// top-to-bottom). The order defines screen adjacency.
func (c *Connection) Monitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		frame := geometry.Rect{
			X: float64(info.X),
			Y: float64(info.Y),
			W: float64(info.Width),
			H: float64(info.Height),
		}
		monitors = append(monitors, Monitor{Name: name, Frame: c.applyStruts(frame)})
	}

	sort.SliceStable(monitors, func(a, b int) bool {
		if monitors[a].Frame.X != monitors[b].Frame.X {
			return monitors[a].Frame.X < monitors[b].Frame.X
		}
		return monitors[a].Frame.Y < monitors[b].Frame.Y
	})
	return monitors, nil
}

// applyStruts shrinks a monitor frame by the struts of any dock
// windows overlapping it, so panels are excluded from the frame the
// geometry engine works with.
func (c *Connection) applyStruts(frame geometry.Rect) geometry.Rect {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return frame
	}
	rootW := float64(rootGeom.Width)
	rootH := float64(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return frame
	}

	var left, right, top, bottom float64
	for _, windowID := range clients {
		if !c.isDock(windowID) {
			continue
		}
		sp := c.strutPartial(windowID, rootW, rootH)
		if sp == nil {
			continue
		}

		// Only struts whose span actually crosses this monitor count.
		if sp.Left > 0 && spansOverlap(frame.Y, frame.MaxY(), float64(sp.LeftStartY), float64(sp.LeftEndY)+1) {
			left = maxf(left, float64(sp.Left)-frame.X)
		}
		if sp.Right > 0 && spansOverlap(frame.Y, frame.MaxY(), float64(sp.RightStartY), float64(sp.RightEndY)+1) {
			right = maxf(right, frame.MaxX()-(rootW-float64(sp.Right)))
		}
		if sp.Top > 0 && spansOverlap(frame.X, frame.MaxX(), float64(sp.TopStartX), float64(sp.TopEndX)+1) {
			top = maxf(top, float64(sp.Top)-frame.Y)
		}
		if sp.Bottom > 0 && spansOverlap(frame.X, frame.MaxX(), float64(sp.BottomStartX), float64(sp.BottomEndX)+1) {
			bottom = maxf(bottom, frame.MaxY()-(rootH-float64(sp.Bottom)))
		}
	}

	out := frame
	out.X += clampPositive(left)
	out.Y += clampPositive(top)
	out.W -= clampPositive(left) + clampPositive(right)
	out.H -= clampPositive(top) + clampPositive(bottom)
	if out.W < 1 {
		out.W = 1
	}
	if out.H < 1 {
		out.H = 1
	}
	return out
}

func (c *Connection) isDock(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" {
			return true
		}
	}
	return false
}

// strutPartial reads _NET_WM_STRUT_PARTIAL, falling back to the
// full-span _NET_WM_STRUT some docks still use.
func (c *Connection) strutPartial(windowID xproto.Window, rootW, rootH float64) *ewmh.WmStrutPartial {
	if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
		return sp
	}
	s, err := ewmh.WmStrutGet(c.XUtil, windowID)
	if err != nil {
		return nil
	}
	return &ewmh.WmStrutPartial{
		Left: s.Left, Right: s.Right, Top: s.Top, Bottom: s.Bottom,
		LeftStartY: 0, LeftEndY: uint(rootH - 1),
		RightStartY: 0, RightEndY: uint(rootH - 1),
		TopStartX: 0, TopEndX: uint(rootW - 1),
		BottomStartX: 0, BottomEndX: uint(rootW - 1),
	}
}

func spansOverlap(a1, a2, b1, b2 float64) bool {
	return minf(a2, b2) > maxf(a1, b1)
}

func clampPositive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
