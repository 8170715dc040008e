package platform

import "github.com/rinodrops/stagedirector/internal/geometry"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Window contains metadata and geometry for a top-level window.
type Window struct {
	ID         WindowID
	Title      string
	Frame      geometry.Rect
	Fullscreen bool
}

// Display describes a physical display. Frame is the raw frame with
// the window system's reserved areas (panels, menu bar) already
// excluded via the work area.
type Display struct {
	ID    int
	Name  string
	Frame geometry.Rect
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	// Displays returns all active displays in a stable left-to-right
	// order. The ordering defines screen adjacency for cross-screen
	// moves.
	Displays() ([]Display, error)
	// ActiveWindow returns the focused window. The second return is
	// false when no window has focus; that is not an error.
	ActiveWindow() (Window, bool, error)
	// VisibleWindows returns the mapped, normal windows on the given
	// display and the current virtual desktop.
	VisibleWindows(displayID int) ([]Window, error)
	// SetFrame moves and resizes a window.
	SetFrame(id WindowID, frame geometry.Rect) error
}

// DisplayFor returns the display whose frame contains the center of
// the given rect, falling back to the first display.
func DisplayFor(displays []Display, frame geometry.Rect) (Display, bool) {
	if len(displays) == 0 {
		return Display{}, false
	}
	cx := frame.MidX()
	cy := frame.Y + frame.H/2
	for _, d := range displays {
		if cx >= d.Frame.X && cx < d.Frame.MaxX() &&
			cy >= d.Frame.Y && cy < d.Frame.MaxY() {
			return d, true
		}
	}
	return displays[0], true
}
