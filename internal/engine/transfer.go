package engine

import "github.com/rinodrops/stagedirector/internal/geometry"

// TransferFrame recomputes a window's rect on a different screen,
// preserving its position and size as fractions of the raw screen
// frames. Sidebar and gap reservations are deliberately ignored here:
// relative placement follows screen geometry, not the workspace.
func TransferFrame(win, from, to geometry.Rect) geometry.Rect {
	if from.W <= 0 || from.H <= 0 {
		return win
	}
	return geometry.Rect{
		X: to.X + (win.X-from.X)/from.W*to.W,
		Y: to.Y + (win.Y-from.Y)/from.H*to.H,
		W: win.W / from.W * to.W,
		H: win.H / from.H * to.H,
	}
}
