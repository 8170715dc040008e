package engine

import "github.com/rinodrops/stagedirector/internal/geometry"

// Centered repositions the window at the midpoint of the usable area
// without changing its size.
func Centered(win, usable geometry.Rect) geometry.Rect {
	out := win
	out.X = usable.X + (usable.W-win.W)/2
	out.Y = usable.Y + (usable.H-win.H)/2
	return out
}

// UpperCentered centers the window horizontally and places it one
// third of the free vertical space down from the usable top, so the
// result always stays inside the usable area.
func UpperCentered(win, usable geometry.Rect) geometry.Rect {
	out := win
	out.X = usable.X + (usable.W-win.W)/2
	out.Y = usable.Y + (usable.H-win.H)/3
	return out
}
