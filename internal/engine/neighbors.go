package engine

import "github.com/rinodrops/stagedirector/internal/geometry"

// OccupantAt returns the first window whose rect sits flush in the
// given corner of the usable area with a height of one quarter of the
// usable height. No ordering is guaranteed among multiple matches.
// Callers are expected to pass windows already filtered to visible,
// non-fullscreen ones, excluding the window being acted on.
func OccupantAt(windows []geometry.Rect, usable geometry.Rect, corner Corner, tolerance float64) (geometry.Rect, bool) {
	quarter := usable.H / 4
	for _, w := range windows {
		if !geometry.AlmostEqual(w.H, quarter, tolerance) {
			continue
		}
		var atX, atY bool
		if corner.left() {
			atX = geometry.AlmostEqual(w.X, usable.X, tolerance)
		} else {
			atX = geometry.AlmostEqual(w.MaxX(), usable.MaxX(), tolerance)
		}
		if corner.top() {
			atY = geometry.AlmostEqual(w.Y, usable.Y, tolerance)
		} else {
			atY = geometry.AlmostEqual(w.MaxY(), usable.MaxY(), tolerance)
		}
		if atX && atY {
			return w, true
		}
	}
	return geometry.Rect{}, false
}
