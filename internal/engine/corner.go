package engine

import "github.com/rinodrops/stagedirector/internal/geometry"

// CornerStep computes the next rect for a corner-directed action. A
// window not already flush against both edges of the target corner is
// snapped there at its current size. A window already in the corner
// advances through a five-state size ladder keyed by its current
// (width, height) fraction pair:
//
//	(1/2,1/2) → (1/3,1/2) → (1/4,1/2) → (1/2,1/4) → (1/3,1/4) → (1/2,1/2)
//
// Any unrecognized pair resets to (1/2,1/2).
func CornerStep(win, usable geometry.Rect, corner Corner, s Settings) geometry.Rect {
	tol := s.tolerance()
	gap := s.Gaps.Window

	var atX, atY bool
	if corner.left() {
		atX = geometry.AlmostEqual(win.X, usable.X, tol)
	} else {
		atX = geometry.AlmostEqual(win.MaxX(), usable.MaxX(), tol)
	}
	if corner.top() {
		atY = geometry.AlmostEqual(win.Y, usable.Y, tol)
	} else {
		atY = geometry.AlmostEqual(win.MaxY(), usable.MaxY(), tol)
	}

	out := win
	if !atX || !atY {
		// Snap only.
		return anchorToCorner(out, usable, corner)
	}

	wf := geometry.Classify(win.W, usable.W, tol)
	hf := geometry.Classify(win.H, usable.H, tol)

	var nextW, nextH float64
	switch {
	case wf.Is(1.0/2) && hf.Is(1.0/2):
		nextW, nextH = 1.0/3, 1.0/2
	case wf.Is(1.0/3) && hf.Is(1.0/2):
		nextW, nextH = 1.0/4, 1.0/2
	case wf.Is(1.0/4) && hf.Is(1.0/2):
		nextW, nextH = 1.0/2, 1.0/4
	case wf.Is(1.0/2) && hf.Is(1.0/4):
		nextW, nextH = 1.0/3, 1.0/4
	default:
		nextW, nextH = 1.0/2, 1.0/2
	}

	out.W = geometry.CalculateWidth(usable, nextW, gap)
	out.H = geometry.CalculateHeight(usable, nextH, gap)
	return anchorToCorner(out, usable, corner)
}

func anchorToCorner(win, usable geometry.Rect, corner Corner) geometry.Rect {
	out := win
	if corner.left() {
		out.X = usable.X
	} else {
		out.X = usable.MaxX() - win.W
	}
	if corner.top() {
		out.Y = usable.Y
	} else {
		out.Y = usable.MaxY() - win.H
	}
	return out
}
