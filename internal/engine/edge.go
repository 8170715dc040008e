package engine

import "github.com/rinodrops/stagedirector/internal/geometry"

// EdgeStep computes the next rect for an edge-directed action.
// Horizontal directions cycle the width through
// 1/2 → 1/3 → 1/4 → 2/3 → 3/4 and compensate for quarter-height
// neighbors on the target side; vertical directions cycle the height
// through 1/2 → 1/3 → 1/4 at full width. A window not yet at the
// directed edge is snapped there without resizing.
//
// others holds the frames of the other visible windows on the same
// screen, used for neighbor detection.
func EdgeStep(win, usable geometry.Rect, dir Direction, others []geometry.Rect, s Settings) geometry.Rect {
	switch dir {
	case Left, Right:
		return horizontalStep(win, usable, dir, others, s)
	case Top, Bottom:
		return verticalStep(win, usable, dir, s)
	}
	return win
}

func horizontalStep(win, usable geometry.Rect, dir Direction, others []geometry.Rect, s Settings) geometry.Rect {
	tol := s.tolerance()
	gap := s.Gaps.Window
	out := win

	// A window whose leading edge is on the far half of the screen is
	// crossing over; that always lands at exactly one half.
	var snapAcross, atEdge bool
	if dir == Left {
		snapAcross = win.X >= usable.MidX()
		atEdge = geometry.AlmostEqual(win.X, usable.X, tol)
	} else {
		snapAcross = win.MaxX() <= usable.MidX()
		atEdge = geometry.AlmostEqual(win.MaxX(), usable.MaxX(), tol)
	}

	fraction := 0.5
	if !snapAcross {
		fraction = nextWidthFraction(geometry.Classify(win.W, usable.W, tol))
	}

	var topCorner, bottomCorner Corner
	if dir == Left {
		topCorner, bottomCorner = TopLeft, BottomLeft
	} else {
		topCorner, bottomCorner = TopRight, BottomRight
	}
	_, topOccupied := OccupantAt(others, usable, topCorner, tol)
	_, bottomOccupied := OccupantAt(others, usable, bottomCorner, tol)

	quarter := usable.H / 4
	halfGap := gap / 2
	switch {
	case topOccupied && bottomOccupied:
		// Center in the band left between the two quarter windows.
		out.Y = usable.Y + quarter + halfGap
		out.H = usable.H/2 - gap
	case topOccupied:
		out.Y = usable.Y + quarter + halfGap
		out.H = usable.H*3/4 - halfGap
	case bottomOccupied:
		out.Y = usable.Y
		out.H = usable.H*3/4 - halfGap
	default:
		out.Y = usable.Y
		out.H = usable.H
	}

	// Resize only when the window was already at the directed edge or
	// is crossing over; a first press is a snap without resize.
	if atEdge || snapAcross {
		out.W = geometry.CalculateWidth(usable, fraction, gap)
	}

	if dir == Left {
		out.X = usable.X
	} else {
		out.X = usable.MaxX() - out.W
	}
	return out
}

// nextWidthFraction advances the horizontal cycle. Unclassified
// ratios reset to one half.
func nextWidthFraction(f geometry.Fraction) float64 {
	switch {
	case f.Is(1.0 / 2):
		return 1.0 / 3
	case f.Is(1.0 / 3):
		return 1.0 / 4
	case f.Is(1.0 / 4):
		return 2.0 / 3
	case f.Is(2.0 / 3):
		return 3.0 / 4
	default:
		return 1.0 / 2
	}
}

func verticalStep(win, usable geometry.Rect, dir Direction, s Settings) geometry.Rect {
	tol := s.tolerance()
	gap := s.Gaps.Window
	out := win

	var atEdge bool
	if dir == Top {
		atEdge = geometry.AlmostEqual(win.Y, usable.Y, tol)
	} else {
		atEdge = geometry.AlmostEqual(win.MaxY(), usable.MaxY(), tol)
	}

	if !atEdge {
		// Snap to the edge, keep the size.
		if dir == Top {
			out.Y = usable.Y
		} else {
			out.Y = usable.MaxY() - win.H
		}
		return out
	}

	out.X = usable.X
	out.W = usable.W
	if !geometry.AlmostEqual(win.W, usable.W, tol) {
		// Fresh vertical placement: full width at half height.
		out.H = geometry.CalculateHeight(usable, 1.0/2, gap)
	} else {
		out.H = geometry.CalculateHeight(usable, nextHeightFraction(geometry.Classify(win.H, usable.H, tol)), gap)
	}

	if dir == Top {
		out.Y = usable.Y
	} else {
		out.Y = usable.MaxY() - out.H
	}
	return out
}

// nextHeightFraction advances the vertical cycle, which has no
// two-thirds or three-quarters states.
func nextHeightFraction(f geometry.Fraction) float64 {
	switch {
	case f.Is(1.0 / 2):
		return 1.0 / 3
	case f.Is(1.0 / 3):
		return 1.0 / 4
	default:
		return 1.0 / 2
	}
}
