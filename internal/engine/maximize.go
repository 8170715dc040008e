package engine

import "github.com/rinodrops/stagedirector/internal/geometry"

// MaximizeStep cycles a window through the configured almost-maximize
// sizes and full screen. The current state is inferred from the
// smaller of the window's width and height ratios: a match on the last
// ladder entry advances to full screen, any other match advances to
// the next entry, and no match (including an already-maximized window)
// restarts the ladder. Every non-full state is centered in the usable
// area.
func MaximizeStep(win, usable geometry.Rect, s Settings) geometry.Rect {
	tol := s.tolerance()
	ladder := s.maximizeSizes()

	current := 0.0
	if usable.W > 0 && usable.H > 0 {
		wr := win.W / usable.W
		hr := win.H / usable.H
		current = wr
		if hr < wr {
			current = hr
		}
	}

	matched := -1
	for i, f := range ladder {
		if geometry.AlmostEqual(current, f, tol) {
			matched = i
			break
		}
	}

	out := win
	if matched == len(ladder)-1 {
		out.X = usable.X
		out.Y = usable.Y
		out.W = usable.W
		out.H = usable.H
		return out
	}

	next := ladder[0]
	if matched >= 0 {
		next = ladder[matched+1]
	}
	out.W = usable.W * next
	out.H = usable.H * next
	return Centered(out, usable)
}
