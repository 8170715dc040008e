package geometry

// DockEdge identifies which screen edge the system dock is pinned to.
type DockEdge string

const (
	DockTop    DockEdge = "top"
	DockBottom DockEdge = "bottom"
	DockLeft   DockEdge = "left"
	DockRight  DockEdge = "right"
)

// Sidebar is the probed state of the reserved workspace-switcher strip.
type Sidebar struct {
	Enabled bool
	Dock    DockEdge
}

// Gaps holds the spacing configuration applied to every geometry
// computation. All values are pixels.
type Gaps struct {
	Window  float64
	Edge    float64
	Sidebar float64
}

// ResolveUsableArea derives the working rectangle from a raw screen
// frame. The sidebar strip is reserved on the left unless the dock is
// already pinned there, in which case the strip moves to the right
// edge. The edge gap is then taken from all four sides. Dimensions are
// clamped to zero when the reservations exceed the screen; callers
// must tolerate a degenerate area.
func ResolveUsableArea(screen Rect, sidebar Sidebar, gaps Gaps) Rect {
	area := screen
	if sidebar.Enabled {
		if sidebar.Dock == DockLeft {
			area.W -= gaps.Sidebar
		} else {
			area.X += gaps.Sidebar
			area.W -= gaps.Sidebar
		}
	}

	area.X += gaps.Edge
	area.Y += gaps.Edge
	area.W -= 2 * gaps.Edge
	area.H -= 2 * gaps.Edge

	if area.W < 0 {
		area.W = 0
	}
	if area.H < 0 {
		area.H = 0
	}
	return area
}
