package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

func testSettings(gap float64) Settings {
	return Settings{Gaps: geometry.Gaps{Window: gap}}
}

func TestEdgeStepLeftCycleAtEdge(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	s := testSettings(4)

	// Already snapped left at half width, no neighbors: repeated
	// presses walk the closed width cycle.
	win := geometry.Rect{X: 0, Y: 0, W: 598, H: 800}
	wantWidths := []float64{397, 297, 798, 899, 598, 397}

	for i, want := range wantWidths {
		win = EdgeStep(win, usable, Left, nil, s)
		if win.W != want {
			t.Fatalf("step %d: width = %v, want %v", i, win.W, want)
		}
		if win.X != 0 || win.Y != 0 || win.H != 800 {
			t.Fatalf("step %d: escaped usable area: %+v", i, win)
		}
		if win.X < usable.X || win.MaxX() > usable.MaxX() || win.MaxY() > usable.MaxY() {
			t.Fatalf("step %d: out of bounds: %+v", i, win)
		}
	}
}

func TestEdgeStepLeftScenario(t *testing.T) {
	// usableArea {0,0,1200,800}, windowGap 8, window already at the
	// left edge at half width: next press resizes to one third.
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	win := geometry.Rect{X: 0, Y: 0, W: 600, H: 800}

	got := EdgeStep(win, usable, Left, nil, testSettings(8))
	want := geometry.Rect{X: 0, Y: 0, W: 394, H: 800}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EdgeStep mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeStepSnapWithoutResize(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	// A window away from the edge on the near half keeps its width and
	// only snaps, at full height.
	win := geometry.Rect{X: 300, Y: 100, W: 500, H: 400}
	got := EdgeStep(win, usable, Left, nil, testSettings(8))
	want := geometry.Rect{X: 0, Y: 0, W: 500, H: 800}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EdgeStep mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeStepSnapAcross(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	// Crossing from the right half forces exactly half width no matter
	// the current size.
	win := geometry.Rect{X: 700, Y: 0, W: 400, H: 800}
	got := EdgeStep(win, usable, Left, nil, testSettings(8))
	want := geometry.Rect{X: 0, Y: 0, W: 596, H: 800}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EdgeStep mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeStepRightAnchorsToRightEdge(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	win := geometry.Rect{X: 604, Y: 0, W: 596, H: 800}
	got := EdgeStep(win, usable, Right, nil, testSettings(8))
	if got.W != 394 {
		t.Fatalf("width = %v, want 394", got.W)
	}
	if got.MaxX() != usable.MaxX() {
		t.Fatalf("right edge = %v, want %v", got.MaxX(), usable.MaxX())
	}
}

func TestEdgeStepTopNeighborCompensation(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	s := testSettings(8)

	// Quarter-height window flush top-left: snapping left drops the
	// window below it.
	occupant := geometry.Rect{X: 0, Y: 0, W: 600, H: 200}
	win := geometry.Rect{X: 0, Y: 204, W: 596, H: 596}

	got := EdgeStep(win, usable, Left, []geometry.Rect{occupant}, s)
	if got.Y != 204 {
		t.Errorf("y = %v, want 204 (usable top + quarter + half gap)", got.Y)
	}
	if got.H != 596 {
		t.Errorf("h = %v, want 596 (3/4 usable height - half gap)", got.H)
	}
}

func TestEdgeStepBottomNeighborCompensation(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	s := testSettings(8)

	// Quarter-height window flush bottom-left: the snapped window
	// keeps the usable top with three quarters of the height.
	occupant := geometry.Rect{X: 0, Y: 600, W: 600, H: 200}
	win := geometry.Rect{X: 300, Y: 100, W: 500, H: 400}

	got := EdgeStep(win, usable, Left, []geometry.Rect{occupant}, s)
	if got.Y != 0 {
		t.Errorf("y = %v, want 0", got.Y)
	}
	if got.H != 596 {
		t.Errorf("h = %v, want 596 (3/4 usable height - half gap)", got.H)
	}
	// Not at the edge yet, so the width stays.
	if got.W != 500 {
		t.Errorf("w = %v, want 500", got.W)
	}
}

func TestEdgeStepBothNeighborsCenterBand(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	s := testSettings(8)

	occupants := []geometry.Rect{
		{X: 0, Y: 0, W: 600, H: 200},
		{X: 0, Y: 600, W: 600, H: 200},
	}
	win := geometry.Rect{X: 0, Y: 204, W: 596, H: 392}

	got := EdgeStep(win, usable, Left, occupants, s)
	if got.Y != 204 {
		t.Errorf("y = %v, want 204", got.Y)
	}
	if got.H != 392 {
		t.Errorf("h = %v, want 392 (1/2 usable height - gap)", got.H)
	}
}

func TestEdgeStepOppositeSideNeighborIgnored(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	// A quarter occupant at the left corners does not affect snapping
	// to the right.
	occupant := geometry.Rect{X: 0, Y: 0, W: 600, H: 200}
	win := geometry.Rect{X: 604, Y: 0, W: 596, H: 800}

	got := EdgeStep(win, usable, Right, []geometry.Rect{occupant}, testSettings(8))
	if got.Y != 0 || got.H != 800 {
		t.Fatalf("expected full height without compensation, got %+v", got)
	}
}

func TestEdgeStepVerticalSnapOnly(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	win := geometry.Rect{X: 100, Y: 300, W: 500, H: 200}
	got := EdgeStep(win, usable, Top, nil, testSettings(8))
	want := geometry.Rect{X: 100, Y: 0, W: 500, H: 200}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EdgeStep mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeStepVerticalFreshPlacement(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	// At the top edge but not full width: full width at half height.
	win := geometry.Rect{X: 100, Y: 0, W: 500, H: 200}
	got := EdgeStep(win, usable, Top, nil, testSettings(8))
	want := geometry.Rect{X: 0, Y: 0, W: 1200, H: 396}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EdgeStep mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeStepVerticalCycle(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	s := testSettings(4)

	win := geometry.Rect{X: 0, Y: 0, W: 1200, H: 398}
	wantHeights := []float64{264, 197, 398, 264}
	for i, want := range wantHeights {
		win = EdgeStep(win, usable, Top, nil, s)
		if win.H != want {
			t.Fatalf("step %d: height = %v, want %v", i, win.H, want)
		}
		if win.Y != 0 || win.X != 0 || win.W != 1200 {
			t.Fatalf("step %d: unexpected placement %+v", i, win)
		}
	}
}

func TestEdgeStepBottomAnchorsToBottomEdge(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	win := geometry.Rect{X: 0, Y: 404, W: 1200, H: 396}
	got := EdgeStep(win, usable, Bottom, nil, testSettings(8))
	if got.MaxY() != usable.MaxY() {
		t.Fatalf("bottom edge = %v, want %v", got.MaxY(), usable.MaxY())
	}
}
