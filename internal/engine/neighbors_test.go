package engine

import (
	"testing"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

func TestOccupantAtMatchesQuarterWindow(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	tol := geometry.DefaultTolerance

	quarterTL := geometry.Rect{X: 0, Y: 0, W: 600, H: 200}
	quarterBR := geometry.Rect{X: 600, Y: 600, W: 600, H: 200}
	windows := []geometry.Rect{quarterTL, quarterBR}

	if got, ok := OccupantAt(windows, usable, TopLeft, tol); !ok || got != quarterTL {
		t.Fatalf("TopLeft: got %+v ok=%v, want %+v", got, ok, quarterTL)
	}
	if got, ok := OccupantAt(windows, usable, BottomRight, tol); !ok || got != quarterBR {
		t.Fatalf("BottomRight: got %+v ok=%v, want %+v", got, ok, quarterBR)
	}
	if _, ok := OccupantAt(windows, usable, TopRight, tol); ok {
		t.Fatal("TopRight: unexpected occupant")
	}
	if _, ok := OccupantAt(windows, usable, BottomLeft, tol); ok {
		t.Fatal("BottomLeft: unexpected occupant")
	}
}

func TestOccupantAtRejectsNonQuarterHeights(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	windows := []geometry.Rect{
		{X: 0, Y: 0, W: 600, H: 400},  // half height
		{X: 0, Y: 0, W: 600, H: 230},  // too far from a quarter
		{X: 50, Y: 0, W: 600, H: 200}, // quarter height but off the corner
	}
	if _, ok := OccupantAt(windows, usable, TopLeft, geometry.DefaultTolerance); ok {
		t.Fatal("unexpected occupant match")
	}
}

func TestOccupantAtTolerantOfNearQuarter(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	// Gap-adjusted quarter windows still count.
	windows := []geometry.Rect{{X: 0, Y: 0, W: 600, H: 197}}
	if _, ok := OccupantAt(windows, usable, TopLeft, geometry.DefaultTolerance); !ok {
		t.Fatal("expected near-quarter occupant to match")
	}
}
