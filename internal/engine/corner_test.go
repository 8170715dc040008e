package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

func TestCornerStepSnapOnly(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	// Not flush in the corner yet: reposition at current size, no
	// ladder advance.
	win := geometry.Rect{X: 200, Y: 150, W: 400, H: 300}
	got := CornerStep(win, usable, BottomRight, testSettings(4))
	want := geometry.Rect{X: 800, Y: 500, W: 400, H: 300}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CornerStep mismatch (-want +got):\n%s", diff)
	}
}

func TestCornerStepLadderTopLeft(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	s := testSettings(4)

	win := geometry.Rect{X: 0, Y: 0, W: 598, H: 398}
	steps := []geometry.Rect{
		{X: 0, Y: 0, W: 397, H: 398},
		{X: 0, Y: 0, W: 297, H: 398},
		{X: 0, Y: 0, W: 598, H: 197},
		{X: 0, Y: 0, W: 397, H: 197},
		{X: 0, Y: 0, W: 598, H: 398},
	}
	for i, want := range steps {
		win = CornerStep(win, usable, TopLeft, s)
		if diff := cmp.Diff(want, win); diff != "" {
			t.Fatalf("step %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCornerStepLadderBottomRight(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}
	s := testSettings(4)

	// Same five-state ladder, anchored to the opposite corner.
	win := geometry.Rect{X: 602, Y: 402, W: 598, H: 398}
	wantSizes := []struct{ w, h float64 }{
		{397, 398},
		{297, 398},
		{598, 197},
		{397, 197},
		{598, 398},
	}
	for i, want := range wantSizes {
		win = CornerStep(win, usable, BottomRight, s)
		if win.W != want.w || win.H != want.h {
			t.Fatalf("step %d: size = %vx%v, want %vx%v", i, win.W, win.H, want.w, want.h)
		}
		if win.MaxX() != usable.MaxX() || win.MaxY() != usable.MaxY() {
			t.Fatalf("step %d: not anchored bottom-right: %+v", i, win)
		}
	}
}

func TestCornerStepUnknownSizeResets(t *testing.T) {
	usable := geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}

	// Flush in the corner at an unrecognized size: reset to half/half.
	win := geometry.Rect{X: 0, Y: 0, W: 500, H: 700}
	got := CornerStep(win, usable, TopLeft, testSettings(4))
	want := geometry.Rect{X: 0, Y: 0, W: 598, H: 398}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CornerStep mismatch (-want +got):\n%s", diff)
	}
}
