package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rinodrops/stagedirector/internal/geometry"
	"github.com/rinodrops/stagedirector/internal/platform"
)

type fakeBackend struct {
	displays []platform.Display
	windows  []platform.Window
	active   int // index into windows, -1 for none

	applied map[platform.WindowID]geometry.Rect
}

func (f *fakeBackend) Displays() ([]platform.Display, error) {
	return f.displays, nil
}

func (f *fakeBackend) ActiveWindow() (platform.Window, bool, error) {
	if f.active < 0 {
		return platform.Window{}, false, nil
	}
	return f.windows[f.active], true, nil
}

func (f *fakeBackend) VisibleWindows(displayID int) ([]platform.Window, error) {
	var out []platform.Window
	for _, w := range f.windows {
		if d, ok := platform.DisplayFor(f.displays, w.Frame); ok && d.ID == displayID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeBackend) SetFrame(id platform.WindowID, frame geometry.Rect) error {
	if f.applied == nil {
		f.applied = make(map[platform.WindowID]geometry.Rect)
	}
	f.applied[id] = frame
	return nil
}

func newTestController(backend *fakeBackend, settings Settings) *Controller {
	return NewController(
		backend,
		func() geometry.Sidebar { return geometry.Sidebar{} },
		func() Settings { return settings },
		nil,
	)
}

func TestControllerMoveOrResizeAppliesFrame(t *testing.T) {
	backend := &fakeBackend{
		displays: []platform.Display{{ID: 0, Frame: geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}}},
		windows: []platform.Window{
			{ID: 1, Frame: geometry.Rect{X: 0, Y: 0, W: 600, H: 800}},
		},
	}
	c := newTestController(backend, Settings{Gaps: geometry.Gaps{Window: 8}})

	if err := c.MoveOrResize(Left); err != nil {
		t.Fatalf("MoveOrResize: %v", err)
	}
	want := geometry.Rect{X: 0, Y: 0, W: 394, H: 800}
	if diff := cmp.Diff(want, backend.applied[1]); diff != "" {
		t.Fatalf("applied frame mismatch (-want +got):\n%s", diff)
	}
}

func TestControllerNoFocusedWindowIsNoOp(t *testing.T) {
	backend := &fakeBackend{
		displays: []platform.Display{{ID: 0, Frame: geometry.Rect{W: 1200, H: 800}}},
		active:   -1,
	}
	c := newTestController(backend, Settings{})

	if err := c.MoveOrResize(Left); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if err := c.ToggleMaximize(); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(backend.applied) != 0 {
		t.Fatalf("no frames should have been applied, got %v", backend.applied)
	}
}

func TestControllerExcludesSelfAndFullscreenNeighbors(t *testing.T) {
	usableTopQuarter := geometry.Rect{X: 0, Y: 0, W: 600, H: 200}
	backend := &fakeBackend{
		displays: []platform.Display{{ID: 0, Frame: geometry.Rect{X: 0, Y: 0, W: 1200, H: 800}}},
		windows: []platform.Window{
			{ID: 1, Frame: geometry.Rect{X: 0, Y: 204, W: 596, H: 596}},
			{ID: 2, Frame: usableTopQuarter},
			{ID: 3, Frame: geometry.Rect{X: 0, Y: 600, W: 600, H: 200}, Fullscreen: true},
		},
	}
	c := newTestController(backend, Settings{Gaps: geometry.Gaps{Window: 8}})

	if err := c.MoveOrResize(Left); err != nil {
		t.Fatalf("MoveOrResize: %v", err)
	}
	got := backend.applied[1]
	// Only the real top-left quarter counts; the fullscreen window at
	// the bottom corner is ignored.
	if got.Y != 204 {
		t.Errorf("y = %v, want 204", got.Y)
	}
	if got.H != 596 {
		t.Errorf("h = %v, want 596", got.H)
	}
}

func TestControllerMoveToScreenCycles(t *testing.T) {
	backend := &fakeBackend{
		displays: []platform.Display{
			{ID: 0, Frame: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
			{ID: 1, Frame: geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
		},
		windows: []platform.Window{
			{ID: 7, Frame: geometry.Rect{X: 480, Y: 270, W: 960, H: 540}},
		},
	}
	c := newTestController(backend, Settings{})

	if err := c.MoveToScreen(1); err != nil {
		t.Fatalf("MoveToScreen: %v", err)
	}
	want := geometry.Rect{X: 2400, Y: 270, W: 960, H: 540}
	if diff := cmp.Diff(want, backend.applied[7]); diff != "" {
		t.Fatalf("applied frame mismatch (-want +got):\n%s", diff)
	}

	// Previous from the first display wraps to the last.
	if err := c.MoveToScreen(-1); err != nil {
		t.Fatalf("MoveToScreen: %v", err)
	}
	if diff := cmp.Diff(want, backend.applied[7]); diff != "" {
		t.Fatalf("wrap move mismatch (-want +got):\n%s", diff)
	}
}

func TestControllerSingleDisplayScreenMoveIsNoOp(t *testing.T) {
	backend := &fakeBackend{
		displays: []platform.Display{{ID: 0, Frame: geometry.Rect{W: 1920, H: 1080}}},
		windows: []platform.Window{
			{ID: 1, Frame: geometry.Rect{X: 0, Y: 0, W: 800, H: 600}},
		},
	}
	c := newTestController(backend, Settings{})
	if err := c.MoveToScreen(1); err != nil {
		t.Fatalf("MoveToScreen: %v", err)
	}
	if len(backend.applied) != 0 {
		t.Fatalf("expected no frame change, got %v", backend.applied)
	}
}
