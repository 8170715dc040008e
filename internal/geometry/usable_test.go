package geometry

import "testing"

func TestResolveUsableAreaNoSidebar(t *testing.T) {
	screen := Rect{X: 0, Y: 25, W: 1920, H: 1055}
	gaps := Gaps{Window: 8, Edge: 10, Sidebar: 64}

	got := ResolveUsableArea(screen, Sidebar{}, gaps)
	want := Rect{X: 10, Y: 35, W: 1900, H: 1035}
	if got != want {
		t.Fatalf("ResolveUsableArea = %+v, want %+v", got, want)
	}
}

func TestResolveUsableAreaSidebarLeft(t *testing.T) {
	screen := Rect{X: 0, Y: 0, W: 1920, H: 1080}
	gaps := Gaps{Edge: 10, Sidebar: 64}

	// Dock on the bottom: sidebar strip takes the left edge.
	got := ResolveUsableArea(screen, Sidebar{Enabled: true, Dock: DockBottom}, gaps)
	want := Rect{X: 74, Y: 10, W: 1836, H: 1060}
	if got != want {
		t.Fatalf("dock bottom: got %+v, want %+v", got, want)
	}
}

func TestResolveUsableAreaDockLeft(t *testing.T) {
	screen := Rect{X: 0, Y: 0, W: 1920, H: 1080}
	gaps := Gaps{Edge: 10, Sidebar: 64}

	// Dock pinned left: sidebar strip moves to the right edge instead.
	got := ResolveUsableArea(screen, Sidebar{Enabled: true, Dock: DockLeft}, gaps)
	want := Rect{X: 10, Y: 10, W: 1836, H: 1060}
	if got != want {
		t.Fatalf("dock left: got %+v, want %+v", got, want)
	}
}

func TestResolveUsableAreaIdempotentInputs(t *testing.T) {
	screen := Rect{X: 0, Y: 0, W: 1200, H: 800}
	sidebar := Sidebar{Enabled: true, Dock: DockBottom}
	gaps := Gaps{Window: 8, Edge: 8, Sidebar: 64}

	first := ResolveUsableArea(screen, sidebar, gaps)
	second := ResolveUsableArea(screen, sidebar, gaps)
	if first != second {
		t.Fatalf("resolve not deterministic: %+v vs %+v", first, second)
	}
}

func TestResolveUsableAreaDegenerate(t *testing.T) {
	screen := Rect{X: 0, Y: 0, W: 100, H: 100}
	gaps := Gaps{Edge: 80, Sidebar: 64}

	got := ResolveUsableArea(screen, Sidebar{Enabled: true, Dock: DockBottom}, gaps)
	if got.W != 0 || got.H != 0 {
		t.Fatalf("expected zero-clamped dimensions, got %+v", got)
	}
	if !got.Empty() {
		t.Fatal("degenerate area should report Empty")
	}
}
