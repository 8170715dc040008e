package geometry

import "testing"

func TestAlmostEqualReflexive(t *testing.T) {
	values := []float64{0, 1, -1, 0.0001, 1200, 1e9}
	for _, v := range values {
		if !AlmostEqual(v, v, DefaultTolerance) {
			t.Errorf("AlmostEqual(%v, %v) = false, want true", v, v)
		}
	}
}

func TestAlmostEqualSymmetric(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{100, 101, true},
		{100, 103, false},
		{0.5, 0.51, true},
		{0.5, 0.52, false},
		{0, 1, false},
	}
	for _, tc := range cases {
		if got := AlmostEqual(tc.a, tc.b, DefaultTolerance); got != tc.want {
			t.Errorf("AlmostEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := AlmostEqual(tc.b, tc.a, DefaultTolerance); got != tc.want {
			t.Errorf("AlmostEqual(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestAlmostEqualRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 600, H: 800}
	b := Rect{X: 0, Y: 0, W: 608, H: 795}
	if !AlmostEqualRect(a, b, DefaultTolerance) {
		t.Errorf("AlmostEqualRect(%+v, %+v) = false, want true", a, b)
	}
	c := Rect{X: 50, Y: 0, W: 600, H: 800}
	if AlmostEqualRect(a, c, DefaultTolerance) {
		t.Errorf("AlmostEqualRect(%+v, %+v) = true, want false", a, c)
	}
}

func TestCalculateWidth(t *testing.T) {
	usable := Rect{X: 0, Y: 0, W: 1200, H: 800}
	cases := []struct {
		fraction float64
		gap      float64
		want     float64
	}{
		// floor((1200 - 2*8) / 3)
		{1.0 / 3, 8, 394},
		// floor((1200 - 8) / 2)
		{1.0 / 2, 8, 596},
		// floor((1200 - 3*8) / 4)
		{1.0 / 4, 8, 294},
		{1.0 / 2, 0, 600},
	}
	for _, tc := range cases {
		if got := CalculateWidth(usable, tc.fraction, tc.gap); got != tc.want {
			t.Errorf("CalculateWidth(frac=%v, gap=%v) = %v, want %v", tc.fraction, tc.gap, got, tc.want)
		}
	}
}

func TestCalculateHeightZeroFraction(t *testing.T) {
	usable := Rect{W: 1200, H: 800}
	if got := CalculateHeight(usable, 0, 8); got != 0 {
		t.Errorf("CalculateHeight(frac=0) = %v, want 0", got)
	}
}
