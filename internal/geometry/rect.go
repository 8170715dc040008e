package geometry

import "math"

// DefaultTolerance is the relative tolerance used for all approximate
// comparisons when the caller does not override it.
const DefaultTolerance = 0.02

// Rect describes a window or screen region in screen coordinates.
// Width and height are never negative.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// MidX returns the horizontal center of the rect.
func (r Rect) MidX() float64 {
	return r.X + r.W/2
}

// MaxX returns the right edge of the rect.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the bottom edge of the rect.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// AlmostEqual reports whether a and b are equal within a relative
// tolerance, expressed as a fraction of the larger magnitude. Exact
// equality always passes, so the comparison is reflexive even at zero.
func AlmostEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tolerance*math.Max(math.Abs(a), math.Abs(b))
}

// AlmostEqualRect reports whether every component of a and b is
// almost equal under the same relative tolerance.
func AlmostEqualRect(a, b Rect, tolerance float64) bool {
	return AlmostEqual(a.X, b.X, tolerance) &&
		AlmostEqual(a.Y, b.Y, tolerance) &&
		AlmostEqual(a.W, b.W, tolerance) &&
		AlmostEqual(a.H, b.H, tolerance)
}

// CalculateWidth returns the width of a window occupying the given
// fraction of the usable area, with the gap space between the windows
// that would share the remaining span subtracted first. A window at
// fraction 1/3 leaves room for two gaps; at 1/2 for one.
func CalculateWidth(usable Rect, fraction, gap float64) float64 {
	if fraction <= 0 {
		return 0
	}
	return math.Floor((usable.W - (1/fraction-1)*gap) * fraction)
}

// CalculateHeight is the vertical counterpart of CalculateWidth.
func CalculateHeight(usable Rect, fraction, gap float64) float64 {
	if fraction <= 0 {
		return 0
	}
	return math.Floor((usable.H - (1/fraction-1)*gap) * fraction)
}
