// Package engine implements the geometry state machines behind every
// window action: edge and corner snap-or-cycle, the almost-maximize
// ladder, centering, and cross-screen transfers. All stepping
// functions are pure; the Controller wires them to a platform backend.
package engine

import (
	"fmt"

	"github.com/rinodrops/stagedirector/internal/geometry"
)

// Direction identifies an edge-directed action.
type Direction string

const (
	Left   Direction = "left"
	Right  Direction = "right"
	Top    Direction = "top"
	Bottom Direction = "bottom"
)

// ParseDirection validates a direction received over IPC or the CLI.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Left, Right, Top, Bottom:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Corner identifies a screen corner, numbered 1=top-left, 2=top-right,
// 3=bottom-left, 4=bottom-right.
type Corner int

const (
	TopLeft     Corner = 1
	TopRight    Corner = 2
	BottomLeft  Corner = 3
	BottomRight Corner = 4
)

// ParseCorner validates a corner index received over IPC or the CLI.
func ParseCorner(n int) (Corner, error) {
	if n < 1 || n > 4 {
		return 0, fmt.Errorf("corner index %d out of range 1..4", n)
	}
	return Corner(n), nil
}

func (c Corner) left() bool { return c == TopLeft || c == BottomLeft }
func (c Corner) top() bool  { return c == TopLeft || c == TopRight }

// Settings is the immutable configuration snapshot passed into each
// geometry computation. A snapshot is taken per action so concurrent
// configuration updates never affect an in-flight computation.
type Settings struct {
	Gaps          geometry.Gaps
	Tolerance     float64
	MaximizeSizes []float64
}

// DefaultMaximizeSizes is the almost-maximize ladder used when the
// configuration does not provide one.
var DefaultMaximizeSizes = []float64{0.9, 0.65}

func (s Settings) tolerance() float64 {
	if s.Tolerance <= 0 {
		return geometry.DefaultTolerance
	}
	return s.Tolerance
}

func (s Settings) maximizeSizes() []float64 {
	if len(s.MaximizeSizes) == 0 {
		return DefaultMaximizeSizes
	}
	return s.MaximizeSizes
}
