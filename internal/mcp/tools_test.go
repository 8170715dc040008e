package mcp

import (
	"context"
	"strings"
	"testing"
)

func TestMoveOrResizeRejectsBadDirection(t *testing.T) {
	s := NewServer()

	for _, dir := range []string{"", "up", "diagonal", "LEFT"} {
		_, _, err := s.handleMoveOrResize(context.Background(), nil, MoveOrResizeInput{Direction: dir})
		if err == nil {
			t.Errorf("direction %q: expected error, got nil", dir)
		}
	}
}

func TestCornerCycleRejectsOutOfRange(t *testing.T) {
	s := NewServer()

	for _, corner := range []int{0, -1, 5} {
		_, _, err := s.handleCornerCycle(context.Background(), nil, CornerCycleInput{Corner: corner})
		if err == nil {
			t.Errorf("corner %d: expected error, got nil", corner)
		}
		if err != nil && !strings.Contains(err.Error(), "invalid corner") {
			t.Errorf("corner %d: unexpected error %v", corner, err)
		}
	}
}

func TestMoveToScreenRejectsBadDirection(t *testing.T) {
	s := NewServer()

	for _, dir := range []string{"", "left", "forward"} {
		_, _, err := s.handleMoveToScreen(context.Background(), nil, MoveToScreenInput{Direction: dir})
		if err == nil {
			t.Errorf("direction %q: expected error, got nil", dir)
		}
	}
}
