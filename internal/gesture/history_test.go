package gesture

import (
	"image"
	"testing"
)

func TestNewPositionHistory_RejectsBadCapacity(t *testing.T) {
	if _, err := NewPositionHistory(0); err == nil {
		t.Error("expected error for capacity 0")
	}
	if _, err := NewPositionHistory(-3); err == nil {
		t.Error("expected error for negative capacity")
	}
}

func TestPositionHistory_EvictsOldest(t *testing.T) {
	h, err := NewPositionHistory(3)
	if err != nil {
		t.Fatalf("NewPositionHistory() error = %v", err)
	}

	h.Push(image.Pt(1, 0))
	h.Push(image.Pt(2, 0))
	h.Push(image.Pt(3, 0))

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	// Pushing past capacity evicts the oldest point
	h.Push(image.Pt(4, 0))

	if h.Len() != 3 {
		t.Errorf("Len() after overflow = %d, want 3", h.Len())
	}
	if h.Oldest() != image.Pt(2, 0) {
		t.Errorf("Oldest() = %v, want (2,0)", h.Oldest())
	}
	if h.Newest() != image.Pt(4, 0) {
		t.Errorf("Newest() = %v, want (4,0)", h.Newest())
	}
}

func TestPositionHistory_OrderIsArrivalOrder(t *testing.T) {
	h, err := NewPositionHistory(5)
	if err != nil {
		t.Fatalf("NewPositionHistory() error = %v", err)
	}

	points := []image.Point{{10, 1}, {20, 2}, {30, 3}}
	for _, p := range points {
		h.Push(p)
	}

	for i, want := range points {
		if got := h.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestPositionHistory_Clear(t *testing.T) {
	h, err := NewPositionHistory(4)
	if err != nil {
		t.Fatalf("NewPositionHistory() error = %v", err)
	}

	h.Push(image.Pt(1, 1))
	h.Push(image.Pt(2, 2))
	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", h.Len())
	}

	// Reusable after clearing
	h.Push(image.Pt(9, 9))
	if h.Newest() != image.Pt(9, 9) {
		t.Errorf("Newest() = %v, want (9,9)", h.Newest())
	}
}
