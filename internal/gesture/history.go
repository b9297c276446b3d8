// Package gesture provides temporal gesture recognition over a sliding
// window of tracked cursor positions.
package gesture

import (
	"fmt"
	"image"
)

// DefaultHistorySize is the number of recent positions kept for detection.
const DefaultHistorySize = 10

// PositionHistory is a bounded FIFO of cursor positions. When full, pushing
// a new position evicts the oldest. Positions are ordered oldest first.
type PositionHistory struct {
	points   []image.Point
	capacity int
}

// NewPositionHistory creates a history with the given capacity.
func NewPositionHistory(capacity int) (*PositionHistory, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", capacity)
	}
	return &PositionHistory{
		points:   make([]image.Point, 0, capacity),
		capacity: capacity,
	}, nil
}

// Push appends a position, evicting the oldest if the history is full.
func (h *PositionHistory) Push(p image.Point) {
	if len(h.points) >= h.capacity {
		// Shift left by 1, removing the oldest point
		copy(h.points, h.points[1:])
		h.points = h.points[:h.capacity-1]
	}
	h.points = append(h.points, p)
}

// Len returns the number of buffered positions.
func (h *PositionHistory) Len() int {
	return len(h.points)
}

// At returns the position at index i (0 = oldest).
func (h *PositionHistory) At(i int) image.Point {
	return h.points[i]
}

// Oldest returns the first buffered position. Valid only when Len() > 0.
func (h *PositionHistory) Oldest() image.Point {
	return h.points[0]
}

// Newest returns the last buffered position. Valid only when Len() > 0.
func (h *PositionHistory) Newest() image.Point {
	return h.points[len(h.points)-1]
}

// Clear removes all buffered positions.
func (h *PositionHistory) Clear() {
	h.points = h.points[:0]
}
