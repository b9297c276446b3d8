package tracker

import (
	"image"
	"math"
)

// DefaultPinchThreshold is the maximum thumb-to-index distance in pixels
// that counts as a pinch.
const DefaultPinchThreshold = 40

// IndexTipPosition returns the index finger tip in pixel coordinates for a
// frame of the given size. This is the desktop cursor.
func (h *HandLandmarks) IndexTipPosition(frameWidth, frameHeight int) image.Point {
	tip := h.Points[IndexTip]
	return image.Pt(
		int(tip.X*float64(frameWidth)),
		int(tip.Y*float64(frameHeight)),
	)
}

// IsPinching reports whether the thumb tip and index finger tip are within
// threshold pixels of each other, signaling a grab. A threshold less than
// or equal to 0 selects DefaultPinchThreshold.
func (h *HandLandmarks) IsPinching(frameWidth, frameHeight int, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultPinchThreshold
	}

	thumb := h.Points[ThumbTip]
	index := h.Points[IndexTip]

	dx := (thumb.X - index.X) * float64(frameWidth)
	dy := (thumb.Y - index.Y) * float64(frameHeight)

	return math.Hypot(dx, dy) < threshold
}

// CountFingersUp returns how many fingers are extended (0-5).
//
// The thumb is a horizontal check (tip past the IP joint); the other four
// fingers count when the tip sits above the PIP joint. y grows downward,
// so "above" means a smaller y.
func (h *HandLandmarks) CountFingersUp() int {
	count := 0

	if h.Points[ThumbTip].X < h.Points[ThumbIP].X {
		count++
	}

	tips := [4]int{IndexTip, MiddleTip, RingTip, PinkyTip}
	pips := [4]int{IndexPIP, MiddlePIP, RingPIP, PinkyPIP}
	for i := range tips {
		if h.Points[tips[i]].Y < h.Points[pips[i]].Y {
			count++
		}
	}

	return count
}
