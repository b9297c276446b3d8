package gesture

import (
	"image"
	"math"
)

// Direction represents a swipe direction.
type Direction string

const (
	// DirectionAny matches any swipe direction.
	DirectionAny Direction = "any"
	// DirectionLeft is a swipe toward negative x.
	DirectionLeft Direction = "left"
	// DirectionRight is a swipe toward positive x.
	DirectionRight Direction = "right"
	// DirectionUp is a swipe toward negative y.
	DirectionUp Direction = "up"
	// DirectionDown is a swipe toward positive y.
	DirectionDown Direction = "down"
)

// Rotation represents the orientation of a circle gesture.
type Rotation string

const (
	// RotationClockwise is a clockwise circle in screen coordinates.
	RotationClockwise Rotation = "clockwise"
	// RotationCounterClockwise is a counterclockwise circle.
	RotationCounterClockwise Rotation = "counterclockwise"
)

// Detection thresholds and timing constants.
const (
	// CooldownFrames suppresses re-triggering after any detection fires.
	CooldownFrames = 15
	// DefaultSwipeThreshold is the minimum displacement in pixels for a swipe.
	DefaultSwipeThreshold = 100
	// DefaultDepthThreshold is the minimum vertical displacement for push/pull.
	DefaultDepthThreshold = 150
	// DefaultCircleThreshold is the minimum total path length for a circle.
	DefaultCircleThreshold = 200

	// minSwipePoints is the history length required for swipe/push/pull.
	minSwipePoints = 5
	// minCirclePoints is the history length required for circle detection.
	minCirclePoints = 8
	// circleClosureMax is the maximum start-to-end distance of a closed loop.
	circleClosureMax = 50
)

// Recognizer classifies swipe, push, pull, and circle gestures from a
// sliding window of cursor positions.
//
// A single cooldown counter is shared across all gesture kinds: once any
// detection fires, every kind is suppressed for CooldownFrames updates.
// This keeps a held gesture from re-firing each frame and from triggering
// several kinds at once.
type Recognizer struct {
	history  *PositionHistory
	cooldown int
}

// NewRecognizer creates a Recognizer buffering up to historySize positions.
// historySize values less than or equal to 0 select DefaultHistorySize.
func NewRecognizer(historySize int) (*Recognizer, error) {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	history, err := NewPositionHistory(historySize)
	if err != nil {
		return nil, err
	}
	return &Recognizer{history: history}, nil
}

// Update records the tracked position for the current frame. A nil position
// means no hand was observed this frame; the history is left untouched but
// the cooldown still advances. Call exactly once per frame so the cooldown
// stays frame-accurate.
func (r *Recognizer) Update(pos *image.Point) {
	if pos != nil {
		r.history.Push(*pos)
	}
	if r.cooldown > 0 {
		r.cooldown--
	}
}

// Cooldown returns the number of frames remaining before another gesture
// may fire.
func (r *Recognizer) Cooldown() int {
	return r.cooldown
}

// Reset clears the position history and the cooldown.
func (r *Recognizer) Reset() {
	r.history.Clear()
	r.cooldown = 0
}

// DetectSwipe checks for a straight-line swipe of at least threshold pixels
// from the oldest to the newest buffered position. want narrows detection
// to one direction; DirectionAny accepts all four. A threshold less than or
// equal to 0 selects DefaultSwipeThreshold.
//
// Returns the classified direction and true when a swipe fired. The
// cooldown is armed only on a successful detection.
func (r *Recognizer) DetectSwipe(want Direction, threshold float64) (Direction, bool) {
	if r.history.Len() < minSwipePoints {
		return "", false
	}
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}

	start := r.history.Oldest()
	end := r.history.Newest()
	dx := end.X - start.X
	dy := end.Y - start.Y

	if math.Hypot(float64(dx), float64(dy)) < threshold {
		return "", false
	}

	// Classify the primary axis; ties go to vertical.
	var detected Direction
	if abs(dx) > abs(dy) {
		if dx > 0 {
			detected = DirectionRight
		} else {
			detected = DirectionLeft
		}
	} else {
		if dy > 0 {
			detected = DirectionDown
		} else {
			detected = DirectionUp
		}
	}

	if (want == DirectionAny || want == detected) && r.cooldown == 0 {
		r.cooldown = CooldownFrames
		return detected, true
	}

	return "", false
}

// DetectPush checks for the hand moving toward the camera. With a mirrored
// webcam feed that appears as downward motion, so a positive vertical
// displacement beyond threshold fires. A threshold less than or equal to 0
// selects DefaultDepthThreshold.
func (r *Recognizer) DetectPush(threshold float64) bool {
	if r.history.Len() < minSwipePoints {
		return false
	}
	if threshold <= 0 {
		threshold = DefaultDepthThreshold
	}

	dy := r.history.Newest().Y - r.history.Oldest().Y

	if float64(dy) > threshold && r.cooldown == 0 {
		r.cooldown = CooldownFrames
		return true
	}
	return false
}

// DetectPull is the inverse of DetectPush: the hand moving away from the
// camera appears as upward motion, so a vertical displacement below
// -threshold fires.
func (r *Recognizer) DetectPull(threshold float64) bool {
	if r.history.Len() < minSwipePoints {
		return false
	}
	if threshold <= 0 {
		threshold = DefaultDepthThreshold
	}

	dy := r.history.Newest().Y - r.history.Oldest().Y

	if float64(dy) < -threshold && r.cooldown == 0 {
		r.cooldown = CooldownFrames
		return true
	}
	return false
}

// DetectCircle checks for a closed circular motion across the whole buffer.
// The accumulated segment lengths must reach threshold (a path length, not
// a displacement) and the start and end points must lie within
// circleClosureMax of each other. A threshold less than or equal to 0
// selects DefaultCircleThreshold.
//
// Orientation comes from the sign of the shoelace-style sum
// Σ (x[i]-x[i-1])·(y[i]+y[i-1]); with y growing downward a positive sum is
// clockwise on screen.
func (r *Recognizer) DetectCircle(threshold float64) (Rotation, bool) {
	if r.history.Len() < minCirclePoints {
		return "", false
	}
	if threshold <= 0 {
		threshold = DefaultCircleThreshold
	}

	var pathLength float64
	for i := 1; i < r.history.Len(); i++ {
		p1 := r.history.At(i - 1)
		p2 := r.history.At(i)
		pathLength += math.Hypot(float64(p2.X-p1.X), float64(p2.Y-p1.Y))
	}
	if pathLength < threshold {
		return "", false
	}

	start := r.history.Oldest()
	end := r.history.Newest()
	closure := math.Hypot(float64(end.X-start.X), float64(end.Y-start.Y))
	if closure >= circleClosureMax {
		return "", false
	}

	var shoelace int
	for i := 1; i < r.history.Len(); i++ {
		p1 := r.history.At(i - 1)
		p2 := r.history.At(i)
		shoelace += (p2.X - p1.X) * (p2.Y + p1.Y)
	}

	if r.cooldown == 0 {
		r.cooldown = CooldownFrames
		if shoelace > 0 {
			return RotationClockwise, true
		}
		return RotationCounterClockwise, true
	}

	return "", false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
