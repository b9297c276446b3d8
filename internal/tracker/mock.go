package tracker

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// baseHand lays out the palm landmarks around an index tip at normalized
// (x, y). The finger poses are filled in by the fixture constructors.
func baseHand(x, y float64) HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: x, Y: y + 0.25}
	h.Points[ThumbCMC] = Point3D{X: x + 0.08, Y: y + 0.20}

	h.Points[IndexMCP] = Point3D{X: x, Y: y + 0.14}
	h.Points[MiddleMCP] = Point3D{X: x - 0.04, Y: y + 0.15}
	h.Points[RingMCP] = Point3D{X: x - 0.08, Y: y + 0.16}
	h.Points[PinkyMCP] = Point3D{X: x - 0.12, Y: y + 0.17}

	return h
}

// PointingHandAt returns a hand with only the index finger extended, its
// tip at normalized (x, y). The thumb is held away from the index tip, so
// the hand is not pinching.
func PointingHandAt(x, y float64) HandLandmarks {
	h := baseHand(x, y)

	h.Points[IndexTip] = Point3D{X: x, Y: y}
	h.Points[IndexDIP] = Point3D{X: x, Y: y + 0.04}
	h.Points[IndexPIP] = Point3D{X: x, Y: y + 0.08}

	// Remaining fingers curled: tips below their PIP joints
	h.Points[MiddleTip] = Point3D{X: x - 0.04, Y: y + 0.14}
	h.Points[MiddleDIP] = Point3D{X: x - 0.04, Y: y + 0.12}
	h.Points[MiddlePIP] = Point3D{X: x - 0.04, Y: y + 0.10}
	h.Points[RingTip] = Point3D{X: x - 0.08, Y: y + 0.15}
	h.Points[RingDIP] = Point3D{X: x - 0.08, Y: y + 0.13}
	h.Points[RingPIP] = Point3D{X: x - 0.08, Y: y + 0.11}
	h.Points[PinkyTip] = Point3D{X: x - 0.12, Y: y + 0.16}
	h.Points[PinkyDIP] = Point3D{X: x - 0.12, Y: y + 0.14}
	h.Points[PinkyPIP] = Point3D{X: x - 0.12, Y: y + 0.12}

	// Thumb folded across the palm, tip to the right of its IP joint
	h.Points[ThumbMCP] = Point3D{X: x + 0.03, Y: y + 0.14}
	h.Points[ThumbIP] = Point3D{X: x + 0.05, Y: y + 0.12}
	h.Points[ThumbTip] = Point3D{X: x + 0.10, Y: y + 0.12}

	return h
}

// PinchingHandAt returns a hand pinching at normalized (x, y): the thumb
// tip touches the index tip.
func PinchingHandAt(x, y float64) HandLandmarks {
	h := PointingHandAt(x, y)

	h.Points[ThumbMCP] = Point3D{X: x + 0.04, Y: y + 0.08}
	h.Points[ThumbIP] = Point3D{X: x + 0.03, Y: y + 0.04}
	h.Points[ThumbTip] = Point3D{X: x + 0.01, Y: y + 0.01}

	return h
}

// OpenPalmHandAt returns a hand with all five fingers extended and the
// index tip at normalized (x, y).
func OpenPalmHandAt(x, y float64) HandLandmarks {
	h := baseHand(x, y)

	h.Points[IndexTip] = Point3D{X: x, Y: y}
	h.Points[IndexDIP] = Point3D{X: x, Y: y + 0.04}
	h.Points[IndexPIP] = Point3D{X: x, Y: y + 0.08}

	h.Points[MiddleTip] = Point3D{X: x - 0.04, Y: y - 0.02}
	h.Points[MiddleDIP] = Point3D{X: x - 0.04, Y: y + 0.02}
	h.Points[MiddlePIP] = Point3D{X: x - 0.04, Y: y + 0.06}
	h.Points[RingTip] = Point3D{X: x - 0.08, Y: y}
	h.Points[RingDIP] = Point3D{X: x - 0.08, Y: y + 0.04}
	h.Points[RingPIP] = Point3D{X: x - 0.08, Y: y + 0.08}
	h.Points[PinkyTip] = Point3D{X: x - 0.12, Y: y + 0.02}
	h.Points[PinkyDIP] = Point3D{X: x - 0.12, Y: y + 0.05}
	h.Points[PinkyPIP] = Point3D{X: x - 0.12, Y: y + 0.09}

	// Thumb extended, tip left of its IP joint
	h.Points[ThumbMCP] = Point3D{X: x + 0.12, Y: y + 0.12}
	h.Points[ThumbIP] = Point3D{X: x + 0.10, Y: y + 0.10}
	h.Points[ThumbTip] = Point3D{X: x + 0.05, Y: y + 0.08}

	return h
}
