package tracker

import (
	"math"
	"testing"
)

const (
	frameWidth  = 1280
	frameHeight = 720
)

func TestIndexTipPosition(t *testing.T) {
	h := PointingHandAt(0.5, 0.25)

	pos := h.IndexTipPosition(frameWidth, frameHeight)
	if pos.X != 640 || pos.Y != 180 {
		t.Errorf("IndexTipPosition() = %v, want (640, 180)", pos)
	}
}

func TestIsPinching(t *testing.T) {
	t.Run("PinchingHand", func(t *testing.T) {
		h := PinchingHandAt(0.5, 0.5)
		if !h.IsPinching(frameWidth, frameHeight, 0) {
			t.Error("pinching fixture not detected as pinch")
		}
	})

	t.Run("PointingHand", func(t *testing.T) {
		h := PointingHandAt(0.5, 0.5)
		if h.IsPinching(frameWidth, frameHeight, 0) {
			t.Error("pointing fixture detected as pinch")
		}
	})

	t.Run("CustomThreshold", func(t *testing.T) {
		// The pointing thumb sits 128 px from the index tip; a generous
		// threshold turns it into a pinch.
		h := PointingHandAt(0.5, 0.5)
		if !h.IsPinching(frameWidth, frameHeight, 200) {
			t.Error("expected pinch with 200 px threshold")
		}
	})
}

func TestCountFingersUp(t *testing.T) {
	cases := []struct {
		name string
		hand HandLandmarks
		want int
	}{
		{"OpenPalm", OpenPalmHandAt(0.5, 0.3), 5},
		{"Pointing", PointingHandAt(0.5, 0.3), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.hand.CountFingersUp(); got != c.want {
				t.Errorf("CountFingersUp() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	h := OpenPalmHandAt(0.5, 0.3)

	normalized := h.Normalize()
	if normalized == nil {
		t.Fatal("Normalize() returned nil")
	}

	wrist := normalized.Points[Wrist]
	if wrist.X != 0 || wrist.Y != 0 || wrist.Z != 0 {
		t.Errorf("normalized wrist = %+v, want origin", wrist)
	}

	scale := distance3D(Point3D{}, normalized.Points[MiddleMCP])
	if math.Abs(scale-1.0) > 1e-9 {
		t.Errorf("wrist-to-middle-MCP distance = %f, want 1.0", scale)
	}
}

func TestNormalize_NilReceiver(t *testing.T) {
	var h *HandLandmarks
	if h.Normalize() != nil {
		t.Error("Normalize() on nil should return nil")
	}
}

func TestMockDetector(t *testing.T) {
	m := NewMockDetector()

	hands, err := m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(hands) != 0 {
		t.Errorf("len(hands) = %d, want 0", len(hands))
	}

	m.SetHands([]HandLandmarks{PointingHandAt(0.5, 0.5)})
	hands, err = m.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(hands) != 1 {
		t.Fatalf("len(hands) = %d, want 1", len(hands))
	}
}
