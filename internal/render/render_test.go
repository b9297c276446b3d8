package render

import (
	"testing"

	"github.com/ayusman/mudra/internal/desktop"
)

func testSnapshot(t *testing.T) desktop.Snapshot {
	t.Helper()

	d, err := desktop.New(desktop.DefaultWidth, desktop.DefaultHeight)
	if err != nil {
		t.Fatalf("desktop.New() error = %v", err)
	}
	return d.Snapshot()
}

func TestDraw_CanvasSize(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	snap := testSnapshot(t)

	frame := Draw(snap)
	defer frame.Close()

	if frame.Empty() {
		t.Fatal("Draw() returned an empty frame")
	}
	if frame.Cols() != snap.Width || frame.Rows() != snap.Height {
		t.Errorf("frame is %dx%d, want %dx%d",
			frame.Cols(), frame.Rows(), snap.Width, snap.Height)
	}
}

func TestDraw_SkipsMinimizedWindows(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	snap := testSnapshot(t)
	for i := range snap.Windows {
		snap.Windows[i].Minimized = true
	}

	// Must not panic; minimized windows only appear in the taskbar
	frame := Draw(snap)
	defer frame.Close()

	if frame.Empty() {
		t.Fatal("Draw() returned an empty frame")
	}
}

func TestDraw_OffscreenWindowClamped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	snap := testSnapshot(t)
	snap.Windows[0].X = -500
	snap.Windows[0].Y = 10000

	// The model never clamps positions; drawing must tolerate any of them
	frame := Draw(snap)
	defer frame.Close()

	if frame.Empty() {
		t.Fatal("Draw() returned an empty frame")
	}
}

func TestDraw_StatusBanner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	snap := testSnapshot(t)
	snap.Status = "Moved Notes left"
	snap.StatusFrames = 60

	frame := Draw(snap)
	defer frame.Close()

	if frame.Empty() {
		t.Fatal("Draw() returned an empty frame")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"inside", 50, 0, 100, 50},
		{"below", -10, 0, 100, 0},
		{"above", 150, 0, 100, 100},
		{"inverted range", 50, 0, -20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
