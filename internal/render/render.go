// Package render draws desktop snapshots onto OpenCV frames for the
// preview stream. The core never draws; it only produces snapshots.
package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/desktop"
)

// Layout constants for the drawn desktop.
const (
	taskbarHeight   = 50
	taskbarButtonW  = 100
	taskbarGap      = 10
	shadowOffset    = 5
	statusBarHeight = 40
)

var (
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	shadowGray  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	taskbarGray = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	statusGray  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	hiddenGray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	closeRed    = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	minimizeCyn = color.RGBA{R: 0, G: 200, B: 200, A: 255}
)

// Draw renders a desktop snapshot to a new BGR frame. The caller owns the
// returned Mat and must close it.
func Draw(s desktop.Snapshot) gocv.Mat {
	canvas := gocv.NewMatWithSize(s.Height, s.Width, gocv.MatTypeCV8UC3)

	drawBackground(&canvas, s.Width, s.Height)

	// Back to front so the front-most window draws last
	for _, w := range s.Windows {
		if !w.Minimized {
			drawWindow(&canvas, w, s.Width, s.Height)
		}
	}

	drawTaskbar(&canvas, s)

	if s.StatusFrames > 0 {
		drawStatus(&canvas, s)
	}

	return canvas
}

// drawBackground paints the vertical gradient backdrop.
func drawBackground(canvas *gocv.Mat, width, height int) {
	for y := 0; y < height; y++ {
		intensity := uint8(60 + y*40/height)
		c := color.RGBA{R: intensity, G: intensity, B: intensity, A: 255}
		gocv.Line(canvas, image.Pt(0, y), image.Pt(width, y), c, 1)
	}
}

func drawWindow(canvas *gocv.Mat, w desktop.WindowState, width, height int) {
	// Keep the window on the canvas; only the drawing clamps, the model
	// keeps the unclamped position.
	x := clamp(w.X, 0, width-w.Width)
	y := clamp(w.Y, 0, height-taskbarHeight-10-w.Height)

	gocv.Rectangle(canvas,
		image.Rect(x+shadowOffset, y+shadowOffset, x+w.Width+shadowOffset, y+w.Height+shadowOffset),
		shadowGray, -1)

	gocv.Rectangle(canvas, image.Rect(x, y, x+w.Width, y+w.Height), w.Color, -1)

	gocv.Rectangle(canvas, image.Rect(x, y, x+w.Width, y+desktop.TitleBarHeight), darken(w.Color), -1)
	gocv.PutText(canvas, w.Title, image.Pt(x+10, y+20), gocv.FontHersheySimplex, 0.6, white, 2)

	// Close and minimize buttons (close is decorative; closing windows is
	// not an available action)
	gocv.Rectangle(canvas, image.Rect(x+w.Width-25, y+5, x+w.Width-5, y+25), closeRed, -1)
	gocv.PutText(canvas, "X", image.Pt(x+w.Width-20, y+20), gocv.FontHersheySimplex, 0.5, white, 2)
	gocv.Rectangle(canvas, image.Rect(x+w.Width-50, y+5, x+w.Width-30, y+25), minimizeCyn, -1)
	gocv.PutText(canvas, "_", image.Pt(x+w.Width-45, y+20), gocv.FontHersheySimplex, 0.5, white, 2)

	if w.Active {
		gocv.Rectangle(canvas, image.Rect(x-2, y-2, x+w.Width+2, y+w.Height+2), green, 3)
	}
}

func drawTaskbar(canvas *gocv.Mat, s desktop.Snapshot) {
	top := s.Height - taskbarHeight
	gocv.Rectangle(canvas, image.Rect(0, top, s.Width, s.Height), taskbarGray, -1)

	buttonX := taskbarGap
	for _, w := range s.Windows {
		buttonColor := w.Color
		if w.Minimized {
			buttonColor = hiddenGray
		}
		gocv.Rectangle(canvas,
			image.Rect(buttonX, top+10, buttonX+taskbarButtonW, top+40),
			buttonColor, -1)

		title := w.Title
		if len(title) > 8 {
			title = title[:8] + "..."
		}
		gocv.PutText(canvas, title, image.Pt(buttonX+5, top+30), gocv.FontHersheySimplex, 0.5, white, 1)

		buttonX += taskbarButtonW + taskbarGap
	}
}

func drawStatus(canvas *gocv.Mat, s desktop.Snapshot) {
	top := s.Height - taskbarHeight - 10 - statusBarHeight
	gocv.Rectangle(canvas, image.Rect(10, top, s.Width-10, top+statusBarHeight), statusGray, -1)
	gocv.PutText(canvas, s.Status, image.Pt(20, top+25), gocv.FontHersheySimplex, 0.6, green, 2)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.7),
		G: uint8(float64(c.G) * 0.7),
		B: uint8(float64(c.B) * 0.7),
		A: c.A,
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
