// Package desktop provides the simulated desktop: a stack of draggable,
// resizable windows driven by cursor and gesture events.
package desktop

import (
	"image/color"

	"github.com/google/uuid"
)

// TitleBarHeight is the height in pixels of a window's title bar.
const TitleBarHeight = 30

// Window is a single window on the virtual desktop. It holds geometry and
// display metadata only; all stacking and interaction logic lives on Desktop,
// which is the sole mutator of these fields.
type Window struct {
	ID        string
	X, Y      int
	Width     int
	Height    int
	Title     string
	Color     color.RGBA
	Active    bool
	Minimized bool

	// OriginalX, OriginalY record the position the window was created at.
	OriginalX, OriginalY int
}

// NewWindow creates a window at the given position and size.
func NewWindow(x, y, width, height int, title string, c color.RGBA) *Window {
	return &Window{
		ID:        uuid.NewString(),
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Title:     title,
		Color:     c,
		OriginalX: x,
		OriginalY: y,
	}
}

// ContainsPoint reports whether (px, py) lies inside the window, bounds
// inclusive. A minimized window contains nothing.
func (w *Window) ContainsPoint(px, py int) bool {
	if w.Minimized {
		return false
	}
	return px >= w.X && px <= w.X+w.Width &&
		py >= w.Y && py <= w.Y+w.Height
}

// InTitleBar reports whether (px, py) lies inside the window's title bar,
// bounds inclusive. A minimized window has no title bar.
func (w *Window) InTitleBar(px, py int) bool {
	if w.Minimized {
		return false
	}
	return px >= w.X && px <= w.X+w.Width &&
		py >= w.Y && py <= w.Y+TitleBarHeight
}

// Move translates the window by (dx, dy). Positions are not clamped here;
// keeping windows on the canvas is a draw-time concern.
func (w *Window) Move(dx, dy int) {
	w.X += dx
	w.Y += dy
}

// SetPosition moves the window to an absolute position.
func (w *Window) SetPosition(x, y int) {
	w.X = x
	w.Y = y
}

// ToggleMinimize flips the minimized flag. Geometry is untouched so the
// window restores where it was.
func (w *Window) ToggleMinimize() {
	w.Minimized = !w.Minimized
}
