package desktop

import (
	"fmt"
	"image/color"

	"github.com/ayusman/mudra/internal/gesture"
)

// Desktop geometry and interaction constants.
const (
	// DefaultWidth and DefaultHeight match the camera canvas.
	DefaultWidth  = 1280
	DefaultHeight = 720

	// moveStep is how far a swipe moves the active window.
	moveStep = 50

	// Push/pull resize steps and their clamps.
	growWidth  = 50
	growHeight = 40
	maxWidth   = 600
	maxHeight  = 400
	minWidth   = 200
	minHeight  = 150

	// statusFrames is how long a status message stays visible.
	statusFrames = 60
)

const welcomeMessage = "Welcome! Use hand gestures to control windows"

// Desktop owns an ordered stack of windows and the interaction state for a
// single pinch-capable pointer. Window order is back to front: the last
// element draws on top and wins cursor hit-tests.
//
// All methods must be called from a single goroutine, one frame at a time.
type Desktop struct {
	width  int
	height int

	windows []*Window
	active  *Window

	dragging    bool
	dragOffsetX int
	dragOffsetY int

	statusMessage string
	statusTimer   int
}

// New creates a desktop of the given size populated with the demo windows.
func New(width, height int) (*Desktop, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("desktop dimensions must be positive, got %dx%d", width, height)
	}

	d := &Desktop{
		width:  width,
		height: height,
	}
	d.Reset()
	return d, nil
}

// Reset replaces all windows with the canonical demo set and clears the
// active and drag state.
func (d *Desktop) Reset() {
	d.windows = []*Window{
		NewWindow(100, 100, 300, 200, "Notes", color.RGBA{R: 173, G: 216, B: 230, A: 255}),
		NewWindow(450, 150, 350, 250, "Browser", color.RGBA{R: 230, G: 216, B: 173, A: 255}),
		NewWindow(250, 350, 280, 180, "Music", color.RGBA{R: 216, G: 191, B: 216, A: 255}),
	}
	d.active = nil
	d.dragging = false
	d.dragOffsetX = 0
	d.dragOffsetY = 0
	d.statusMessage = welcomeMessage
	d.statusTimer = 0
}

// HandleCursor processes one frame of pointer input. Pinching over a title
// bar starts a drag and raises the window; releasing the pinch ends the
// drag wherever the cursor is; while dragging, the active window follows
// the cursor at the grab offset.
func (d *Desktop) HandleCursor(x, y int, pinching bool) {
	// Hit-test front to back so the top-most window wins
	var clicked *Window
	for i := len(d.windows) - 1; i >= 0; i-- {
		if d.windows[i].ContainsPoint(x, y) {
			clicked = d.windows[i]
			break
		}
	}

	if pinching {
		if !d.dragging && clicked != nil && clicked.InTitleBar(x, y) {
			d.dragging = true
			d.active = clicked
			d.dragOffsetX = x - clicked.X
			d.dragOffsetY = y - clicked.Y
			d.bringToFront(clicked)
			clicked.Active = true
		}
	} else {
		d.dragging = false
	}

	if d.dragging && d.active != nil {
		d.active.SetPosition(x-d.dragOffsetX, y-d.dragOffsetY)
	}
}

// bringToFront moves w to the end of the stack and deactivates every other
// window.
func (d *Desktop) bringToFront(w *Window) {
	for i, win := range d.windows {
		if win == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			d.windows = append(d.windows, w)
			break
		}
	}
	for _, win := range d.windows {
		if win != w {
			win.Active = false
		}
	}
}

// HandleSwipe moves the active window one step in the swiped direction.
// When no window is active the swipe is consumed activating the top-most
// window instead.
func (d *Desktop) HandleSwipe(dir gesture.Direction) {
	if d.active == nil {
		if len(d.windows) > 0 {
			d.active = d.windows[len(d.windows)-1]
			d.active.Active = true
		}
		return
	}

	switch dir {
	case gesture.DirectionLeft:
		d.active.Move(-moveStep, 0)
		d.SetStatus(fmt.Sprintf("Moved %s left", d.active.Title))
	case gesture.DirectionRight:
		d.active.Move(moveStep, 0)
		d.SetStatus(fmt.Sprintf("Moved %s right", d.active.Title))
	case gesture.DirectionUp:
		d.active.Move(0, -moveStep)
		d.SetStatus(fmt.Sprintf("Moved %s up", d.active.Title))
	case gesture.DirectionDown:
		d.active.Move(0, moveStep)
		d.SetStatus(fmt.Sprintf("Moved %s down", d.active.Title))
	}
}

// HandlePush grows the active window, clamped to the maximum size. No-op
// when no window is active.
func (d *Desktop) HandlePush() {
	if d.active == nil {
		return
	}
	d.active.Width = min(d.active.Width+growWidth, maxWidth)
	d.active.Height = min(d.active.Height+growHeight, maxHeight)
	d.SetStatus(fmt.Sprintf("Enlarged %s", d.active.Title))
}

// HandlePull shrinks the active window, clamped to the minimum size. No-op
// when no window is active.
func (d *Desktop) HandlePull() {
	if d.active == nil {
		return
	}
	d.active.Width = max(d.active.Width-growWidth, minWidth)
	d.active.Height = max(d.active.Height-growHeight, minHeight)
	d.SetStatus(fmt.Sprintf("Shrunk %s", d.active.Title))
}

// SetStatus replaces the status banner text and restarts its display timer.
func (d *Desktop) SetStatus(message string) {
	d.statusMessage = message
	d.statusTimer = statusFrames
}

// Tick advances the per-frame timers. Call once per frame after input
// handling.
func (d *Desktop) Tick() {
	if d.statusTimer > 0 {
		d.statusTimer--
	}
}

// Size returns the desktop canvas dimensions.
func (d *Desktop) Size() (width, height int) {
	return d.width, d.height
}

// Windows returns the window stack, back to front. The returned slice is a
// copy but the windows are the live instances; callers must not mutate them.
func (d *Desktop) Windows() []*Window {
	out := make([]*Window, len(d.windows))
	copy(out, d.windows)
	return out
}

// ActiveWindow returns the window receiving gesture operations, or nil.
func (d *Desktop) ActiveWindow() *Window {
	return d.active
}

// Dragging reports whether a drag is in progress.
func (d *Desktop) Dragging() bool {
	return d.dragging
}

// Status returns the banner text and the frames it remains visible.
func (d *Desktop) Status() (message string, framesLeft int) {
	return d.statusMessage, d.statusTimer
}
