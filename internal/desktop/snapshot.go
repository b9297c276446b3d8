package desktop

import "image/color"

// WindowState is an immutable copy of one window's displayable state.
type WindowState struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	X         int        `json:"x"`
	Y         int        `json:"y"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Color     color.RGBA `json:"color"`
	Active    bool       `json:"active"`
	Minimized bool       `json:"minimized"`
}

// Snapshot is a point-in-time copy of the desktop for renderers and the
// HTTP API. Windows are ordered back to front.
type Snapshot struct {
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Windows      []WindowState `json:"windows"`
	ActiveID     string        `json:"active_id,omitempty"`
	Dragging     bool          `json:"dragging"`
	Status       string        `json:"status"`
	StatusFrames int           `json:"status_frames"`
}

// Snapshot captures the current desktop state by value.
func (d *Desktop) Snapshot() Snapshot {
	s := Snapshot{
		Width:        d.width,
		Height:       d.height,
		Windows:      make([]WindowState, len(d.windows)),
		Dragging:     d.dragging,
		Status:       d.statusMessage,
		StatusFrames: d.statusTimer,
	}
	for i, w := range d.windows {
		s.Windows[i] = WindowState{
			ID:        w.ID,
			Title:     w.Title,
			X:         w.X,
			Y:         w.Y,
			Width:     w.Width,
			Height:    w.Height,
			Color:     w.Color,
			Active:    w.Active,
			Minimized: w.Minimized,
		}
	}
	if d.active != nil {
		s.ActiveID = d.active.ID
	}
	return s
}
