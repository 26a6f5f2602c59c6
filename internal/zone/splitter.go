package zone

import (
	"qq/internal/input"
	"qq/internal/types"
)

// Splitter is the draggable divider between the top and bottom zones
type Splitter struct {
	Rect     types.Rect
	Dragging bool
	// Ratio is the divider position as a fraction of the window height.
	Ratio     float64
	Thickness float64
	// Y is the absolute divider position derived from Ratio.
	Y float64

	margin float64
}

// NewSplitter creates a divider at ratio of the window height
func NewSplitter(ratio float64, m Metrics) *Splitter {
	return &Splitter{
		Ratio:     ratio,
		Thickness: m.SplitterThickness,
		margin:    m.SplitterMargin,
	}
}

func (s *Splitter) place(width float64) {
	s.Rect = types.Rect{X: 0, Y: s.Y - s.Thickness/2, Width: width, Height: s.Thickness}
}

// Update moves the divider for one frame. A press on the divider starts a
// drag and any release ends it, wherever the pointer is. While dragging the
// divider follows the pointer, kept margin away from both window edges.
func (s *Splitter) Update(f input.Frame, width, height float64) types.CursorHint {
	s.Y = s.Ratio * height
	s.place(width)

	if f.Pressed && s.Rect.Contains(f.Mouse) {
		s.Dragging = true
	}
	if f.Released {
		s.Dragging = false
	}

	if !s.Dragging {
		if s.Rect.Contains(f.Mouse) {
			return types.CursorHint{Cursor: types.CursorResizeVertical}
		}
		return types.CursorHint{}
	}

	s.Y = f.Mouse.Y
	if s.Y < s.margin {
		s.Y = s.margin
	}
	if s.Y > height-s.margin {
		s.Y = height - s.margin
	}
	s.Ratio = ratio(s.Y, height)
	s.place(width)
	return types.CursorHint{Cursor: types.CursorResizeVertical, Dragging: true}
}

// Panes returns the bounds of the zones above and below the divider
func (s *Splitter) Panes(width, height float64) (top, bottom types.Rect) {
	half := s.Thickness / 2
	top = types.Rect{X: 0, Y: 0, Width: width, Height: max(0, s.Y-half)}
	bottomY := min(s.Y+half, height)
	bottom = types.Rect{X: 0, Y: bottomY, Width: width, Height: max(0, height-bottomY)}
	return top, bottom
}

// PointerInWindow reports whether p is inside a width x height window.
// Callers can use it to cancel drags when the pointer leaves the window.
func PointerInWindow(p types.Vec2, width, height float64) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= width && p.Y <= height
}
