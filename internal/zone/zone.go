package zone

import (
	"qq/internal/input"
	"qq/internal/types"
)

// Zone is a scrollable viewport with independent horizontal and vertical
// scroll state
type Zone struct {
	// Bounds is the visible area, assigned by the driver every frame.
	Bounds types.Rect
	// Scroll is the current offset and persists across frames.
	Scroll types.Vec2
	// ContentSize is the content size consumed by the last Update.
	ContentSize types.Vec2

	VScrollbar Scrollbar
	HScrollbar Scrollbar

	metrics Metrics
}

// New creates an empty zone using the given geometry
func New(m Metrics) *Zone {
	return &Zone{metrics: m}
}

// Metrics returns the geometry the zone was created with
func (z *Zone) Metrics() Metrics {
	return z.metrics
}

// MaxScroll returns the largest valid offset on each axis
func (z *Zone) MaxScroll() types.Vec2 {
	return types.Vec2{
		X: max(0, z.ContentSize.X-z.Bounds.Width),
		Y: max(0, z.ContentSize.Y-z.Bounds.Height),
	}
}

// Clamp keeps the scroll offset inside [0, MaxScroll] on both axes
func (z *Zone) Clamp() {
	limit := z.MaxScroll()
	z.Scroll.X = clamp(z.Scroll.X, 0, limit.X)
	z.Scroll.Y = clamp(z.Scroll.Y, 0, limit.Y)
}

// PointerInside reports whether p is inside the bounds, edges included
func (z *Zone) PointerInside(p types.Vec2) bool {
	return z.Bounds.ContainsInclusive(p)
}

// Dragging reports whether either scrollbar is being dragged
func (z *Zone) Dragging() bool {
	return z.VScrollbar.Dragging || z.HScrollbar.Dragging
}

// LayoutScrollbars recomputes track and thumb geometry from the bounds, the
// content size and the scroll offset. The vertical track runs down the right
// edge and stops short of the horizontal track along the bottom edge.
func (z *Zone) LayoutScrollbars() {
	b := z.Bounds
	m := z.metrics

	v := &z.VScrollbar
	v.VisibleFraction = visibleFraction(b.Height, z.ContentSize.Y)
	v.Track = types.Rect{
		X:      b.Right() - m.ScrollbarWidth,
		Y:      b.Y,
		Width:  m.ScrollbarWidth,
		Height: max(0, b.Height-m.ScrollbarHeight),
	}
	thumbH := thumbLength(v.VisibleFraction, v.Track.Height, m.MinThumbHeight)
	v.Thumb = types.Rect{
		X:      v.Track.X,
		Y:      v.Track.Y + ratio(z.Scroll.Y, z.ContentSize.Y-b.Height)*(v.Track.Height-thumbH),
		Width:  m.ScrollbarWidth,
		Height: thumbH,
	}

	h := &z.HScrollbar
	h.VisibleFraction = visibleFraction(b.Width, z.ContentSize.X)
	h.Track = types.Rect{
		X:      b.X,
		Y:      b.Bottom() - m.ScrollbarHeight,
		Width:  max(0, b.Width-m.ScrollbarWidth),
		Height: m.ScrollbarHeight,
	}
	thumbW := thumbLength(h.VisibleFraction, h.Track.Width, m.MinThumbWidth)
	h.Thumb = types.Rect{
		X:      h.Track.X + ratio(z.Scroll.X, z.ContentSize.X-b.Width)*(h.Track.Width-thumbW),
		Y:      h.Track.Y,
		Width:  thumbW,
		Height: m.ScrollbarHeight,
	}
}

// Update consumes one frame of input. content is the size the zone's
// renderer needs this frame; it is taken as given, so callers floor it at
// the bounds size.
//
// Drags end when the button is released, the window loses focus or the
// pointer leaves the zone. Wheel and drag input only count while the pointer
// is inside the bounds. The offset is clamped last.
func (z *Zone) Update(f input.Frame, content types.Vec2) types.CursorHint {
	z.ContentSize = content
	z.LayoutScrollbars()

	if !f.Focused || !z.PointerInside(f.Mouse) {
		z.VScrollbar.Dragging = false
		z.HScrollbar.Dragging = false
	}

	if z.Bounds.Contains(f.Mouse) {
		step := z.metrics.WheelStep
		if f.Fine {
			z.Scroll.X -= f.Wheel * step
		} else {
			z.Scroll.Y -= f.Wheel * step
		}
		z.Scroll.X -= f.WheelX * step

		limit := z.MaxScroll()
		z.Scroll.Y = z.VScrollbar.drag(vertical, f.Mouse, f.Pressed, f.Released, z.Scroll.Y, limit.Y)
		z.Scroll.X = z.HScrollbar.drag(horizontal, f.Mouse, f.Pressed, f.Released, z.Scroll.X, limit.X)
	}

	z.Clamp()
	z.LayoutScrollbars()

	switch {
	case z.Dragging():
		return types.CursorHint{Cursor: types.CursorPointingHand, Dragging: true}
	case z.Bounds.Contains(f.Mouse) && (z.VScrollbar.Thumb.Contains(f.Mouse) || z.HScrollbar.Thumb.Contains(f.Mouse)):
		return types.CursorHint{Cursor: types.CursorPointingHand}
	}
	return types.CursorHint{}
}
