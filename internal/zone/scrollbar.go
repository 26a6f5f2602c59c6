package zone

import "qq/internal/types"

// Scrollbar is the track and thumb of one scroll axis
type Scrollbar struct {
	Track types.Rect
	Thumb types.Rect

	Dragging bool
	// GrabOffset is the distance from the pointer to the thumb origin when
	// the drag started, along the scrollbar axis.
	GrabOffset float64

	// VisibleFraction is viewport / content along the axis and sizes the thumb.
	VisibleFraction float64
	// DragPosition is the thumb position ratio in [0,1] of the current or
	// last drag. It never feeds back into the thumb size.
	DragPosition float64
}

type axis int

const (
	vertical axis = iota
	horizontal
)

func (a axis) of(v types.Vec2) float64 {
	if a == vertical {
		return v.Y
	}
	return v.X
}

func (a axis) origin(r types.Rect) float64 {
	if a == vertical {
		return r.Y
	}
	return r.X
}

func (a axis) length(r types.Rect) float64 {
	if a == vertical {
		return r.Height
	}
	return r.Width
}

func visibleFraction(view, content float64) float64 {
	if content <= 0 {
		return 1
	}
	f := view / content
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// thumbLength sizes the thumb from the visible fraction, honouring the
// minimum length but never outgrowing the track
func thumbLength(fraction, track, minimum float64) float64 {
	return min(max(fraction*track, minimum), track)
}

// drag runs the Idle/Dragging state machine of one axis for a frame whose
// pointer is inside the zone. It returns the new scroll offset on that axis.
func (sb *Scrollbar) drag(a axis, pointer types.Vec2, pressed, released bool, scroll, scrollRange float64) float64 {
	if pressed && sb.Thumb.Contains(pointer) {
		sb.Dragging = true
		sb.GrabOffset = a.of(pointer) - a.origin(sb.Thumb)
	}
	if released {
		sb.Dragging = false
	}
	if !sb.Dragging {
		return scroll
	}

	travel := a.length(sb.Track) - a.length(sb.Thumb)
	pos := clamp(ratio(a.of(pointer)-sb.GrabOffset-a.origin(sb.Track), travel), 0, 1)
	sb.DragPosition = pos
	return pos * scrollRange
}
