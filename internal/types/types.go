// Package types: shared geometry and cursor types
package types

// Vec2 is a point or a size in virtual pixels
type Vec2 struct {
	X float64
	Y float64
}

// Rect is an axis aligned rectangle in virtual pixels
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate one past the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether p lies inside r. The right and bottom edges are
// excluded so that adjacent rectangles never both claim a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsInclusive reports whether p lies inside r or on any of its edges
func (r Rect) ContainsInclusive(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Cursor is the pointer shape the application wants for the current frame
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorResizeVertical
	CursorPointingHand
)

func (c Cursor) String() string {
	switch c {
	case CursorResizeVertical:
		return "ns-resize"
	case CursorPointingHand:
		return "pointer"
	default:
		return "default"
	}
}

// CursorHint is what a single update routine would like the pointer to look
// like. Dragging hints win over hover hints.
type CursorHint struct {
	Cursor   Cursor
	Dragging bool
}

// ResolveCursor picks exactly one cursor out of the hints produced during a
// frame: the first dragging hint, else the first non-default hover hint,
// else the default cursor.
func ResolveCursor(hints ...CursorHint) Cursor {
	for _, h := range hints {
		if h.Dragging {
			return h.Cursor
		}
	}
	for _, h := range hints {
		if h.Cursor != CursorDefault {
			return h.Cursor
		}
	}
	return CursorDefault
}
