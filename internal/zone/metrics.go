// Package zone implements the scrollable viewports, their scrollbars and
// the divider that splits the window between two of them.
//
// Everything here is a pure state machine driven by an input.Frame: nothing
// draws, nothing blocks, and all coordinates are virtual pixels.
package zone

// Metrics holds the fixed geometry of zones and the splitter
type Metrics struct {
	// ScrollbarWidth is the width of the vertical track.
	ScrollbarWidth float64
	// ScrollbarHeight is the height of the horizontal track.
	ScrollbarHeight float64
	// MinThumbHeight and MinThumbWidth keep very small thumbs grabbable.
	// Zero disables them.
	MinThumbHeight float64
	MinThumbWidth  float64
	// WheelStep is the scroll distance of one wheel notch.
	WheelStep float64

	SplitterThickness float64
	// SplitterMargin keeps the divider away from the window edges while dragging.
	SplitterMargin float64
}

// DefaultMetrics returns the reference geometry
func DefaultMetrics() Metrics {
	return Metrics{
		ScrollbarWidth:    10,
		ScrollbarHeight:   10,
		WheelStep:         40,
		SplitterThickness: 4,
		SplitterMargin:    10,
	}
}

// CellMetrics adapts the reference geometry to a surface whose cells are
// cellWidth x cellHeight virtual pixels, so that every scrollbar, thumb and
// divider covers at least one whole cell and can be hit by the pointer.
func CellMetrics(cellWidth, cellHeight float64) Metrics {
	m := DefaultMetrics()
	m.ScrollbarWidth = cellWidth
	m.ScrollbarHeight = cellHeight
	m.MinThumbHeight = cellHeight
	m.MinThumbWidth = cellWidth
	m.SplitterThickness = cellHeight
	m.SplitterMargin = 2 * cellHeight
	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ratio divides n by d and returns 0 when d is not positive
func ratio(n, d float64) float64 {
	if d <= 0 {
		return 0
	}
	return n / d
}
