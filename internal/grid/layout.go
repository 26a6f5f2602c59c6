package grid

import (
	"strconv"

	"qq/internal/types"
)

const (
	MinColumnWidth = 50
	MaxColumnWidth = 600
)

// Measurer reports the rendered width of a string in virtual pixels
type Measurer interface {
	MeasureText(text string) float64
}

// Spacing is the fixed geometry of grid cells
type Spacing struct {
	RowHeight float64
	Padding   float64
}

// DefaultSpacing returns the reference cell geometry
func DefaultSpacing() Spacing {
	return Spacing{RowHeight: 30, Padding: 8}
}

// Layout is the computed geometry of a grid
type Layout struct {
	Columns []float64
	// CounterWidth is the width of the leading row-number column.
	CounterWidth float64
	Rows         int
	Spacing      Spacing
	// Revision is the grid revision the layout was computed from.
	Revision uint64
}

// CountDigits returns the number of base-10 digits of |n|
func CountDigits(n int) int {
	u := uint64(n)
	if n < 0 {
		u = uint64(-(n + 1)) + 1
	}
	count := 1
	for u >= 10 {
		u /= 10
		count++
	}
	return count
}

// ColumnWidths sizes every column to fit its header and cells. A column
// starts at the header width plus three paddings, never below
// MinColumnWidth, and grows to fit any cell plus five paddings up to
// MaxColumnWidth. Wider text is cut off when drawn.
func ColumnWidths(p Provider, m Measurer, padding float64) []float64 {
	widths := make([]float64, p.Cols())
	for col := range widths {
		w := max(m.MeasureText(p.Header(col))+padding*3, MinColumnWidth)
		w = min(w, MaxColumnWidth)
		for row := 0; row < p.Rows(); row++ {
			tw := m.MeasureText(p.Cell(row, col)) + padding*5
			if tw > w {
				w = min(tw, MaxColumnWidth)
			}
		}
		widths[col] = w
	}
	return widths
}

// Compute lays out p
func Compute(p Provider, m Measurer, s Spacing) Layout {
	return Layout{
		Columns:      ColumnWidths(p, m, s.Padding),
		CounterWidth: m.MeasureText(strconv.Itoa(p.Rows())) + s.Padding*2,
		Rows:         p.Rows(),
		Spacing:      s,
		Revision:     p.Revision(),
	}
}

// ColumnOffset returns the distance from the grid origin to the left edge
// of col, counter column included
func (l Layout) ColumnOffset(col int) float64 {
	x := l.CounterWidth
	for c := 0; c < col && c < len(l.Columns); c++ {
		x += l.Columns[c]
	}
	return x
}

// Width returns the total grid width, counter column included
func (l Layout) Width() float64 {
	return l.ColumnOffset(len(l.Columns))
}

// Height returns the total grid height, header row included
func (l Layout) Height() float64 {
	return float64(l.Rows+1) * l.Spacing.RowHeight
}

// ContentSize returns the virtual size a zone needs to show the whole grid,
// with reserve extra pixels below the last row for the horizontal scrollbar.
// The result is never smaller than bounds.
func (l Layout) ContentSize(bounds types.Rect, reserve float64) types.Vec2 {
	return types.Vec2{
		X: max(l.Width(), bounds.Width),
		Y: max(l.Height()+reserve, bounds.Height),
	}
}

// VisibleRows returns the half-open range of body rows that intersect a
// viewport of the given height scrolled down by scrollY. Body rows start
// one row below the grid origin, under the header.
func (l Layout) VisibleRows(scrollY, height float64) (first, last int) {
	rh := l.Spacing.RowHeight
	if rh <= 0 || l.Rows == 0 {
		return 0, 0
	}
	first = int(scrollY/rh) - 1
	last = int((scrollY+height)/rh) + 1
	last = min(last, l.Rows)
	return min(max(first, 0), last), last
}
