// Package ui draws zones, the grid and the status footer onto a tcell screen.
//
// Renderers work in the same virtual pixels as the zone package. The Surface
// maps them onto terminal cells: a cell belongs to a rectangle when the
// cell's centre lies inside it, which is also where the input collector
// reports the pointer, so what is drawn is exactly what can be hit.
package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"qq/internal/types"
)

// Surface is a drawing target over a tcell screen
type Surface struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64
	// reserved rows at the bottom of the screen are left to the footer.
	reserved int

	clip    types.Rect
	clipped bool
}

// NewSurface wraps screen. Each terminal cell covers cellWidth x cellHeight
// virtual pixels and the last reserved rows are not part of the surface.
func NewSurface(screen tcell.Screen, cellWidth, cellHeight float64, reserved int) *Surface {
	return &Surface{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		reserved:   reserved,
	}
}

// Screen returns the underlying screen
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// CellWidth returns the width of one terminal cell in virtual pixels
func (s *Surface) CellWidth() float64 {
	return s.cellWidth
}

// CellHeight returns the height of one terminal cell in virtual pixels
func (s *Surface) CellHeight() float64 {
	return s.cellHeight
}

func (s *Surface) cells() (cols, rows int) {
	cols, rows = s.screen.Size()
	return cols, max(0, rows-s.reserved)
}

// Size returns the drawable area in virtual pixels
func (s *Surface) Size() types.Vec2 {
	cols, rows := s.cells()
	return types.Vec2{X: float64(cols) * s.cellWidth, Y: float64(rows) * s.cellHeight}
}

// BeginScissor restricts drawing to r until EndScissor
func (s *Surface) BeginScissor(r types.Rect) {
	s.clip = r
	s.clipped = true
}

// EndScissor lifts the drawing restriction
func (s *Surface) EndScissor() {
	s.clipped = false
}

// span returns the half-open range of cells whose centres lie in [lo, hi).
// A non-empty interval narrower than a cell still gets the cell under its
// middle.
func span(lo, hi, size float64) (first, last int) {
	if hi <= lo || size <= 0 {
		return 0, 0
	}
	first = int(math.Ceil(lo/size - 0.5))
	last = int(math.Ceil(hi/size - 0.5))
	if first >= last {
		first = int(math.Floor((lo + hi) / 2 / size))
		last = first + 1
	}
	return first, last
}

// area returns the cells covered by r after clipping to the scissor and the
// surface
func (s *Surface) area(r types.Rect) (x0, y0, x1, y1 int) {
	cols, rows := s.cells()
	x0, x1 = span(r.X, r.Right(), s.cellWidth)
	y0, y1 = span(r.Y, r.Bottom(), s.cellHeight)
	if s.clipped {
		cx0, cx1 := span(s.clip.X, s.clip.Right(), s.cellWidth)
		cy0, cy1 := span(s.clip.Y, s.clip.Bottom(), s.cellHeight)
		x0, x1 = max(x0, cx0), min(x1, cx1)
		y0, y1 = max(y0, cy0), min(y1, cy1)
	}
	return max(x0, 0), max(y0, 0), min(x1, cols), min(y1, rows)
}

// Clear fills the whole surface with bg
func (s *Surface) Clear(bg tcell.Color) {
	cols, rows := s.cells()
	style := tcell.StyleDefault.Background(bg).Foreground(Text)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillRect paints r with bg and erases any text under it
func (s *Surface) FillRect(r types.Rect, bg tcell.Color) {
	x0, y0, x1, y1 := s.area(r)
	style := tcell.StyleDefault.Background(bg).Foreground(Text)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes text on the first row of r, starting pad pixels from its
// left edge. Text that does not fit in r is cut off. The background already
// painted under each cell is kept.
func (s *Surface) DrawText(r types.Rect, pad float64, text string, fg tcell.Color) {
	_, y0, _, y1 := s.area(r)
	if y0 >= y1 {
		return
	}
	textArea := types.Rect{X: r.X + pad, Y: r.Y, Width: r.Width - pad, Height: r.Height}
	if textArea.Width <= 0 {
		return
	}
	x0, _, x1, _ := s.area(textArea)
	// The first text column is where the padded origin falls, even when
	// clipping removed it.
	start, _ := span(textArea.X, textArea.Right(), s.cellWidth)
	_, stop := span(r.X, r.Right(), s.cellWidth)
	x1 = min(x1, stop)

	x := start
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > x1 {
			break
		}
		if x >= x0 {
			_, _, style, _ := s.screen.GetContent(x, y0)
			_, bg, _ := style.Decompose()
			s.screen.SetContent(x, y0, ch, nil, tcell.StyleDefault.Background(bg).Foreground(fg))
		}
		x += w
	}
}
