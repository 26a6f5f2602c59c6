package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"qq/internal/grid"
	"qq/internal/types"
	"qq/internal/zone"
)

// DrawGridZone renders p inside z using the precomputed layout l.
//
// Body cells scroll on both axes, the header row only horizontally and the
// row counter only vertically. Everything is clipped to the zone bounds and
// only the visible rows and columns are visited. Scrollbars are drawn last.
func DrawGridZone(s *Surface, z *zone.Zone, p grid.Provider, l grid.Layout, mouse types.Vec2) {
	b := z.Bounds
	rh := l.Spacing.RowHeight
	pad := l.Spacing.Padding
	hover := z.PointerInside(mouse)
	first, last := l.VisibleRows(z.Scroll.Y, b.Height)

	s.BeginScissor(b)

	// Body
	for row := first; row < last; row++ {
		y := b.Y + float64(row+1)*rh - z.Scroll.Y
		forEachVisibleColumn(b, l, z.Scroll.X, func(col int, x, w float64) {
			cell := types.Rect{X: x, Y: y, Width: w, Height: rh}
			s.FillRect(cell, cellBackground(row, cell, mouse, hover))
			s.DrawText(cell, pad, p.Cell(row, col), Text)
		})
	}

	// Header
	forEachVisibleColumn(b, l, z.Scroll.X, func(col int, x, w float64) {
		cell := types.Rect{X: x, Y: b.Y, Width: w, Height: rh}
		bg := Mantle
		if hover && mouse.X >= cell.X && mouse.X < cell.Right() {
			bg = Crust
		}
		s.FillRect(cell, bg)
		s.DrawText(cell, pad, p.Header(col), Text)
	})

	// Row counter, right aligned on the widest number
	digits := grid.CountDigits(l.Rows)
	for row := first; row < last; row++ {
		cell := types.Rect{X: b.X, Y: b.Y + float64(row+1)*rh - z.Scroll.Y, Width: l.CounterWidth, Height: rh}
		bg := Mantle
		if hover && mouse.Y >= cell.Y && mouse.Y < cell.Bottom() {
			bg = Crust
		}
		s.FillRect(cell, bg)
		label := strconv.Itoa(row + 1)
		shift := float64(digits-grid.CountDigits(row+1)) * s.CellWidth()
		s.DrawText(cell, pad+shift, label, Overlay0)
	}

	// Top left corner
	s.FillRect(types.Rect{X: b.X, Y: b.Y, Width: l.CounterWidth, Height: rh}, Mantle)

	s.EndScissor()

	DrawScrollbars(s, z)
}

// forEachVisibleColumn calls fn for every column that intersects the bounds
// horizontally once scrolled by scrollX
func forEachVisibleColumn(b types.Rect, l grid.Layout, scrollX float64, fn func(col int, x, w float64)) {
	x := b.X - scrollX + l.CounterWidth
	for col, w := range l.Columns {
		if x >= b.Right() {
			return
		}
		if x+w > b.X+l.CounterWidth {
			fn(col, x, w)
		}
		x += w
	}
}

// cellBackground picks the body cell color: zebra stripes, with the hovered
// row and column highlighted and the hovered cell itself highlighted more
func cellBackground(row int, cell types.Rect, mouse types.Vec2, hover bool) tcell.Color {
	bg := Base
	if row%2 == 1 {
		bg = Surface0
	}
	if !hover {
		return bg
	}

	inColumn := mouse.X >= cell.X && mouse.X < cell.Right()
	inRow := mouse.Y >= cell.Y && mouse.Y < cell.Bottom()
	switch {
	case inColumn && inRow:
		return Overlay0
	case inColumn || inRow:
		return Surface1
	}
	return bg
}
