package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"qq/internal/types"
	"qq/internal/zone"
)

// Placeholder is the fixed-size demo content shown in the top zone. Markers
// every MarkerSpacing pixels show their own content coordinates so that
// scrolling on both axes is visible.
type Placeholder struct {
	Size          types.Vec2
	MarkerSpacing float64
	Title         string
}

// NewPlaceholder returns the 1600x1200 demo content
func NewPlaceholder() Placeholder {
	return Placeholder{
		Size:          types.Vec2{X: 1600, Y: 1200},
		MarkerSpacing: 200,
		Title:         "Scrollable Content",
	}
}

// ContentSize returns the placeholder size, never smaller than bounds
func (p Placeholder) ContentSize(bounds types.Rect) types.Vec2 {
	return types.Vec2{
		X: max(p.Size.X, bounds.Width),
		Y: max(p.Size.Y, bounds.Height),
	}
}

// DrawZone draws the placeholder content of z on bg, scrolled and clipped
// to the zone, followed by its scrollbars
func DrawZone(s *Surface, z *zone.Zone, p Placeholder, bg, fg tcell.Color) {
	b := z.Bounds
	s.BeginScissor(b)
	s.FillRect(b, bg)

	origin := types.Vec2{X: b.X - z.Scroll.X, Y: b.Y - z.Scroll.Y}
	title := types.Rect{X: origin.X + 20, Y: origin.Y + 20, Width: p.Size.X - 20, Height: s.CellHeight()}
	s.DrawText(title, 0, p.Title, fg)

	if p.MarkerSpacing > 0 {
		for y := p.MarkerSpacing; y < p.Size.Y; y += p.MarkerSpacing {
			top := origin.Y + y
			if top+s.CellHeight() <= b.Y || top >= b.Bottom() {
				continue
			}
			for x := p.MarkerSpacing; x < p.Size.X; x += p.MarkerSpacing {
				left := origin.X + x
				if left >= b.Right() {
					break
				}
				marker := types.Rect{X: left, Y: top, Width: p.MarkerSpacing, Height: s.CellHeight()}
				s.DrawText(marker, 0, fmt.Sprintf("+ %.0f,%.0f", x, y), Overlay0)
			}
		}
	}
	s.EndScissor()

	DrawScrollbars(s, z)
}

// DrawScrollbars draws both tracks of z and their thumbs
func DrawScrollbars(s *Surface, z *zone.Zone) {
	for _, sb := range []*zone.Scrollbar{&z.VScrollbar, &z.HScrollbar} {
		s.FillRect(sb.Track, Mantle)
		thumb := Overlay0
		if sb.Dragging {
			thumb = Surface1
		}
		s.FillRect(sb.Thumb, thumb)
	}
}

// DrawSplitter draws the divider, darker while it is dragged
func DrawSplitter(s *Surface, sp *zone.Splitter) {
	bg := Surface1
	if sp.Dragging {
		bg = Crust
	}
	s.FillRect(sp.Rect, bg)
}
