// state.go - session state and the per-frame step
package app

import (
	"qq/internal/cache"
	"qq/internal/grid"
	"qq/internal/input"
	"qq/internal/types"
	"qq/internal/ui"
	"qq/internal/zone"
)

// MinWindowSize is the smallest width and height a frame is laid out for
const MinWindowSize = 100

// State is everything that survives from one frame to the next
type State struct {
	Splitter    *zone.Splitter
	Top         *zone.Zone
	Bottom      *zone.Zone
	Grid        *grid.Data
	Placeholder ui.Placeholder
	Layouts     *cache.Layouts

	// Layout is the grid layout used by the last step.
	Layout grid.Layout
	Width  float64
	Height float64
	Cursor types.Cursor
}

// NewState builds the session: both zones, the divider at splitRatio and the
// grid, which lives until the session ends
func NewState(g *grid.Data, layouts *cache.Layouts, m zone.Metrics, splitRatio float64) *State {
	return &State{
		Splitter:    zone.NewSplitter(splitRatio, m),
		Top:         zone.New(m),
		Bottom:      zone.New(m),
		Grid:        g,
		Placeholder: ui.NewPlaceholder(),
		Layouts:     layouts,
	}
}

// Step advances the session by one frame for a width x height window and
// returns the cursor the frame asks for. The divider is moved first, then
// both zones get their bounds and content size and consume the input.
func (s *State) Step(f input.Frame, width, height float64) types.Cursor {
	s.Width = max(width, MinWindowSize)
	s.Height = max(height, MinWindowSize)

	if !zone.PointerInWindow(f.Mouse, s.Width, s.Height) {
		f.Focused = false
	}

	splitHint := s.Splitter.Update(f, s.Width, s.Height)
	s.Top.Bounds, s.Bottom.Bounds = s.Splitter.Panes(s.Width, s.Height)

	s.Layout = s.Layouts.Get(s.Grid)
	reserve := s.Bottom.Metrics().ScrollbarHeight

	topHint := s.Top.Update(f, s.Placeholder.ContentSize(s.Top.Bounds))
	bottomHint := s.Bottom.Update(f, s.Layout.ContentSize(s.Bottom.Bounds, reserve))

	s.Cursor = types.ResolveCursor(splitHint, topHint, bottomHint)
	return s.Cursor
}

// Dragging reports whether the divider or any scrollbar is being dragged
func (s *State) Dragging() bool {
	return s.Splitter.Dragging || s.Top.Dragging() || s.Bottom.Dragging()
}

// Draw renders the whole frame onto surface
func (s *State) Draw(surface *ui.Surface, mouse types.Vec2) {
	surface.Clear(ui.Base)
	ui.DrawZone(surface, s.Top, s.Placeholder, ui.Base, ui.Text)
	ui.DrawGridZone(surface, s.Bottom, s.Grid, s.Layout, mouse)
	ui.DrawSplitter(surface, s.Splitter)
}
