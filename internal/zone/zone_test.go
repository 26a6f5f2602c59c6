package zone

import (
	"math"
	"testing"

	"qq/internal/input"
	"qq/internal/types"
)

func newTestZone(bounds types.Rect) *Zone {
	z := New(DefaultMetrics())
	z.Bounds = bounds
	return z
}

func pointer(x, y float64) input.Frame {
	return input.Frame{Mouse: types.Vec2{X: x, Y: y}, Focused: true}
}

func assertInRange(t *testing.T, z *Zone) {
	t.Helper()
	maxX := math.Max(0, z.ContentSize.X-z.Bounds.Width)
	maxY := math.Max(0, z.ContentSize.Y-z.Bounds.Height)
	if z.Scroll.X < 0 || z.Scroll.X > maxX {
		t.Fatalf("scroll.x %v outside [0,%v]", z.Scroll.X, maxX)
	}
	if z.Scroll.Y < 0 || z.Scroll.Y > maxY {
		t.Fatalf("scroll.y %v outside [0,%v]", z.Scroll.Y, maxY)
	}
}

func TestWheelWithoutVerticalRoom(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	content := types.Vec2{X: 800, Y: 300}

	f := pointer(200, 150)
	f.Wheel = -1
	z.Update(f, content)

	if z.Scroll.Y != 0 {
		t.Fatalf("expected scroll.y 0 when content fits vertically, got %v", z.Scroll.Y)
	}
	if z.Scroll.X != 0 {
		t.Fatalf("expected vertical wheel to leave scroll.x alone, got %v", z.Scroll.X)
	}
}

func TestFineWheelScrollsHorizontally(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	content := types.Vec2{X: 800, Y: 300}

	f := pointer(200, 150)
	f.Wheel = -1
	f.Fine = true

	z.Update(f, content)
	if z.Scroll.X != 40 {
		t.Fatalf("expected one notch to scroll 40, got %v", z.Scroll.X)
	}

	for i := 0; i < 20; i++ {
		z.Update(f, content)
		assertInRange(t, z)
	}
	if z.Scroll.X != 400 {
		t.Fatalf("expected scroll.x to stop at 400, got %v", z.Scroll.X)
	}

	f.Wheel = 1
	z.Update(f, content)
	if z.Scroll.X != 360 {
		t.Fatalf("expected wheel up to scroll back towards the origin, got %v", z.Scroll.X)
	}
}

func TestTiltWheelScrollsHorizontally(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	f := pointer(10, 10)
	f.WheelX = -2
	z.Update(f, types.Vec2{X: 800, Y: 900})
	if z.Scroll.X != 80 || z.Scroll.Y != 0 {
		t.Fatalf("expected scroll (80,0), got %v", z.Scroll)
	}
}

func TestWheelIgnoredOutsideBounds(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 300, Width: 400, Height: 300})
	f := pointer(200, 100)
	f.Wheel = -3
	z.Update(f, types.Vec2{X: 400, Y: 2000})
	if z.Scroll.Y != 0 {
		t.Fatalf("expected wheel outside the zone to be ignored, got %v", z.Scroll.Y)
	}
}

func TestClampAfterShrinkingContent(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	z.Scroll = types.Vec2{X: 1000, Y: 1000}

	// Pointer is elsewhere; the clamp still holds the invariant.
	z.Update(pointer(-50, -50), types.Vec2{X: 500, Y: 350})
	if z.Scroll.X != 100 || z.Scroll.Y != 50 {
		t.Fatalf("expected scroll clamped to (100,50), got %v", z.Scroll)
	}

	z.Update(pointer(-50, -50), types.Vec2{X: 200, Y: 100})
	if z.Scroll.X != 0 || z.Scroll.Y != 0 {
		t.Fatalf("expected scroll clamped to origin when content is smaller, got %v", z.Scroll)
	}
}

func TestScrollInvariantUnderRandomishInput(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 100, Width: 500, Height: 250})
	content := types.Vec2{X: 1300, Y: 2100}

	wheels := []float64{-3, 7, -12, 1, -40, 40, 0, -1}
	for i, w := range wheels {
		f := pointer(float64(50*i), 120+float64(15*i))
		f.Wheel = w
		f.Fine = i%3 == 0
		f.Pressed = i%2 == 0
		f.Released = i%4 == 3
		f.Down = !f.Released
		z.Update(f, content)
		assertInRange(t, z)
	}
}

func TestVisibleFractionAfterLayout(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	z.ContentSize = types.Vec2{X: 1600, Y: 1200}
	z.LayoutScrollbars()

	if got := z.VScrollbar.VisibleFraction; got != 0.25 {
		t.Fatalf("expected vertical fraction 0.25, got %v", got)
	}
	if got := z.HScrollbar.VisibleFraction; got != 0.25 {
		t.Fatalf("expected horizontal fraction 0.25, got %v", got)
	}

	v := z.VScrollbar.Track
	if v.X != 390 || v.Y != 0 || v.Width != 10 || v.Height != 290 {
		t.Fatalf("unexpected vertical track %+v", v)
	}
	h := z.HScrollbar.Track
	if h.X != 0 || h.Y != 290 || h.Width != 390 || h.Height != 10 {
		t.Fatalf("unexpected horizontal track %+v", h)
	}
	if z.VScrollbar.Thumb.Height != 72.5 {
		t.Fatalf("expected thumb height 72.5, got %v", z.VScrollbar.Thumb.Height)
	}
}

func TestLayoutGuardsZeroScrollRange(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	z.ContentSize = types.Vec2{X: 400, Y: 300}
	z.Scroll = types.Vec2{X: 5, Y: 5}
	z.LayoutScrollbars()

	if math.IsNaN(z.VScrollbar.Thumb.Y) || math.IsInf(z.VScrollbar.Thumb.Y, 0) {
		t.Fatalf("thumb position must be finite, got %v", z.VScrollbar.Thumb.Y)
	}
	if z.VScrollbar.Thumb.Y != 0 || z.HScrollbar.Thumb.X != 0 {
		t.Fatalf("expected thumbs at the track origin, got %v / %v", z.VScrollbar.Thumb.Y, z.HScrollbar.Thumb.X)
	}
	if z.VScrollbar.VisibleFraction != 1 {
		t.Fatalf("expected full visible fraction, got %v", z.VScrollbar.VisibleFraction)
	}

	z.ContentSize = types.Vec2{}
	z.LayoutScrollbars()
	if z.VScrollbar.VisibleFraction != 1 || z.HScrollbar.VisibleFraction != 1 {
		t.Fatalf("expected empty content to count as fully visible")
	}
}

func TestMinimumThumbLength(t *testing.T) {
	m := DefaultMetrics()
	m.MinThumbHeight = 30
	m.MinThumbWidth = 8
	z := New(m)
	z.Bounds = types.Rect{X: 0, Y: 0, Width: 400, Height: 300}
	z.ContentSize = types.Vec2{X: 400000, Y: 300000}
	z.LayoutScrollbars()

	if z.VScrollbar.Thumb.Height != 30 {
		t.Fatalf("expected vertical thumb held at 30, got %v", z.VScrollbar.Thumb.Height)
	}
	if z.HScrollbar.Thumb.Width != 8 {
		t.Fatalf("expected horizontal thumb held at 8, got %v", z.HScrollbar.Thumb.Width)
	}
	if z.VScrollbar.VisibleFraction != 0.001 {
		t.Fatalf("minimum length must not change the visible fraction, got %v", z.VScrollbar.VisibleFraction)
	}
}

func TestDragVerticalThumbTopToBottom(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	content := types.Vec2{X: 400, Y: 1200}

	press := pointer(395, 10)
	press.Pressed = true
	press.Down = true
	hint := z.Update(press, content)

	if !z.VScrollbar.Dragging {
		t.Fatalf("expected press on the thumb to start a drag")
	}
	if z.VScrollbar.GrabOffset != 10 {
		t.Fatalf("expected grab offset 10, got %v", z.VScrollbar.GrabOffset)
	}
	if hint.Cursor != types.CursorPointingHand || !hint.Dragging {
		t.Fatalf("expected dragging pointing-hand hint, got %+v", hint)
	}

	move := pointer(395, 299)
	move.Down = true
	z.Update(move, content)

	if z.Scroll.Y != content.Y-z.Bounds.Height {
		t.Fatalf("expected scroll.y %v, got %v", content.Y-z.Bounds.Height, z.Scroll.Y)
	}
	if z.VScrollbar.DragPosition != 1 {
		t.Fatalf("expected drag position 1, got %v", z.VScrollbar.DragPosition)
	}
	if z.VScrollbar.VisibleFraction != 0.25 {
		t.Fatalf("drag must not corrupt the visible fraction, got %v", z.VScrollbar.VisibleFraction)
	}
	if z.VScrollbar.Thumb.Bottom() != z.VScrollbar.Track.Bottom() {
		t.Fatalf("expected thumb at the end of its track, got %+v in %+v", z.VScrollbar.Thumb, z.VScrollbar.Track)
	}

	back := pointer(395, 0)
	back.Down = true
	z.Update(back, content)
	if z.Scroll.Y != 0 {
		t.Fatalf("expected dragging back to the top to reset scroll.y, got %v", z.Scroll.Y)
	}

	release := pointer(395, 150)
	release.Released = true
	z.Update(release, content)
	if z.VScrollbar.Dragging {
		t.Fatalf("expected release to end the drag")
	}
}

func TestDragHorizontalThumb(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	content := types.Vec2{X: 1600, Y: 300}

	press := pointer(5, 295)
	press.Pressed = true
	press.Down = true
	z.Update(press, content)
	if !z.HScrollbar.Dragging {
		t.Fatalf("expected press on the horizontal thumb to start a drag")
	}

	// track 390 wide, thumb 97.5 wide, travel 292.5; half way is 146.25
	move := pointer(5+146.25, 295)
	move.Down = true
	z.Update(move, content)

	want := 0.5 * (content.X - z.Bounds.Width)
	if math.Abs(z.Scroll.X-want) > 1e-9 {
		t.Fatalf("expected scroll.x %v, got %v", want, z.Scroll.X)
	}
}

func TestDragCancelledOnFocusLossAndLeavingZone(t *testing.T) {
	content := types.Vec2{X: 400, Y: 1200}

	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	press := pointer(395, 10)
	press.Pressed = true
	z.Update(press, content)

	blur := pointer(395, 100)
	blur.Focused = false
	z.Update(blur, content)
	if z.VScrollbar.Dragging {
		t.Fatalf("expected focus loss to cancel the drag")
	}
	if z.Scroll.Y != 0 {
		t.Fatalf("expected no scroll after cancelled drag, got %v", z.Scroll.Y)
	}

	z.Update(press, content)
	z.Update(pointer(395, 400), content)
	if z.VScrollbar.Dragging {
		t.Fatalf("expected leaving the zone to cancel the drag")
	}
}

func TestPressOutsideThumbDoesNotDrag(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	press := pointer(395, 250)
	press.Pressed = true
	hint := z.Update(press, types.Vec2{X: 400, Y: 1200})
	if z.VScrollbar.Dragging {
		t.Fatalf("expected press on the bare track not to drag")
	}
	if hint != (types.CursorHint{}) {
		t.Fatalf("expected default hint, got %+v", hint)
	}
}

func TestThumbHoverHint(t *testing.T) {
	z := newTestZone(types.Rect{X: 0, Y: 0, Width: 400, Height: 300})
	hint := z.Update(pointer(395, 10), types.Vec2{X: 400, Y: 1200})
	if hint.Cursor != types.CursorPointingHand || hint.Dragging {
		t.Fatalf("expected hover pointing-hand hint, got %+v", hint)
	}
}
