// Package input turns terminal events into per-frame input snapshots
package input

import (
	"github.com/gdamore/tcell/v2"

	"qq/internal/types"
)

// Frame is the input state visible to one frame step.
// Pressed and Released are edges that only last for the frame they happened in.
type Frame struct {
	Mouse    types.Vec2
	Down     bool
	Pressed  bool
	Released bool

	// Wheel is the number of vertical wheel notches, positive when rolled up.
	Wheel float64
	// WheelX is the number of horizontal wheel notches, positive towards the left.
	WheelX float64

	// Fine is set while Shift or Alt is held.
	Fine    bool
	Focused bool
}

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Collector accumulates tcell events into a Frame. Pointer positions are
// reported at the centre of the terminal cell, scaled to virtual pixels.
type Collector struct {
	cellWidth  float64
	cellHeight float64
	frame      Frame
}

// NewCollector creates a collector for a surface whose cells measure
// cellWidth x cellHeight virtual pixels
func NewCollector(cellWidth, cellHeight float64) *Collector {
	return &Collector{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		frame:      Frame{Focused: true},
	}
}

// HandleEvent folds ev into the pending frame. It reports whether the event
// changed anything a frame step could observe.
func (c *Collector) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		c.handleMouse(ev)
		return true
	case *tcell.EventFocus:
		c.frame.Focused = ev.Focused
		return true
	case *tcell.EventKey:
		c.frame.Fine = ev.Modifiers()&(tcell.ModShift|tcell.ModAlt) != 0
		return false
	case *tcell.EventResize:
		return true
	}
	return false
}

func (c *Collector) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	c.frame.Mouse = types.Vec2{
		X: (float64(x) + 0.5) * c.cellWidth,
		Y: (float64(y) + 0.5) * c.cellHeight,
	}
	c.frame.Fine = ev.Modifiers()&(tcell.ModShift|tcell.ModAlt) != 0

	buttons := ev.Buttons()
	if buttons&wheelButtons != 0 {
		// Wheel reports carry no button state, so a wheel notch during a
		// drag must not read as a release.
		switch {
		case buttons&tcell.WheelUp != 0:
			c.frame.Wheel++
		case buttons&tcell.WheelDown != 0:
			c.frame.Wheel--
		case buttons&tcell.WheelLeft != 0:
			c.frame.WheelX++
		case buttons&tcell.WheelRight != 0:
			c.frame.WheelX--
		}
		return
	}

	down := buttons&tcell.Button1 != 0
	if down && !c.frame.Down {
		c.frame.Pressed = true
	}
	if !down && c.frame.Down {
		c.frame.Released = true
	}
	c.frame.Down = down
}

// Frame returns the pending frame
func (c *Collector) Frame() Frame {
	return c.frame
}

// EndFrame clears the one-frame edges after a step consumed them
func (c *Collector) EndFrame() {
	c.frame.Pressed = false
	c.frame.Released = false
	c.frame.Wheel = 0
	c.frame.WheelX = 0
}
