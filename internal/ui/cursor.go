package ui

import (
	"fmt"
	"io"

	"qq/internal/types"
)

// PointerShape asks the terminal for a mouse pointer shape with the OSC 22
// escape sequence. Terminals that do not know it ignore it.
type PointerShape struct {
	out     io.Writer
	enabled bool
	current types.Cursor
	applied bool
}

// NewPointerShape writes requests to out. A disabled PointerShape only
// tracks the requested cursor.
func NewPointerShape(out io.Writer, enabled bool) *PointerShape {
	return &PointerShape{out: out, enabled: enabled}
}

// Current returns the last applied cursor
func (p *PointerShape) Current() types.Cursor {
	return p.current
}

// Apply requests c, writing only when it differs from the previous request
func (p *PointerShape) Apply(c types.Cursor) error {
	if p.applied && c == p.current {
		return nil
	}
	p.current = c
	p.applied = true
	if !p.enabled || p.out == nil {
		return nil
	}
	if _, err := fmt.Fprintf(p.out, "\x1b]22;%s\x1b\\", c); err != nil {
		return fmt.Errorf("set pointer shape %s: %w", c, err)
	}
	return nil
}

// Reset restores the default pointer
func (p *PointerShape) Reset() error {
	if !p.applied {
		return nil
	}
	return p.Apply(types.CursorDefault)
}
