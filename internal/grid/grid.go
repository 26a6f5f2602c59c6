// Package grid holds the tabular data shown in the bottom zone and the
// column layout computed from it.
package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an edit addresses a cell outside the table
var ErrOutOfRange = errors.New("cell out of range")

// Provider is the read side of a table as seen by the layout and renderer.
// Revision changes whenever the content changes.
type Provider interface {
	Rows() int
	Cols() int
	Header(col int) string
	Cell(row, col int) string
	Revision() uint64
}

// Data is an in-memory table of header labels and string cells. Cells that
// were never set are absent and read as empty strings.
//
// Data is read-mostly: the renderer reads it every frame and Set is the only
// writer, so edits must happen on the goroutine that drives the frames.
type Data struct {
	rows     int
	cols     int
	header   []string
	cells    [][]*string
	revision uint64
}

// New creates a table with the given header and rows x len(header) absent cells
func New(header []string, rows int) *Data {
	if rows < 0 {
		rows = 0
	}
	d := &Data{
		rows:   rows,
		cols:   len(header),
		header: append([]string(nil), header...),
		cells:  make([][]*string, rows),
	}
	for i := range d.cells {
		d.cells[i] = make([]*string, d.cols)
	}
	return d
}

// Rows returns the number of rows
func (d *Data) Rows() int { return d.rows }

// Cols returns the number of columns
func (d *Data) Cols() int { return d.cols }

// Revision returns a counter bumped on every edit
func (d *Data) Revision() uint64 { return d.revision }

// Header returns the label of col
func (d *Data) Header(col int) string {
	if col < 0 || col >= len(d.header) {
		return ""
	}
	return d.header[col]
}

// Cell returns the text at row, col or "" when the cell is absent
func (d *Data) Cell(row, col int) string {
	if row < 0 || row >= len(d.cells) || col < 0 || col >= len(d.cells[row]) {
		return ""
	}
	if s := d.cells[row][col]; s != nil {
		return *s
	}
	return ""
}

// Set stores text at row, col
func (d *Data) Set(row, col int, text string) error {
	if row < 0 || row >= len(d.cells) || col < 0 || col >= d.cols {
		return fmt.Errorf("set (%d,%d) in %dx%d table: %w", row, col, d.rows, d.cols, ErrOutOfRange)
	}
	d.cells[row][col] = &text
	d.revision++
	return nil
}

// SetRow stores values into consecutive cells of row starting at column 0
func (d *Data) SetRow(row int, values ...string) error {
	for col, v := range values {
		if err := d.Set(row, col, v); err != nil {
			return err
		}
	}
	return nil
}

// Release drops every header label and present cell, then the rows, then
// the table itself, and returns how many strings were released. Released
// tables are empty; releasing again releases nothing.
func (d *Data) Release() int {
	released := 0
	for i := range d.header {
		d.header[i] = ""
		released++
	}
	for _, row := range d.cells {
		for col, cell := range row {
			if cell != nil {
				row[col] = nil
				released++
			}
		}
	}
	d.header = nil
	d.cells = nil
	d.rows = 0
	d.cols = 0
	d.revision++
	return released
}
