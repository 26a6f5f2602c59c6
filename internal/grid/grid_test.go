package grid

import (
	"errors"
	"testing"
)

func TestNewTableIsAbsent(t *testing.T) {
	d := New([]string{"A", "B"}, 3)
	if d.Rows() != 3 || d.Cols() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", d.Rows(), d.Cols())
	}
	if d.Cell(2, 1) != "" {
		t.Fatalf("expected absent cell to read empty")
	}
	if d.Header(1) != "B" || d.Header(5) != "" {
		t.Fatalf("unexpected headers %q %q", d.Header(1), d.Header(5))
	}
}

func TestSetAndRevision(t *testing.T) {
	d := New([]string{"A", "B"}, 2)
	before := d.Revision()

	if err := d.Set(1, 1, "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Cell(1, 1) != "x" {
		t.Fatalf("expected x, got %q", d.Cell(1, 1))
	}
	if d.Revision() == before {
		t.Fatalf("expected revision to change after an edit")
	}

	err := d.Set(2, 0, "y")
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := d.SetRow(0, "a", "b", "c"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected too many values to fail, got %v", err)
	}
}

func TestHeaderIsCopied(t *testing.T) {
	header := []string{"A"}
	d := New(header, 0)
	header[0] = "changed"
	if d.Header(0) != "A" {
		t.Fatalf("expected table to own its header, got %q", d.Header(0))
	}
}

func TestFixture(t *testing.T) {
	d := Fixture(DefaultFixtureRows)
	if d.Rows() != 200 || d.Cols() != 6 {
		t.Fatalf("expected 200x6, got %dx%d", d.Rows(), d.Cols())
	}
	if d.Cell(0, 1) != "Alice" || d.Cell(2, 4) != "Canada" {
		t.Fatalf("unexpected fixture content %q %q", d.Cell(0, 1), d.Cell(2, 4))
	}
	if d.Cell(3, 0) != "" {
		t.Fatalf("expected rows past the samples to be absent")
	}

	small := Fixture(2)
	if small.Rows() != 2 || small.Cell(1, 4) != "UK" {
		t.Fatalf("expected truncated fixture to keep the first rows")
	}
}

func TestReleaseRoundTrip(t *testing.T) {
	d := Fixture(DefaultFixtureRows)

	// 6 header labels plus 3 filled rows of 6 cells
	if got := d.Release(); got != 24 {
		t.Fatalf("expected 24 strings released, got %d", got)
	}
	if got := d.Release(); got != 0 {
		t.Fatalf("expected second release to free nothing, got %d", got)
	}
	if d.Rows() != 0 || d.Cols() != 0 || d.Cell(0, 0) != "" || d.Header(0) != "" {
		t.Fatalf("expected released table to be empty")
	}
}

func TestReleaseCountsEveryAllocation(t *testing.T) {
	d := New([]string{"A", "B", "C"}, 4)
	allocated := 3
	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			if (row+col)%2 == 0 {
				if err := d.Set(row, col, "v"); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				allocated++
			}
		}
	}
	// overwriting a cell replaces its string instead of adding one
	if err := d.Set(0, 0, "w"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := d.Release(); got != allocated {
		t.Fatalf("expected %d released, got %d", allocated, got)
	}
}
