package cache

import (
	"sync"
	"testing"

	"qq/internal/grid"
)

type countingMeasurer struct {
	mu    sync.Mutex
	calls int
}

func (m *countingMeasurer) MeasureText(text string) float64 {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return float64(len(text)) * 10
}

func (m *countingMeasurer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestLayoutsReuseUntilRevisionChanges(t *testing.T) {
	m := &countingMeasurer{}
	c := NewLayouts(m, grid.DefaultSpacing())
	d := grid.Fixture(10)

	first := c.Get(d)
	calls := m.count()
	if calls == 0 {
		t.Fatalf("expected the first Get to measure")
	}

	second := c.Get(d)
	if m.count() != calls {
		t.Fatalf("expected cached layout, measured %d more times", m.count()-calls)
	}
	if second.Revision != first.Revision {
		t.Fatalf("expected same revision")
	}

	if err := d.Set(5, 3, "a much longer job title"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third := c.Get(d)
	if m.count() == calls {
		t.Fatalf("expected an edit to trigger a new layout")
	}
	if third.Columns[3] <= first.Columns[3] {
		t.Fatalf("expected the Job column to grow, got %v then %v", first.Columns[3], third.Columns[3])
	}
}

func TestLayoutsForget(t *testing.T) {
	c := NewLayouts(&countingMeasurer{}, grid.DefaultSpacing())
	a := grid.Fixture(3)
	b := grid.Fixture(4)

	c.Get(a)
	c.Get(b)
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	c.Forget(a)
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestLayoutsConcurrentGet(t *testing.T) {
	c := NewLayouts(&countingMeasurer{}, grid.DefaultSpacing())
	d := grid.Fixture(grid.DefaultFixtureRows)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l := c.Get(d); len(l.Columns) != 6 {
				t.Errorf("expected 6 columns, got %d", len(l.Columns))
			}
		}()
	}
	wg.Wait()
}
