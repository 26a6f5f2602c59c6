package cache

import (
	"log"
	"sync"

	"qq/internal/grid"
)

// Layouts keeps the computed layout of each grid so the renderer does not
// measure every cell on every frame. An entry is recomputed when the grid
// revision moves.
type Layouts struct {
	measurer grid.Measurer
	spacing  grid.Spacing

	mu      sync.RWMutex
	entries map[grid.Provider]grid.Layout
}

// NewLayouts creates an empty cache that measures text with m
func NewLayouts(m grid.Measurer, s grid.Spacing) *Layouts {
	return &Layouts{
		measurer: m,
		spacing:  s,
		entries:  make(map[grid.Provider]grid.Layout),
	}
}

// Get returns the layout of p, computing it if p changed since the last call
func (c *Layouts) Get(p grid.Provider) grid.Layout {
	c.mu.RLock()
	l, exists := c.entries[p]
	c.mu.RUnlock()

	if exists && l.Revision == p.Revision() {
		return l
	}

	log.Printf("Computing grid layout: %d rows, %d cols, revision %d", p.Rows(), p.Cols(), p.Revision())
	l = grid.Compute(p, c.measurer, c.spacing)

	c.mu.Lock()
	c.entries[p] = l
	c.mu.Unlock()
	return l
}

// Forget drops the cached layout of p
func (c *Layouts) Forget(p grid.Provider) {
	c.mu.Lock()
	delete(c.entries, p)
	c.mu.Unlock()
}

// Len returns the number of cached layouts
func (c *Layouts) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
