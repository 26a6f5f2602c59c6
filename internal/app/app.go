package app

import (
	"context"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"qq/internal/cache"
	"qq/internal/config"
	"qq/internal/grid"
	"qq/internal/input"
	"qq/internal/ui"
	"qq/internal/zone"
)

// App drives the session from terminal events
type App struct {
	screen    tcell.Screen
	surface   *ui.Surface
	collector *input.Collector
	footer    *tview.TextView
	pointer   *ui.PointerShape

	State *State

	width, height float64
	dragging      bool
}

// New creates the application on an initialized screen. Text is measured
// with m, one terminal cell is cellWidth virtual pixels wide and pointer
// shape requests go to out.
func New(screen tcell.Screen, cfg config.Config, m grid.Measurer, cellWidth float64, out io.Writer) *App {
	ui.SetupMochaTheme()

	cellHeight := cfg.RowPitch
	spacing := grid.DefaultSpacing()
	spacing.RowHeight = cellHeight

	g := grid.Fixture(cfg.Rows)
	layouts := cache.NewLayouts(m, spacing)

	a := &App{
		screen:    screen,
		surface:   ui.NewSurface(screen, cellWidth, cellHeight, ui.FooterRows),
		collector: input.NewCollector(cellWidth, cellHeight),
		footer:    ui.CreateFooter(),
		pointer:   ui.NewPointerShape(out, cfg.PointerShapes),
		State:     NewState(g, layouts, zone.CellMetrics(cellWidth, cellHeight), cfg.SplitRatio),
	}
	log.Printf("Session created: %d grid rows, cell %.1fx%.1f", g.Rows(), cellWidth, cellHeight)
	return a
}

// Run processes events until a quit key is pressed, the screen is finalized
// or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	defer a.shutdown()

	a.frame()
	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				log.Printf("Interrupted: %v", ctx.Err())
				return nil
			}
			continue
		case *tcell.EventKey:
			if isQuitKey(ev) {
				log.Printf("Quit key %s", ev.Name())
				return nil
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}

		if a.collector.HandleEvent(ev) {
			a.frame()
		}
	}
}

// frame runs one step and draws its result
func (a *App) frame() {
	f := a.collector.Frame()
	size := a.surface.Size()
	if size.X != a.width || size.Y != a.height {
		log.Printf("Surface resized to %.0fx%.0f", size.X, size.Y)
		a.width, a.height = size.X, size.Y
	}

	cursor := a.State.Step(f, size.X, size.Y)
	if dragging := a.State.Dragging(); dragging != a.dragging {
		if dragging {
			log.Printf("Drag started")
		} else {
			log.Printf("Drag ended: splitter %.2f, top %+v, grid %+v",
				a.State.Splitter.Ratio, a.State.Top.Scroll, a.State.Bottom.Scroll)
		}
		a.dragging = dragging
	}

	a.State.Draw(a.surface, f.Mouse)
	ui.UpdateFooter(a.footer, ui.StatusText(a.State.Top.Scroll, a.State.Bottom.Scroll, cursor))
	ui.DrawFooter(a.screen, a.footer)
	a.screen.Show()

	if err := a.pointer.Apply(cursor); err != nil {
		log.Printf("ERROR: %v", err)
	}
	a.collector.EndFrame()
}

func (a *App) shutdown() {
	if err := a.pointer.Reset(); err != nil {
		log.Printf("ERROR: %v", err)
	}
	a.State.Layouts.Forget(a.State.Grid)
	released := a.State.Grid.Release()
	log.Printf("Session closed, released %d grid strings", released)
}
