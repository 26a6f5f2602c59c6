package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"qq/internal/types"
)

// FooterRows is the number of terminal rows the footer occupies
const FooterRows = 1

// CreateFooter creates the status line shown under both zones
func CreateFooter() *tview.TextView {
	footer := tview.NewTextView()
	footer.SetTextAlign(tview.AlignLeft)
	footer.SetDynamicColors(true)
	footer.SetWrap(false)
	footer.SetBackgroundColor(Crust)
	footer.SetTextStyle(tcell.StyleDefault.Foreground(Subtext0).Background(Crust))
	return footer
}

// StatusText describes the scroll offsets of both zones and the key help
func StatusText(top, bottom types.Vec2, cursor types.Cursor) string {
	return fmt.Sprintf(
		" top [#cdd6f4]%.0f,%.0f[-]  grid [#cdd6f4]%.0f,%.0f[-]  cursor %s  |  [#b4befe]q[-]/[#b4befe]Esc[-] quit  [#b4befe]Shift+wheel[-] scroll sideways",
		top.X, top.Y, bottom.X, bottom.Y, cursor,
	)
}

// UpdateFooter replaces the footer text
func UpdateFooter(footer *tview.TextView, text string) {
	footer.SetText(text)
}

// DrawFooter draws footer across the last FooterRows rows of screen
func DrawFooter(screen tcell.Screen, footer *tview.TextView) {
	width, height := screen.Size()
	if height < FooterRows {
		return
	}
	footer.SetRect(0, height-FooterRows, width, FooterRows)
	footer.Draw(screen)
}
