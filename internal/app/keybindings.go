package app

import "github.com/gdamore/tcell/v2"

// isQuitKey reports whether ev closes the window: q, Esc or Ctrl+C
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
