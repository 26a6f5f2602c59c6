package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Catppuccin Mocha colors used by every renderer
var (
	Base     = tcell.NewRGBColor(30, 30, 46)    // #1e1e2e
	Mantle   = tcell.NewRGBColor(24, 24, 37)    // #181825
	Crust    = tcell.NewRGBColor(17, 17, 27)    // #11111b
	Surface0 = tcell.NewRGBColor(49, 50, 68)    // #313244
	Surface1 = tcell.NewRGBColor(69, 71, 90)    // #45475a
	Overlay0 = tcell.NewRGBColor(108, 112, 134) // #6c7086
	Subtext0 = tcell.NewRGBColor(166, 173, 200) // #a6adc8
	Text     = tcell.NewRGBColor(205, 214, 244) // #cdd6f4
	Lavender = tcell.NewRGBColor(180, 190, 254) // #b4befe
)

// SetupMochaTheme configures the Catppuccin Mocha theme for tview primitives
func SetupMochaTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    Crust,
		ContrastBackgroundColor:     Surface0,
		MoreContrastBackgroundColor: Surface1,
		BorderColor:                 Overlay0,
		TitleColor:                  Lavender,
		GraphicsColor:               Overlay0,
		PrimaryTextColor:            Text,
		SecondaryTextColor:          Subtext0,
		TertiaryTextColor:           Overlay0,
		InverseTextColor:            Base,
		ContrastSecondaryTextColor:  Text,
	}
}
