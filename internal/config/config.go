// Package config holds the runtime settings of the viewer
package config

import (
	"errors"
	"fmt"

	"qq/internal/assets"
	"qq/internal/grid"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is populated from command line flags
type Config struct {
	LogFile     string
	SplitRatio  float64
	ResourceDir string
	FontFile    string
	FontSize    float64
	Rows        int
	// PointerShapes enables OSC 22 pointer shape requests.
	PointerShapes bool
	// RowPitch is the height of one terminal row in virtual pixels.
	RowPitch float64
}

// Default returns the settings used when no flags are given
func Default() Config {
	return Config{
		LogFile:       "qq.log",
		SplitRatio:    0.5,
		ResourceDir:   assets.DefaultResourceDir,
		FontFile:      assets.DefaultFontFile,
		FontSize:      assets.DefaultFontSize,
		Rows:          grid.DefaultFixtureRows,
		PointerShapes: true,
		RowPitch:      grid.DefaultSpacing().RowHeight,
	}
}

// Validate checks c and returns an error wrapping ErrInvalid on the first
// bad field
func (c Config) Validate() error {
	switch {
	case c.SplitRatio <= 0 || c.SplitRatio >= 1:
		return fmt.Errorf("%w: split ratio %v must be between 0 and 1", ErrInvalid, c.SplitRatio)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font size %v must be positive", ErrInvalid, c.FontSize)
	case c.Rows < 0:
		return fmt.Errorf("%w: rows %d must not be negative", ErrInvalid, c.Rows)
	case c.RowPitch <= 0:
		return fmt.Errorf("%w: row pitch %v must be positive", ErrInvalid, c.RowPitch)
	case c.FontFile == "":
		return fmt.Errorf("%w: font file is empty", ErrInvalid)
	}
	return nil
}
