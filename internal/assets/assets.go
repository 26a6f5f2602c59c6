// Package assets locates the bundled resources and loads the monospace font
// used to measure text.
package assets

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	DefaultResourceDir = "resources"
	DefaultFontFile    = "FiraCodeNerdFontMono-Regular.ttf"
	DefaultFontSize    = 21
	DefaultFontSpacing = 1.0
)

// ErrNotFound is returned when no resource directory can be located
var ErrNotFound = errors.New("resource directory not found")

// Assets holds the loaded font and its metrics in virtual pixels
type Assets struct {
	Face     font.Face
	Size     float64
	Spacing  float64
	Fallback bool

	// CharWidth is the advance of one monospace cell, spacing included.
	CharWidth float64
}

// SearchResourceDir looks for a directory called name next to the working
// directory, the executable, or one level above the executable.
func SearchResourceDir(name string) (string, error) {
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, name))
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates, filepath.Join(dir, name), filepath.Join(dir, "..", name))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Load reads fontFile from the resource directory called dirName. A missing
// directory or a broken font is logged and the built-in 7x13 face is used
// instead, so Load always returns usable assets.
func Load(dirName, fontFile string, size float64) *Assets {
	a := &Assets{Size: size, Spacing: DefaultFontSpacing}

	face, err := loadFace(dirName, fontFile, size)
	if err != nil {
		log.Printf("ERROR: font failed to load: %v", err)
		face = basicfont.Face7x13
		a.Fallback = true
	}
	a.Face = face
	a.CharWidth = a.MeasureText("X") + a.Spacing

	log.Printf("Font ready (fallback=%v), cell width %.2f", a.Fallback, a.CharWidth)
	return a
}

func loadFace(dirName, fontFile string, size float64) (font.Face, error) {
	dir, err := SearchResourceDir(dirName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, fontFile))
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", fontFile, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// MeasureText returns the width of text in virtual pixels: the sum of glyph
// advances plus Spacing between consecutive glyphs.
func (a *Assets) MeasureText(text string) float64 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	advance := font.MeasureString(a.Face, text)
	return float64(advance)/64 + a.Spacing*float64(n-1)
}

// Close releases the font face
func (a *Assets) Close() error {
	if a.Face == nil || a.Fallback {
		return nil
	}
	err := a.Face.Close()
	a.Face = nil
	return err
}
