package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/canvas"
)

func LoadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	font, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	return font, nil
}

// loadFontFamily loads a regular and a bold face into a single family.
func loadFontFamily(name, regular, bold string) (*canvas.FontFamily, error) {
	ff := canvas.NewFontFamily(name)
	if err := ff.LoadFontFile(regular, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load regular font %s: %w", regular, err)
	}
	if bold == "" {
		bold = regular
	}
	if err := ff.LoadFontFile(bold, canvas.FontBold); err != nil {
		return nil, fmt.Errorf("load bold font %s: %w", bold, err)
	}
	return ff, nil
}
