package gui

import (
	"bytes"
	"fmt"
	_ "image/jpeg" // Background decoders
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// loadBackground reads the background texture. Callers fall back to a plain
// fill when it fails.
func loadBackground(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot load background %s: %w", path, err)
	}
	return img, nil
}

// loadFont reads a TrueType or OpenType font for the HUD.
func loadFont(path string, size float64) (*text.GoTextFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gui: cannot read font %s: %w", path, err)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gui: cannot parse font %s: %w", path, err)
	}

	return &text.GoTextFace{Source: src, Size: size}, nil
}
