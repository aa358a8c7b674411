// Package swatch renders color palettes as PNG grids.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell size limits in pixels
const (
	MinCellSize = 8
	MaxCellSize = 512
)

// Renderer draws palettes as a grid of solid squares
type Renderer struct {
	columns int
}

// NewRenderer creates a renderer laying out swatches in the given number of
// columns. A non-positive value defaults to 3.
func NewRenderer(columns int) *Renderer {
	if columns <= 0 {
		columns = 3
	}
	return &Renderer{columns: columns}
}

// Render draws each hex color as a cellSize square, left to right and top to
// bottom, and returns the PNG encoding.
func (r *Renderer) Render(hexColors []string, cellSize int) ([]byte, error) {
	if len(hexColors) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if cellSize < MinCellSize || cellSize > MaxCellSize {
		return nil, fmt.Errorf("cell size %d outside [%d, %d]", cellSize, MinCellSize, MaxCellSize)
	}

	columns := r.columns
	if len(hexColors) < columns {
		columns = len(hexColors)
	}
	rows := (len(hexColors) + columns - 1) / columns

	canvas := imaging.New(columns*cellSize, rows*cellSize, color.Transparent)

	for i, hex := range hexColors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		tile := imaging.New(cellSize, cellSize, c)
		pos := image.Pt((i%columns)*cellSize, (i/columns)*cellSize)
		canvas = imaging.Paste(canvas, tile, pos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return buf.Bytes(), nil
}
