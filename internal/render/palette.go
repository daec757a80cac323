package render

import (
	"image/color"

	"lifeview/internal/sims/life"
)

// Default colors for the grid and the three cell classifications.
var (
	DefaultBackground = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	DefaultGridLine   = color.RGBA{R: 20, G: 200, B: 20, A: 255}
	DefaultDying      = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	DefaultAlive      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Palette holds the colors used to draw a generation.
type Palette struct {
	Background color.RGBA
	GridLine   color.RGBA
	Dying      color.RGBA
	Alive      color.RGBA
}

// DefaultPalette returns the standard palette.
func DefaultPalette() Palette {
	return Palette{
		Background: DefaultBackground,
		GridLine:   DefaultGridLine,
		Dying:      DefaultDying,
		Alive:      DefaultAlive,
	}
}

// Color returns the color for a display classification.
func (p Palette) Color(d life.Display) color.RGBA {
	switch d {
	case life.Alive:
		return p.Alive
	case life.Dying:
		return p.Dying
	default:
		return p.Background
	}
}

// RGB builds an opaque color from a three-component triple.
func RGB(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
