package canvasrender

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// Style holds the colors a Renderer draws with.
type Style struct {
	// Sheet fills the blueprint sheet and the background.
	Sheet color.RGBA
	// Guide strokes construction guides.
	Guide color.RGBA
	// Ink draws plans, text and effect content.
	Ink color.RGBA
	// Grid strokes Cartesian grid lines and axes.
	Grid color.RGBA
	// Resolution is the PNG resolution in dots per canvas unit.
	Resolution float64
}

// DefaultStyle returns the blueprint palette: white on blue.
func DefaultStyle() Style {
	return Style{
		Sheet:      color.RGBA{R: 0x1c, G: 0x4f, B: 0xa0, A: 0xff},
		Guide:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Ink:        color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Grid:       color.RGBA{R: 0x8e, G: 0x8e, B: 0x93, A: 0xff},
		Resolution: 2,
	}
}

// withOpacity scales the premultiplied color c by opacity.
func withOpacity(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return color.RGBA{}
	}
	scale := func(v uint8) uint8 { return uint8(float64(v)*opacity + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

var transparent color.Color = canvas.Transparent
