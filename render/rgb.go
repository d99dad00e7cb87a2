package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with float64 channels, nominally in [0,1]. Channels may
// exceed the nominal range (ModeLinear past the mapping max); Clamped
// saturates them when converting for display.
type RGB struct {
	R, G, B float64
}

// Clamped converts to an opaque 8-bit color, clipping channels to [0,1].
func (c RGB) Clamped() color.RGBA {
	cl := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	r, g, b := cl.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)
