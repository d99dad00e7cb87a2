package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// FontConfig selects the typeface used for legend labels. It is display
// configuration only and is never interpreted by the color mapping.
type FontConfig struct {
	Size   float64 `yaml:"size"`
	Weight string  `yaml:"weight"` // "normal" or "bold"
}

// DefaultFont is used when a FontConfig is left zero.
var DefaultFont = FontConfig{Size: 12, Weight: "normal"}

func (fc FontConfig) face() (font.Face, error) {
	if fc.Size == 0 {
		fc.Size = DefaultFont.Size
	}
	data := goregular.TTF
	if fc.Weight == "bold" {
		data = gobold.TTF
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    fc.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Legend renders the circular color wheel that maps colors back to vector
// direction and magnitude: a unit disk on [-1,1]^2 colored cell by cell with
// the scalar vector-to-color mapping, plus a labeled radial axis.
type Legend struct {
	// Cells is the number of wheel cells per side. Finer grids give smoother
	// wheels without changing the image size.
	Cells int
	// Side is the output image size in pixels per side.
	Side int
	// Mapping is the magnitude range shown on the tick labels. The wheel
	// colors themselves always span [0, 1].
	Mapping Mapping
	Mode    int
	// MaxValue is shown as the title for ModeClipped.
	MaxValue float64
	Font     FontConfig
}

// CreateImage renders the legend.
func (l Legend) CreateImage() (*image.RGBA, error) {
	if err := validMode(l.Mode); err != nil {
		return nil, err
	}
	if l.Cells <= 0 || l.Side <= 0 {
		return nil, fmt.Errorf("legend needs positive cells and side, got %d and %d", l.Cells, l.Side)
	}

	face, err := l.Font.face()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, l.Side, l.Side))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	// Each pixel takes the color of the wheel cell its center falls in. Cells
	// whose center lies outside the unit disk stay background.
	for py := 0; py < l.Side; py++ {
		for px := 0; px < l.Side; px++ {
			x := -1 + 2*(float64(px)+0.5)/float64(l.Side)
			y := 1 - 2*(float64(py)+0.5)/float64(l.Side)
			i := cellIndex(x, l.Cells)
			j := cellIndex(y, l.Cells)
			cx := -1 + (float64(i)+0.5)*2/float64(l.Cells)
			cy := -1 + (float64(j)+0.5)*2/float64(l.Cells)
			if math.Hypot(cx, cy) > 1 {
				continue
			}
			c, err := VecColor(cx, cy, Mapping{0, 1}, l.Mode)
			if err != nil {
				return nil, err
			}
			img.SetRGBA(px, py, c.Clamped())
		}
	}

	l.drawAxis(img, face)

	if l.Mode == ModeClipped {
		title := "max_value = " + formatValue(l.MaxValue)
		baseline := face.Metrics().Ascent.Ceil() + 2
		l.drawText(img, face, title, l.Side/2, baseline, black, true)
	}
	return img, nil
}

// cellIndex maps a coordinate in [-1,1] to its wheel cell index.
func cellIndex(v float64, cells int) int {
	i := int((v + 1) / 2 * float64(cells))
	if i < 0 {
		return 0
	}
	if i >= cells {
		return cells - 1
	}
	return i
}

const (
	labelOffsetX = 0.1
	labelOffsetY = -0.15
	tickWidth    = 0.1
)

// drawAxis draws the white radial axis from the center to the top of the
// wheel, with ticks and labels at the min, midpoint and max of the mapping.
func (l Legend) drawAxis(img *image.RGBA, face font.Face) {
	vline(img, px(0, l.Side), py(1, l.Side), py(0, l.Side), white)

	midColor := black
	if l.Mode == ModeLinear {
		midColor = white
	}
	ticks := []struct {
		y     float64
		value float64
		color color.RGBA
	}{
		{0, l.Mapping.Min, white},
		{0.5, l.Mapping.Mid(), midColor},
		{1, l.Mapping.Max, black},
	}
	for _, tick := range ticks {
		hline(img, px(-tickWidth/2, l.Side), px(tickWidth/2, l.Side), py(tick.y, l.Side), white)
		l.drawText(img, face, formatValue(tick.value),
			px(labelOffsetX, l.Side), py(tick.y+labelOffsetY, l.Side), tick.color, false)
	}
}

func (l Legend) drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA, center bool) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	if center {
		d.Dot.X -= d.MeasureString(s) / 2
	}
	d.DrawString(s)
}

// formatValue renders a tick value compactly, trimming float noise.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// px maps an x coordinate in [-1,1] to a pixel column.
func px(x float64, side int) int {
	return int((x + 1) / 2 * float64(side))
}

// py maps a y coordinate in [-1,1] to a pixel row.
func py(y float64, side int) int {
	return int((1 - y) / 2 * float64(side))
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}
