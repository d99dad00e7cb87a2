package render

import (
	"fmt"
	"image"

	"github.com/earthlight/colorquiver/field"
)

// Rect is the display extent of the raster, (XMin, XMax, YMin, YMax). The
// raster itself is one pixel per field cell; the extent only matters to
// callers placing the image in data coordinates, and to PixelToCoord.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Stats are the magnitude statistics computed while rendering a quiver.
type Stats struct {
	// Ma is the upper end of the magnitude mapping: the maximum vector norm
	// for ModeLinear and ModeBounded, mean+std of the norms for ModeClipped.
	Ma float64 `json:"ma"`
	// MaxValue is the true maximum vector norm for ModeClipped, 0 otherwise.
	MaxValue float64 `json:"max_value"`
}

// Renderer renders a vector field as a color quiver: hue encodes direction,
// saturation and value encode magnitude under the selected mode.
type Renderer struct {
	Field *field.Field
	Rect  Rect
	Mode  int
}

// CreateImage rasterizes the field. Row 0 of the grids becomes the top pixel
// row. Returns the image together with the magnitude statistics.
func (r Renderer) CreateImage() (*image.RGBA, Stats, error) {
	if err := r.Field.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if err := validMode(r.Mode); err != nil {
		return nil, Stats{}, err
	}

	var stats Stats
	norms := r.Field.Norms()
	if r.Mode == ModeClipped {
		mean, std := norms.MeanStd()
		stats.Ma = mean + std
		stats.MaxValue = norms.Max()
	} else {
		stats.Ma = norms.Max()
	}

	// The hue convention wants the negated X component.
	negU := field.NewGrid(r.Field.U.Rows, r.Field.U.Cols)
	negU.Fill(func(i, j int) float64 {
		return -r.Field.U.At(i, j)
	})

	red, green, blue, err := VecColorGrid(negU, r.Field.V, Mapping{0, stats.Ma}, r.Mode)
	if err != nil {
		return nil, Stats{}, err
	}

	img := image.NewRGBA(image.Rect(0, 0, negU.Cols, negU.Rows))
	for i := 0; i < negU.Rows; i++ {
		for j := 0; j < negU.Cols; j++ {
			img.SetRGBA(j, i, RGB{red.At(i, j), green.At(i, j), blue.At(i, j)}.Clamped())
		}
	}
	return img, stats, nil
}

// PixelToCoord maps a pixel offset in the rendered image to data coordinates
// at the cell center.
func (r Renderer) PixelToCoord(px, py int) (float64, float64, error) {
	rows, cols := r.Field.U.Rows, r.Field.U.Cols
	if px < 0 || px >= cols || py < 0 || py >= rows {
		return 0, 0, fmt.Errorf("pixel (%d, %d) outside %dx%d raster", px, py, cols, rows)
	}
	x := r.Rect.XMin + (r.Rect.XMax-r.Rect.XMin)*(float64(px)+0.5)/float64(cols)
	y := r.Rect.YMax - (r.Rect.YMax-r.Rect.YMin)*(float64(py)+0.5)/float64(rows)
	return x, y, nil
}
