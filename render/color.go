package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/earthlight/colorquiver/field"
)

// ErrUnsupportedMode is returned for a color mode outside 1..3.
var ErrUnsupportedMode = errors.New("unsupported color mode")

// Color modes. They select how vector magnitude maps to saturation and value.
const (
	// ModeLinear: black -> full colors indicates min -> max. Magnitudes past
	// the mapping max are not clamped here; they saturate at rasterization.
	ModeLinear = 1
	// ModeBounded: black -> full colors -> white indicates min -> max.
	ModeBounded = 2
	// ModeClipped: like ModeBounded, but the caller derives the mapping max
	// as mean+std of the magnitudes, so the tail beyond it clips to white.
	ModeClipped = 3
)

// Mapping is the magnitude range encoded by a color mode.
type Mapping struct {
	Min, Max float64
}

// Mid returns the midpoint of the range.
func (m Mapping) Mid() float64 {
	return (m.Min + m.Max) / 2
}

func validMode(mode int) error {
	if mode < ModeLinear || mode > ModeClipped {
		return fmt.Errorf("%w: %d", ErrUnsupportedMode, mode)
	}
	return nil
}

// arg returns the argument of the vector (x, y) normalized to [0, 1].
//
//	arg(1, 1)  == 0.125
//	arg(1, -1) == 0.875
func arg(x, y float64) float64 {
	return math.Atan2(-y, -x)/(2*math.Pi) + 0.5
}

// VecColor maps a single 2D vector to a color under the given mapping and
// mode. The hue encodes direction, saturation and value encode magnitude.
func VecColor(x, y float64, m Mapping, mode int) (RGB, error) {
	if err := validMode(mode); err != nil {
		return RGB{}, err
	}
	norm := math.Hypot(x, y)
	h := arg(x, y)
	if mode == ModeLinear {
		r, g, b := hsvToRGB(h, 1, (norm-m.Min)/(m.Max-m.Min))
		return RGB{r, g, b}, nil
	}
	mapped := (norm - m.Min) / (m.Max - m.Min)
	r, g, b := hsvToRGB(h, math.Min(1, 2-mapped*2), math.Min(1, mapped*2))
	return RGB{r, g, b}, nil
}

// VecColorGrid is the grid form of VecColor. It is numerically equivalent to
// applying VecColor to each cell.
func VecColorGrid(u, v *field.Grid, m Mapping, mode int) (*field.Grid, *field.Grid, *field.Grid, error) {
	if err := validMode(mode); err != nil {
		return nil, nil, nil, err
	}

	h := field.NewGrid(u.Rows, u.Cols)
	s := field.NewGrid(u.Rows, u.Cols)
	val := field.NewGrid(u.Rows, u.Cols)
	for i := 0; i < u.Rows; i++ {
		for j := 0; j < u.Cols; j++ {
			x, y := u.At(i, j), v.At(i, j)
			norm := math.Hypot(x, y)
			h.Set(i, j, arg(x, y))
			if mode == ModeLinear {
				s.Set(i, j, 1)
				val.Set(i, j, (norm-m.Min)/(m.Max-m.Min))
			} else {
				mapped := (norm - m.Min) / (m.Max - m.Min)
				s.Set(i, j, math.Min(1, 2-mapped*2))
				val.Set(i, j, math.Min(1, mapped*2))
			}
		}
	}

	r, g, b := hsvGridToRGB(h, s, val)
	return r, g, b, nil
}
