package render

import "github.com/earthlight/colorquiver/field"

// hsvToRGB converts a single HSV triple in [0,1] to RGB in [0,1], with the
// exact colorsys semantics: the hue sector index is trunc(h*6), not a
// rounding.
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	if s == 0 {
		return v, v, v
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// hsvGridToRGB is the grid form of hsvToRGB. It runs the same arithmetic
// elementwise and agrees with the scalar form exactly, including at s==0
// where p, q and t all collapse to v.
func hsvGridToRGB(h, s, v *field.Grid) (*field.Grid, *field.Grid, *field.Grid) {
	r := field.NewGrid(h.Rows, h.Cols)
	g := field.NewGrid(h.Rows, h.Cols)
	b := field.NewGrid(h.Rows, h.Cols)
	for i := 0; i < h.Rows; i++ {
		for j := 0; j < h.Cols; j++ {
			hh, ss, vv := h.At(i, j), s.At(i, j), v.At(i, j)
			sector := int(hh * 6)
			f := hh*6 - float64(sector)
			p := vv * (1 - ss)
			q := vv * (1 - ss*f)
			t := vv * (1 - ss*(1-f))
			var rr, gg, bb float64
			switch sector % 6 {
			case 0:
				rr, gg, bb = vv, t, p
			case 1:
				rr, gg, bb = q, vv, p
			case 2:
				rr, gg, bb = p, vv, t
			case 3:
				rr, gg, bb = p, q, vv
			case 4:
				rr, gg, bb = t, p, vv
			default:
				rr, gg, bb = vv, p, q
			}
			r.Set(i, j, rr)
			g.Set(i, j, gg)
			b.Set(i, j, bb)
		}
	}
	return r, g, b
}
