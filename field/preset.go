package field

import (
	"fmt"
	"math"
	"sort"
)

// Extent is a rectangular region of the plane, (XMin, XMax, YMin, YMax).
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// PresetFunc evaluates a vector field at a point.
type PresetFunc func(x, y float64) (u, v float64)

// Presets holds the analytic example fields used by the CLI and server demos.
// Row 0 of the generated grids corresponds to YMin.
var Presets = map[string]PresetFunc{
	// Counter-clockwise unit vortex around the origin.
	"vortex": func(x, y float64) (float64, float64) {
		l := math.Hypot(x, y)
		if l == 0 {
			return 0, 0
		}
		return -y / l, x / l
	},

	// Constant field pointing along +x.
	"uniform": func(x, y float64) (float64, float64) {
		return 1, 0
	},

	// Radial outflow, magnitude growing with distance from the origin.
	"source": func(x, y float64) (float64, float64) {
		return x, y
	},

	"saddle": func(x, y float64) (float64, float64) {
		return x, -y
	},
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromFunction samples fn over a rows×cols meshgrid of the extent.
func FromFunction(rows, cols int, ext Extent, fn PresetFunc) *Field {
	u := NewGrid(rows, cols)
	v := NewGrid(rows, cols)
	for i := 0; i < rows; i++ {
		y := linspace(ext.YMin, ext.YMax, rows, i)
		for j := 0; j < cols; j++ {
			x := linspace(ext.XMin, ext.XMax, cols, j)
			uu, vv := fn(x, y)
			u.Set(i, j, uu)
			v.Set(i, j, vv)
		}
	}
	f, _ := New(u, v)
	return f
}

// FromPreset samples a named preset. Returns an error for unknown names.
func FromPreset(name string, rows, cols int, ext Extent) (*Field, error) {
	fn, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q, have %v", name, PresetNames())
	}
	return FromFunction(rows, cols, ext, fn), nil
}

// linspace returns the k-th of n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n, k int) float64 {
	if n < 2 {
		return lo
	}
	return lo + (hi-lo)*float64(k)/float64(n-1)
}
