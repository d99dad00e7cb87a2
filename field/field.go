package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch is returned when the two component grids of a field do not
// have the same shape.
var ErrShapeMismatch = errors.New("shape mismatch")

// Field is a 2D vector field given by its X and Y component grids.
type Field struct {
	U, V *Grid
}

// New builds a field from two component grids. The grids must have the same
// shape.
func New(u, v *Grid) (*Field, error) {
	f := &Field{U: u, V: v}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that the component grids have the same shape.
func (f *Field) Validate() error {
	if f.U.Rows != f.V.Rows || f.U.Cols != f.V.Cols {
		return fmt.Errorf("%w: u is %dx%d, v is %dx%d",
			ErrShapeMismatch, f.U.Rows, f.U.Cols, f.V.Rows, f.V.Cols)
	}
	return nil
}

// Norms returns the grid of vector magnitudes.
func (f *Field) Norms() *Grid {
	n := NewGrid(f.U.Rows, f.U.Cols)
	n.Fill(func(i, j int) float64 {
		return math.Hypot(f.U.At(i, j), f.V.At(i, j))
	})
	return n
}
