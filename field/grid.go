// Package field implements dense 2D grids of scalars and the vector fields
// built from them.
//
// A Field is a pair of equal-shaped grids holding the X and Y components of a
// 2D vector field. Grids are stored row-major, row 0 first.
package field

import "math"

// Grid is a dense rows×cols matrix of float64.
type Grid struct {
	Rows, Cols int
	data       []float64
}

// NewGrid allocates a zero-filled grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows: rows,
		Cols: cols,
		data: make([]float64, rows*cols),
	}
}

// At returns the value at row i, column j.
func (g *Grid) At(i, j int) float64 {
	return g.data[i*g.Cols+j]
}

// Set stores v at row i, column j.
func (g *Grid) Set(i, j int, v float64) {
	g.data[i*g.Cols+j] = v
}

// Fill sets every cell to fn(i, j).
func (g *Grid) Fill(fn func(i, j int) float64) {
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			g.data[i*g.Cols+j] = fn(i, j)
		}
	}
}

// Max returns the largest value in the grid. Returns 0 for an empty grid.
func (g *Grid) Max() float64 {
	if len(g.data) == 0 {
		return 0
	}
	m := g.data[0]
	for _, v := range g.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// MeanStd returns the mean and the population standard deviation of the grid.
func (g *Grid) MeanStd() (float64, float64) {
	if len(g.data) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range g.data {
		sum += v
	}
	mean := sum / float64(len(g.data))

	var sq float64
	for _, v := range g.data {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(g.data)))
}
