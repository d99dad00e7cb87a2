package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridAtSet(t *testing.T) {
	g := NewGrid(2, 3)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)

	g.Set(1, 2, 4.5)
	assert.Equal(t, 4.5, g.At(1, 2))
	assert.Equal(t, 0.0, g.At(0, 0))
}

func TestGridFill(t *testing.T) {
	g := NewGrid(3, 3)
	g.Fill(func(i, j int) float64 {
		return float64(i*10 + j)
	})
	assert.Equal(t, 0.0, g.At(0, 0))
	assert.Equal(t, 12.0, g.At(1, 2))
	assert.Equal(t, 21.0, g.At(2, 1))
}

func TestGridMax(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, -5)
	g.Set(0, 1, 3)
	g.Set(1, 0, 2.5)
	g.Set(1, 1, -1)
	assert.Equal(t, 3.0, g.Max())
}

func TestGridMeanStd(t *testing.T) {
	// Values 0, 1, 2: mean 1, population std sqrt(2/3).
	g := NewGrid(1, 3)
	g.Set(0, 0, 0)
	g.Set(0, 1, 1)
	g.Set(0, 2, 2)

	mean, std := g.MeanStd()
	assert.Equal(t, 1.0, mean)
	assert.InDelta(t, math.Sqrt(2.0/3.0), std, 1e-15)
}

func TestGridMeanStdUniform(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(func(i, j int) float64 { return 7 })

	mean, std := g.MeanStd()
	assert.Equal(t, 7.0, mean)
	assert.Equal(t, 0.0, std)
}

func TestFieldNewShapeMismatch(t *testing.T) {
	_, err := New(NewGrid(2, 3), NewGrid(3, 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "2x3")
}

func TestFieldNorms(t *testing.T) {
	u := NewGrid(1, 2)
	v := NewGrid(1, 2)
	u.Set(0, 0, 3)
	v.Set(0, 0, 4)
	u.Set(0, 1, 1)
	v.Set(0, 1, -1)

	f, err := New(u, v)
	require.NoError(t, err)

	n := f.Norms()
	assert.Equal(t, 5.0, n.At(0, 0))
	assert.InDelta(t, math.Sqrt2, n.At(0, 1), 1e-15)
}
