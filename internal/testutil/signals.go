package testutil

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-localortho/dsp/grid"
)

// UniformGrid returns a grid of uniform noise in [-amplitude, amplitude)
// drawn from a fixed seed.
func UniformGrid(seed uint64, amplitude float64, shape ...int) *grid.Grid {
	g := grid.New(shape...)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range g.Data {
		g.Data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g
}

// NormalGrid returns a grid of zero-mean Gaussian noise with standard
// deviation sigma drawn from a fixed seed.
func NormalGrid(seed uint64, sigma float64, shape ...int) *grid.Grid {
	g := grid.New(shape...)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range g.Data {
		g.Data[i] = sigma * rng.NormFloat64()
	}
	return g
}

// ImpulseGrid returns a zero grid with a unit sample at idx.
func ImpulseGrid(shape []int, idx ...int) *grid.Grid {
	g := grid.New(shape...)
	g.Set(1, idx...)
	return g
}

// ConstantGrid returns a grid filled with value.
func ConstantGrid(value float64, shape ...int) *grid.Grid {
	g := grid.New(shape...)
	for i := range g.Data {
		g.Data[i] = value
	}
	return g
}

// Affine returns scale*g + offset as a new grid.
func Affine(g *grid.Grid, scale, offset float64) *grid.Grid {
	out := g.Clone()
	for i, v := range out.Data {
		out.Data[i] = scale*v + offset
	}
	return out
}
