package shaping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-localortho/dsp/core"
	"github.com/cwbudde/algo-localortho/dsp/grid"
	"github.com/cwbudde/algo-localortho/dsp/smooth"
	"github.com/cwbudde/algo-localortho/internal/testutil"
)

// signs returns a grid of ±1 values.
func signs(seed uint64, shape ...int) *grid.Grid {
	g := testutil.UniformGrid(seed, 1, shape...)
	for i, v := range g.Data {
		if v < 0 {
			g.Data[i] = -1
		} else {
			g.Data[i] = 1
		}
	}
	return g
}

func TestDivideConstantRatio(t *testing.T) {
	den := signs(1, 20, 15)
	num := testutil.Affine(den, 3, 0)

	w, err := Divide(num, den, []int{5, 5})
	require.NoError(t, err)
	testutil.RequireGridNearlyEqual(t, w, testutil.ConstantGrid(3, 20, 15), 1e-10)
}

func TestDivideScaleInvariance(t *testing.T) {
	den := testutil.NormalGrid(2, 1, 12, 9)
	num := testutil.NormalGrid(3, 1, 12, 9)

	w1, err := Divide(num, den, []int{3, 3})
	require.NoError(t, err)

	// scaling both operands by the same factor leaves the ratio unchanged
	w2, err := Divide(testutil.Affine(num, 1e3, 0), testutil.Affine(den, 1e3, 0), []int{3, 3})
	require.NoError(t, err)
	testutil.RequireGridNearlyEqual(t, w1, w2, 1e-9)
}

func TestDivideZeroDenominator(t *testing.T) {
	num := testutil.NormalGrid(4, 1, 6, 6)
	den := grid.New(6, 6)

	w, err := Divide(num, den, []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 36), w.Data)
}

func TestDivideValidation(t *testing.T) {
	a := grid.New(10, 10)
	b := grid.New(10, 11)

	_, err := Divide(a, b, []int{3, 3})
	require.ErrorIs(t, err, grid.ErrShapeMismatch)

	_, err = Divide(a, a, []int{-1, 3})
	require.ErrorIs(t, err, smooth.ErrNegativeRadius)

	_, err = Divide(a, a, []int{11, 3})
	require.ErrorIs(t, err, smooth.ErrRadiusTooLarge)

	_, err = Divide(a, a, []int{3, 3}, WithSolverOptions(WithIterations(0)))
	require.ErrorIs(t, err, ErrIterations)

	_, err = Divide(a, a, []int{3, 3}, WithStabilizer(-1))
	require.ErrorIs(t, err, ErrStabilizer)
	assert.True(t, core.IsConfiguration(err))
}

func TestDivideDivergence(t *testing.T) {
	num := testutil.NormalGrid(5, 1, 8, 8)
	den := testutil.NormalGrid(6, 1, 8, 8)

	bad := num.Clone()
	bad.Data[10] = math.Inf(1)
	_, err := Divide(bad, den, []int{2, 2}, WithSolverOptions(WithLabel("ratio")))
	require.ErrorIs(t, err, core.ErrDivergence)

	var div *DivergenceError
	require.ErrorAs(t, err, &div)
	assert.Equal(t, 0, div.Iteration)
	assert.Equal(t, 10, div.Sample)
	assert.Contains(t, err.Error(), "input normalization")
	assert.Contains(t, err.Error(), "sample 10")
	assert.NotContains(t, err.Error(), "iteration")

	bad = den.Clone()
	bad.Data[3] = math.NaN()
	w, err := Divide(num, bad, []int{2, 2})
	require.ErrorIs(t, err, core.ErrDivergence)
	assert.Nil(t, w)
	require.ErrorAs(t, err, &div)
	assert.Equal(t, 3, div.Sample)
}

func TestDivideEnergyOverflow(t *testing.T) {
	num := testutil.NormalGrid(5, 1, 8, 8)
	den := testutil.ConstantGrid(1e200, 8, 8)

	w, err := Divide(num, den, []int{2, 2})
	require.ErrorIs(t, err, core.ErrDivergence)
	assert.Nil(t, w)

	var div *DivergenceError
	require.ErrorAs(t, err, &div)
	assert.Equal(t, 0, div.Iteration)
	assert.Equal(t, -1, div.Sample)
	assert.Contains(t, err.Error(), "denominator energy")
	assert.NotContains(t, err.Error(), "iteration")
}

func TestDivideStabilizer(t *testing.T) {
	num := testutil.NormalGrid(7, 1, 10, 10)
	den := testutil.NormalGrid(8, 1, 10, 10)

	w, err := Divide(num, den, []int{3, 3}, WithStabilizer(0.5))
	require.NoError(t, err)
	testutil.RequireFinite(t, w.Data)
}

func TestDivideDeterministic(t *testing.T) {
	num := testutil.NormalGrid(9, 1, 10, 10)
	den := testutil.NormalGrid(10, 1, 10, 10)
	opts := []DivideOption{WithSolverOptions(WithIterations(20), WithTolerance(0))}

	a, err := Divide(num, den, []int{3, 3}, opts...)
	require.NoError(t, err)
	b, err := Divide(num, den, []int{3, 3}, append(opts, WithWorkers(4))...)
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data)
}

// A 10×10 noise field and a scaled, noisy copy of it. Past the fifth
// iteration budget neither the change between consecutive scalar fields nor
// the shaping objective may rise.
func TestDivideConvergenceScenario(t *testing.T) {
	a := testutil.NormalGrid(11, 1, 10, 10)
	b := testutil.Affine(a, 2, 0)
	extra := testutil.NormalGrid(12, 0.3, 10, 10)
	for i := range b.Data {
		b.Data[i] += extra.Data[i]
	}

	final := make([]float64, 21)
	fields := make([][]float64, 21)
	fields[0] = make([]float64, a.Len())
	for niter := 1; niter <= 20; niter++ {
		var last Iteration
		w, err := Divide(b, a, []int{3, 3}, WithSolverOptions(
			WithIterations(niter),
			WithObserver(func(it Iteration) { last = it }),
		))
		require.NoError(t, err)
		testutil.RequireFinite(t, w.Data)
		final[niter] = last.Objective
		fields[niter] = w.Data
	}

	step := make([]float64, 21)
	for niter := 1; niter <= 20; niter++ {
		for i := range fields[niter] {
			d := fields[niter][i] - fields[niter-1][i]
			step[niter] += d * d
		}
	}

	for niter := 6; niter <= 20; niter++ {
		assert.LessOrEqual(t, step[niter], step[niter-1]+1e-12, "field change, niter %d", niter)
		assert.LessOrEqual(t, final[niter], final[niter-1]+1e-12, "objective, niter %d", niter)
	}
}
