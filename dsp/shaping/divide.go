package shaping

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-localortho/dsp/core"
	"github.com/cwbudde/algo-localortho/dsp/grid"
	"github.com/cwbudde/algo-localortho/dsp/smooth"
	"github.com/cwbudde/algo-vecmath"
)

// DivideConfig holds settings for [Divide].
type DivideConfig struct {
	// Stabilizer s >= 0. When positive, num and den are divided sample-wise
	// by hypot(den, s), which tempers the ratio where den is weak.
	Stabilizer float64

	// Workers is forwarded to the triangle smoother.
	Workers int

	Solver []Option
}

// DivideOption mutates a DivideConfig.
type DivideOption func(*DivideConfig)

// WithStabilizer sets the division stabilizer.
func WithStabilizer(s float64) DivideOption {
	return func(cfg *DivideConfig) { cfg.Stabilizer = s }
}

// WithWorkers sets the smoother worker count.
func WithWorkers(n int) DivideOption {
	return func(cfg *DivideConfig) { cfg.Workers = n }
}

// WithSolverOptions appends solver options.
func WithSolverOptions(opts ...Option) DivideOption {
	return func(cfg *DivideConfig) { cfg.Solver = append(cfg.Solver, opts...) }
}

// Divide returns the smooth field w minimizing |w·den - num| under triangle
// shaping with the given radii. The field is zero when den is identically
// zero. A NaN or Inf in either input is reported as a *DivergenceError
// before any iteration runs. Inputs are not modified.
func Divide(num, den *grid.Grid, radii []int, opts ...DivideOption) (*grid.Grid, error) {
	var cfg DivideConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := grid.CheckSameShape(num, den); err != nil {
		return nil, err
	}
	if cfg.Stabilizer < 0 || !core.IsFinite(cfg.Stabilizer) {
		return nil, fmt.Errorf("%w: %v", ErrStabilizer, cfg.Stabilizer)
	}
	tri, err := smooth.NewTriangle(num.Shape(), radii, smooth.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	solver, err := NewSolver(cfg.Solver...)
	if err != nil {
		return nil, err
	}

	for _, in := range [][]float64{num.Data, den.Data} {
		if i := core.FirstNonFinite(in); i >= 0 {
			return nil, &DivergenceError{Solve: solver.cfg.Label, Sample: i, Value: in[i]}
		}
	}

	n := num.Len()
	nm := make([]float64, n)
	dn := make([]float64, n)
	copy(nm, num.Data)
	copy(dn, den.Data)

	if s := cfg.Stabilizer; s > 0 {
		for i := range dn {
			norm := 1 / math.Hypot(dn[i], s)
			nm[i] *= norm
			dn[i] *= norm
		}
	}

	energy := vecmath.DotProduct(dn, dn)
	if !core.IsFinite(energy) {
		return nil, &DivergenceError{Solve: solver.cfg.Label, Sample: -1, Value: energy}
	}
	out := grid.ZerosLike(num)
	if energy == 0 {
		return out, nil
	}

	// Unit mean energy of den keeps the damping scale-free.
	scale := math.Sqrt(float64(n) / energy)
	vecmath.ScaleBlockInPlace(nm, scale)
	vecmath.ScaleBlockInPlace(dn, scale)

	w, err := solver.Solve(Weight(dn), tri, nm)
	if err != nil {
		return nil, err
	}
	copy(out.Data, w)
	return out, nil
}
