// Package smooth implements separable triangle smoothing of n-dimensional
// grids.
//
// Along every axis with radius r > 1 the data is convolved with a normalized
// triangle of width 2r-1, weights (1, 2, ..., r, ..., 2, 1) / r². The triangle
// is applied as a causal box of width r followed by an anti-causal box of
// width r, each evaluated with running sums, so the cost per sample does not
// depend on r.
//
// # Boundaries
//
// Each line is folded at its ends (half-sample mirror) before filtering. The
// window therefore never reads outside the data and constant input is
// reproduced exactly. With this boundary rule the operator matrix is
// symmetric, so [Triangle.Forward] and [Triangle.Adjoint] are the same
// routine, which the shaping solver relies on.
//
// # Usage
//
//	out, err := smooth.Smooth(g, []int{20, 20})
//
// For repeated application on one shape, build the operator once:
//
//	tri, err := smooth.NewTriangle(g.Shape(), []int{5, 5}, smooth.WithWorkers(4))
//	tri.Apply(dst, src)
//
// A radius of 0 or 1 leaves the axis untouched. Negative radii and radii
// larger than the axis length are rejected with errors wrapping
// core.ErrConfiguration.
package smooth
