// Package grid provides the n-dimensional sample array used throughout the
// module.
//
// A [Grid] couples an immutable shape with a flat []float64 buffer in
// row-major order: the last axis varies fastest. One, two and three
// dimensional sections are the common case, but any rank is accepted.
//
//	g := grid.New(300, 80)      // 300 time samples, 80 traces
//	g.Set(1.5, 140, 10)
//	v := g.At(140, 10)
//
// All binary operations require identical shapes. A mismatch is reported as
// [ErrShapeMismatch], which wraps core.ErrConfiguration; shapes are never
// broadcast or cropped.
package grid
