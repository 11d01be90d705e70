package grid

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-localortho/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by grid constructors and shape checks.
var (
	ErrInvalidShape  = fmt.Errorf("%w: grid: invalid shape", core.ErrConfiguration)
	ErrShapeMismatch = fmt.Errorf("%w: grid: shape mismatch", core.ErrConfiguration)
	ErrDataLength    = fmt.Errorf("%w: grid: data length does not match shape", core.ErrConfiguration)
	errNilGrid       = errors.New("grid: nil grid")
)

// Grid is an n-dimensional array of float64 samples.
type Grid struct {
	shape   []int
	strides []int

	// Data holds the samples in row-major order. Its length never changes.
	Data []float64
}

// New returns a zero-filled grid. It panics on an invalid shape; use
// [FromSlice] or [ValidateShape] for caller supplied dimensions.
func New(shape ...int) *Grid {
	if err := ValidateShape(shape); err != nil {
		panic(err)
	}
	g := &Grid{shape: slices.Clone(shape)}
	g.strides = Strides(g.shape)
	g.Data = make([]float64, Size(shape))
	return g
}

// FromSlice wraps data without copying it.
func FromSlice(data []float64, shape ...int) (*Grid, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	if n := Size(shape); n != len(data) {
		return nil, fmt.Errorf("%w: %d samples for shape %v (%d)", ErrDataLength, len(data), shape, n)
	}
	g := &Grid{shape: slices.Clone(shape), Data: data}
	g.strides = Strides(g.shape)
	return g, nil
}

// ValidateShape checks that shape has at least one axis and that every
// dimension is positive.
func ValidateShape(shape []int) error {
	if len(shape) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidShape)
	}
	for axis, n := range shape {
		if n <= 0 {
			return fmt.Errorf("%w: axis %d has dimension %d", ErrInvalidShape, axis, n)
		}
	}
	return nil
}

// Size returns the number of samples described by shape.
func Size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// Strides returns the row-major strides of shape.
func Strides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		strides[axis] = s
		s *= shape[axis]
	}
	return strides
}

// Shape returns a copy of the grid dimensions.
func (g *Grid) Shape() []int { return slices.Clone(g.shape) }

// NDim returns the number of axes.
func (g *Grid) NDim() int { return len(g.shape) }

// Dim returns the length of axis.
func (g *Grid) Dim(axis int) int { return g.shape[axis] }

// Stride returns the distance in Data between neighbours along axis.
func (g *Grid) Stride(axis int) int { return g.strides[axis] }

// Len returns the number of samples.
func (g *Grid) Len() int { return len(g.Data) }

// Index returns the flat offset of the sample at idx.
func (g *Grid) Index(idx ...int) int {
	if len(idx) != len(g.shape) {
		panic(fmt.Sprintf("grid: %d indices for %d axes", len(idx), len(g.shape)))
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= g.shape[axis] {
			panic(fmt.Sprintf("grid: index %d out of range [0,%d) on axis %d", i, g.shape[axis], axis))
		}
		off += i * g.strides[axis]
	}
	return off
}

// At returns the sample at idx.
func (g *Grid) At(idx ...int) float64 { return g.Data[g.Index(idx...)] }

// Set stores v at idx.
func (g *Grid) Set(v float64, idx ...int) { g.Data[g.Index(idx...)] = v }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{
		shape:   slices.Clone(g.shape),
		strides: slices.Clone(g.strides),
		Data:    slices.Clone(g.Data),
	}
}

// ZerosLike returns a zero-filled grid with the shape of g.
func ZerosLike(g *Grid) *Grid {
	return &Grid{
		shape:   slices.Clone(g.shape),
		strides: slices.Clone(g.strides),
		Data:    make([]float64, len(g.Data)),
	}
}

// SameShape reports whether g and other have identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && slices.Equal(g.shape, other.shape)
}

// CheckSameShape returns ErrShapeMismatch unless all grids share one shape.
func CheckSameShape(grids ...*Grid) error {
	for i, g := range grids {
		if g == nil {
			return fmt.Errorf("%w: argument %d: %w", ErrInvalidShape, i, errNilGrid)
		}
	}
	for i := 1; i < len(grids); i++ {
		if !grids[0].SameShape(grids[i]) {
			return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, grids[0].shape, grids[i].shape)
		}
	}
	return nil
}

// Add returns a + b.
func Add(a, b *Grid) (*Grid, error) {
	if err := CheckSameShape(a, b); err != nil {
		return nil, err
	}
	out := ZerosLike(a)
	vecmath.AddBlock(out.Data, a.Data, b.Data)
	return out, nil
}

// Sub returns a - b.
func Sub(a, b *Grid) (*Grid, error) {
	if err := CheckSameShape(a, b); err != nil {
		return nil, err
	}
	out := ZerosLike(a)
	vecmath.ScaleBlock(out.Data, b.Data, -1)
	vecmath.AddBlockInPlace(out.Data, a.Data)
	return out, nil
}

// Mul returns the elementwise product a * b.
func Mul(a, b *Grid) (*Grid, error) {
	if err := CheckSameShape(a, b); err != nil {
		return nil, err
	}
	out := ZerosLike(a)
	vecmath.MulBlock(out.Data, a.Data, b.Data)
	return out, nil
}

// String describes the grid shape.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid%v", g.shape)
}
