package smooth

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cwbudde/algo-localortho/dsp/core"
	"github.com/cwbudde/algo-localortho/dsp/grid"
)

// Config holds smoothing settings.
type Config struct {
	// Workers is the number of goroutines sharing the lines of one axis pass.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a single-worker configuration.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// WithWorkers sets the number of goroutines per axis pass. Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Triangle is a separable triangle smoother bound to one grid shape.
// It is safe for concurrent use.
type Triangle struct {
	shape   []int
	strides []int
	radii   []int
	size    int
	workers int
}

// NewTriangle validates radii against shape and returns the operator.
func NewTriangle(shape, radii []int, opts ...Option) (*Triangle, error) {
	if err := grid.ValidateShape(shape); err != nil {
		return nil, err
	}
	if err := ValidateRadii(shape, radii); err != nil {
		return nil, err
	}
	cfg := ApplyOptions(opts...)

	return &Triangle{
		shape:   slices.Clone(shape),
		strides: grid.Strides(shape),
		radii:   slices.Clone(radii[:len(shape)]),
		size:    grid.Size(shape),
		workers: cfg.Workers,
	}, nil
}

// Len returns the number of samples the operator acts on.
func (t *Triangle) Len() int { return t.size }

// Radii returns the per-axis radii.
func (t *Triangle) Radii() []int { return slices.Clone(t.radii) }

// Forward applies the smoother. Identical to [Triangle.Apply].
func (t *Triangle) Forward(dst, src []float64) { t.Apply(dst, src) }

// Adjoint applies the transposed smoother, which equals the smoother itself.
func (t *Triangle) Adjoint(dst, src []float64) { t.Apply(dst, src) }

// Apply writes the smoothed src into dst. dst may alias src.
// Both slices must have length [Triangle.Len].
func (t *Triangle) Apply(dst, src []float64) {
	if len(dst) != t.size || len(src) != t.size {
		panic(fmt.Sprintf("smooth: buffer length %d/%d, want %d", len(dst), len(src), t.size))
	}
	if &dst[0] != &src[0] {
		copy(dst, src)
	}
	for axis, r := range t.radii {
		if r > 1 {
			t.smoothAxis(dst, axis, r)
		}
	}
}

// Smooth returns a smoothed copy of g.
func Smooth(g *grid.Grid, radii []int, opts ...Option) (*grid.Grid, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: smooth: nil grid", core.ErrConfiguration)
	}
	tri, err := NewTriangle(g.Shape(), radii, opts...)
	if err != nil {
		return nil, err
	}
	out := grid.ZerosLike(g)
	tri.Apply(out.Data, g.Data)
	return out, nil
}

func (t *Triangle) smoothAxis(data []float64, axis, r int) {
	n := t.shape[axis]
	stride := t.strides[axis]
	lines := t.size / n

	workers := min(t.workers, lines)
	if workers <= 1 {
		t.smoothLines(data, n, stride, r, 0, lines)
		return
	}

	var wg sync.WaitGroup
	chunk := (lines + workers - 1) / workers
	for lo := 0; lo < lines; lo += chunk {
		hi := min(lo+chunk, lines)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			t.smoothLines(data, n, stride, r, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// smoothLines filters lines [lo, hi) of one axis. Line k starts at the
// offset of its outer block plus its position inside the block.
func (t *Triangle) smoothLines(data []float64, n, stride, r, lo, hi int) {
	s := getScratch(n, r)
	defer putScratch(s)

	for k := lo; k < hi; k++ {
		base := (k/stride)*n*stride + k%stride
		for j := range n {
			s.line[j] = data[base+j*stride]
		}
		s.triangle(r)
		for j := range n {
			data[base+j*stride] = s.line[j]
		}
	}
}
