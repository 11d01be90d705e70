package bandsplit

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-localortho/dsp/core"
	"github.com/cwbudde/algo-localortho/dsp/grid"
)

// Errors returned by [Split].
var (
	ErrSampleInterval = fmt.Errorf("%w: bandsplit: sample interval must be positive", core.ErrConfiguration)
	ErrBand           = fmt.Errorf("%w: bandsplit: invalid band edges", core.ErrConfiguration)
	ErrTaper          = fmt.Errorf("%w: bandsplit: taper must be non-negative", core.ErrConfiguration)
)

// Config describes the pass band in Hz.
type Config struct {
	// Dt is the sample interval in seconds along axis 0.
	Dt float64
	// Low and High bound the pass band. Low may be zero for a low-pass split.
	Low, High float64
	// Taper is the width of the cosine ramps outside each edge.
	Taper float64
}

// Validate reports whether the configuration describes a usable band.
func (c Config) Validate() error {
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: %g", ErrSampleInterval, c.Dt)
	}
	if c.Low < 0 || !(c.High > c.Low) || math.IsNaN(c.High) {
		return fmt.Errorf("%w: [%g, %g]", ErrBand, c.Low, c.High)
	}
	if !(c.Taper >= 0) {
		return fmt.Errorf("%w: %g", ErrTaper, c.Taper)
	}
	return nil
}

// Gain returns the mask value at frequency f (Hz, sign ignored).
func (c Config) Gain(f float64) float64 {
	f = math.Abs(f)
	switch {
	case f >= c.Low && f <= c.High:
		return 1
	case c.Taper == 0:
		return 0
	case f < c.Low && f > c.Low-c.Taper:
		return 0.5 * (1 + math.Cos(math.Pi*(c.Low-f)/c.Taper))
	case f > c.High && f < c.High+c.Taper:
		return 0.5 * (1 + math.Cos(math.Pi*(f-c.High)/c.Taper))
	default:
		return 0
	}
}

// Split returns the in-band part of g and the remainder g-in.
func Split(g *grid.Grid, cfg Config) (in, out *grid.Grid, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	n1 := g.Dim(0)
	traces := g.Len() / n1
	size := nextPow2(n1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, nil, fmt.Errorf("bandsplit: fft plan: %w", err)
	}

	mask := make([]float64, size)
	df := 1 / (float64(size) * cfg.Dt)
	for k := range mask {
		f := float64(k) * df
		if k > size/2 {
			f = float64(size-k) * df
		}
		mask[k] = cfg.Gain(f)
	}

	in = grid.ZerosLike(g)
	buf := make([]complex128, size)
	for tr := 0; tr < traces; tr++ {
		// Axis 0 is the slowest axis; a trace is strided by the product of
		// the remaining dimensions.
		for i := range buf {
			buf[i] = 0
		}
		for i := 0; i < n1; i++ {
			buf[i] = complex(g.Data[i*traces+tr], 0)
		}
		if err := plan.Forward(buf, buf); err != nil {
			return nil, nil, fmt.Errorf("bandsplit: forward fft: %w", err)
		}
		for k, m := range mask {
			buf[k] *= complex(m, 0)
		}
		if err := plan.Inverse(buf, buf); err != nil {
			return nil, nil, fmt.Errorf("bandsplit: inverse fft: %w", err)
		}
		for i := 0; i < n1; i++ {
			in.Data[i*traces+tr] = real(buf[i])
		}
	}

	out = grid.ZerosLike(g)
	vecmath.ScaleBlock(out.Data, in.Data, -1)
	vecmath.AddBlockInPlace(out.Data, g.Data)
	return in, out, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
