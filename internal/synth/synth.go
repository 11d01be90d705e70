// Package synth builds deterministic synthetic seismic sections for tests,
// benchmarks and the command line demo.
package synth

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-localortho/dsp/grid"
)

// Config describes a section of N1 time samples by N2 traces.
type Config struct {
	N1, N2 int

	// Dt is the sample interval in seconds.
	Dt float64

	// Freq is the Ricker peak frequency in Hz.
	Freq float64

	// HalfLength is the wavelet half length in seconds.
	HalfLength float64
}

// DefaultConfig returns a 300×80 section sampled at 2 ms with a 30 Hz wavelet.
func DefaultConfig() Config {
	return Config{N1: 300, N2: 80, Dt: 0.002, Freq: 30, HalfLength: 0.055}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.N1 <= 0 {
		c.N1 = def.N1
	}
	if c.N2 <= 0 {
		c.N2 = def.N2
	}
	if c.Dt <= 0 {
		c.Dt = def.Dt
	}
	if c.Freq <= 0 {
		c.Freq = def.Freq
	}
	if c.HalfLength <= 0 {
		c.HalfLength = def.HalfLength
	}
	return c
}

// Ricker returns the wavelet (1 - 2(πft)²)·exp(-(πft)²) sampled at
// t = -half, -half+dt, ..., half.
func Ricker(freq, dt, half float64) []float64 {
	n := int(math.Round(2*half/dt)) + 1
	w := make([]float64, n)
	for i := range w {
		t := -half + float64(i)*dt
		a := math.Pi * freq * t
		a *= a
		w[i] = (1 - 2*a) * math.Exp(-a)
	}
	return w
}

// Section returns three linear events: a flat one starting at sample 140,
// one dipping up by two samples per trace from sample 220 and one dipping
// down by two samples per trace from sample 10. Event samples falling outside
// the section are dropped.
func Section(cfg Config) *grid.Grid {
	cfg = cfg.withDefaults()
	g := grid.New(cfg.N1, cfg.N2)
	w := Ricker(cfg.Freq, cfg.Dt, cfg.HalfLength)

	for j := range cfg.N2 {
		for _, start := range []int{140, 220 - 2*j, 10 + 2*j} {
			for k, v := range w {
				if i := start + k; i >= 0 && i < cfg.N1 {
					g.Data[i*cfg.N2+j] += v
				}
			}
		}
	}
	return g
}

// Gaussian returns zero-mean Gaussian noise with standard deviation sigma.
func Gaussian(shape []int, sigma float64, seed uint64) *grid.Grid {
	g := grid.New(shape...)
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := range g.Data {
		g.Data[i] = sigma * rng.NormFloat64()
	}
	return g
}

// Noisy returns clean plus Gaussian noise as a new grid; clean is not
// modified.
func Noisy(clean *grid.Grid, sigma float64, seed uint64) *grid.Grid {
	n := Gaussian(clean.Shape(), sigma, seed)
	out := grid.ZerosLike(clean)
	vecmath.AddBlock(out.Data, clean.Data, n.Data)
	return out
}
