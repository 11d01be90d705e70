package shaping

import (
	"fmt"
	"math"
)

// Iteration carries per-iteration diagnostics. Values are normalized by the
// data length.
type Iteration struct {
	Solve     string
	Index     int     // 1-based
	Residual  float64 // |L x - d|² / n after the update
	Objective float64 // (|L x - d|² + λ(|p|² - |x|²)) / n after the update
	Gradient  float64 // |g|² / |g₀|² of the gradient that produced the update
}

// Observer receives diagnostics. It must not retain the solver's buffers and
// has no influence on the result.
type Observer func(Iteration)

// Config holds solver settings.
type Config struct {
	// Iterations is the fixed iteration budget, >= 1.
	Iterations int

	// Tolerance enables early stopping when > 0: the solve ends once the
	// squared gradient norm falls below Tolerance relative to the previous or
	// the first iteration. 0 runs all iterations.
	Tolerance float64

	// Damping is the shaping damping λ > 0.
	Damping float64

	// Label names the solve in diagnostics and errors.
	Label string

	Observer Observer
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 20 iterations, no early stopping and unit damping.
func DefaultConfig() Config {
	return Config{
		Iterations: 20,
		Damping:    1,
		Label:      "shaping",
	}
}

// WithIterations sets the iteration budget.
func WithIterations(n int) Option {
	return func(cfg *Config) { cfg.Iterations = n }
}

// WithTolerance sets the early-stopping tolerance.
func WithTolerance(eps float64) Option {
	return func(cfg *Config) { cfg.Tolerance = eps }
}

// WithDamping sets the shaping damping.
func WithDamping(lambda float64) Option {
	return func(cfg *Config) { cfg.Damping = lambda }
}

// WithLabel names the solve.
func WithLabel(label string) Option {
	return func(cfg *Config) {
		if label != "" {
			cfg.Label = label
		}
	}
}

// WithObserver installs a diagnostics callback.
func WithObserver(fn Observer) Option {
	return func(cfg *Config) { cfg.Observer = fn }
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

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: %d", ErrIterations, c.Iterations)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return fmt.Errorf("%w: %v", ErrTolerance, c.Tolerance)
	}
	if !(c.Damping > 0) || math.IsInf(c.Damping, 0) {
		return fmt.Errorf("%w: %v", ErrDamping, c.Damping)
	}
	return nil
}
