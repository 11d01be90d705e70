package localortho

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-localortho/dsp/shaping"
)

// Config holds the settings shared by [Orthogonalize] and [Similarity].
type Config struct {
	Iterations int
	Tolerance  float64
	Damping    float64
	Stabilizer float64
	Combinator Combinator
	Workers    int

	// Verbose logs every solver iteration at info level.
	Verbose bool

	// Logger receives diagnostics. Similarity logs from two goroutines, so
	// its writer must be safe for concurrent use.
	Logger zerolog.Logger

	// Observer receives the diagnostics of every solve. Similarity runs its
	// two solves concurrently, so the callback must be safe for concurrent use.
	Observer shaping.Observer
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig mirrors the usual processing setup: 20 iterations, no early
// stopping, unit damping, no stabilizer, geometric combination.
func DefaultConfig() Config {
	sc := shaping.DefaultConfig()
	return Config{
		Iterations: sc.Iterations,
		Tolerance:  sc.Tolerance,
		Damping:    sc.Damping,
		Combinator: Geometric,
		Workers:    1,
		Logger:     zerolog.Nop(),
	}
}

// WithIterations sets the iteration count of every solve.
func WithIterations(n int) Option {
	return func(cfg *Config) { cfg.Iterations = n }
}

// WithTolerance sets the early-stopping tolerance; 0 disables it.
func WithTolerance(eps float64) Option {
	return func(cfg *Config) { cfg.Tolerance = eps }
}

// WithDamping sets the shaping damping.
func WithDamping(lambda float64) Option {
	return func(cfg *Config) { cfg.Damping = lambda }
}

// WithStabilizer sets the division stabilizer.
func WithStabilizer(s float64) Option {
	return func(cfg *Config) { cfg.Stabilizer = s }
}

// WithCombinator selects how Similarity merges its two ratios.
func WithCombinator(c Combinator) Option {
	return func(cfg *Config) { cfg.Combinator = c }
}

// WithWorkers sets the number of smoothing goroutines per solve.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithVerbose enables per-iteration logging.
func WithVerbose(v bool) Option {
	return func(cfg *Config) { cfg.Verbose = v }
}

// WithLogger sets the diagnostics logger. Similarity writes to it from two
// goroutines at once; wrap writers that are not safe for concurrent use,
// such as a bytes.Buffer, with zerolog.SyncWriter.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = l }
}

// WithObserver installs a per-iteration callback.
func WithObserver(fn shaping.Observer) Option {
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

func (c Config) validate() error {
	if err := c.solverConfig("").Validate(); err != nil {
		return err
	}
	if c.Stabilizer < 0 {
		return fmt.Errorf("%w: %v", shaping.ErrStabilizer, c.Stabilizer)
	}
	return c.Combinator.validate()
}

func (c Config) solverConfig(label string) shaping.Config {
	return shaping.Config{
		Iterations: c.Iterations,
		Tolerance:  c.Tolerance,
		Damping:    c.Damping,
		Label:      label,
	}
}

// divideOptions translates the config into options for one labelled solve.
func (c Config) divideOptions(label string) []shaping.DivideOption {
	observer := c.observer()
	return []shaping.DivideOption{
		shaping.WithStabilizer(c.Stabilizer),
		shaping.WithWorkers(c.Workers),
		shaping.WithSolverOptions(
			shaping.WithIterations(c.Iterations),
			shaping.WithTolerance(c.Tolerance),
			shaping.WithDamping(c.Damping),
			shaping.WithLabel(label),
			shaping.WithObserver(observer),
		),
	}
}

// observer combines the verbose logger and the user callback.
func (c Config) observer() shaping.Observer {
	if !c.Verbose && c.Observer == nil {
		return nil
	}
	logger := c.Logger
	user := c.Observer
	verbose := c.Verbose
	return func(it shaping.Iteration) {
		if verbose {
			logger.Info().
				Str("solve", it.Solve).
				Int("iter", it.Index).
				Float64("residual", it.Residual).
				Float64("objective", it.Objective).
				Float64("gradient", it.Gradient).
				Msg("shaping iteration")
		}
		if user != nil {
			user(it)
		}
	}
}
