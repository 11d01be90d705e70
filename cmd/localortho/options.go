package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/cwbudde/algo-localortho/dsp/bandsplit"
	"github.com/cwbudde/algo-localortho/dsp/localortho"
	"github.com/cwbudde/algo-localortho/internal/rawio"
	"github.com/cwbudde/algo-localortho/internal/synth"
)

var errInput = errors.New("either -demo or both -signal and -noise with -shape are required")

type options struct {
	signalPath string
	noisePath  string
	shape      []int
	out        string

	demo  bool
	synth synth.Config
	sigma float64
	seed  uint64
	band  bandsplit.Config

	radii      []int
	simRadii   []int
	combinator localortho.Combinator
	iterations int
	tolerance  float64
	damping    float64
	stabilizer float64
	workers    int
	verbose    bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var (
		opts              options
		shape, rect, simr string
		combine           string
	)
	def := synth.DefaultConfig()
	lo := localortho.DefaultConfig()

	fs.StringVar(&opts.signalPath, "signal", "", "raw float64 file with the initial signal estimate")
	fs.StringVar(&opts.noisePath, "noise", "", "raw float64 file with the initial noise estimate")
	fs.StringVar(&shape, "shape", "", "grid shape of the raw inputs, e.g. 300,80")
	fs.StringVar(&opts.out, "out", "", "prefix for raw outputs (signal.bin, noise.bin, weight.bin, simi0.bin, simi1.bin)")

	fs.BoolVar(&opts.demo, "demo", false, "use the synthetic section with a band split as initial separation")
	fs.IntVar(&opts.synth.N1, "n1", def.N1, "demo: time samples")
	fs.IntVar(&opts.synth.N2, "n2", def.N2, "demo: traces")
	fs.Float64Var(&opts.synth.Dt, "dt", def.Dt, "demo: sample interval in seconds")
	fs.Float64Var(&opts.sigma, "sigma", 0.2, "demo: noise standard deviation")
	fs.Uint64Var(&opts.seed, "seed", 201415, "demo: noise seed")
	fs.Float64Var(&opts.band.Low, "low", 0, "demo: pass band lower edge in Hz")
	fs.Float64Var(&opts.band.High, "high", 35, "demo: pass band upper edge in Hz")
	fs.Float64Var(&opts.band.Taper, "taper", 10, "demo: cosine taper width in Hz")

	fs.StringVar(&rect, "rect", "20,20,1", "orthogonalization smoothing radius per axis")
	fs.StringVar(&simr, "simrect", "3,3,1", "similarity smoothing radius per axis")
	fs.StringVar(&combine, "combine", lo.Combinator.String(), "similarity combinator: geometric, arithmetic or minimum")
	fs.IntVar(&opts.iterations, "niter", lo.Iterations, "solver iterations")
	fs.Float64Var(&opts.tolerance, "eps", lo.Tolerance, "early stopping tolerance, 0 runs all iterations")
	fs.Float64Var(&opts.damping, "damping", lo.Damping, "shaping damping")
	fs.Float64Var(&opts.stabilizer, "stab", lo.Stabilizer, "division stabilizer, 0 disables it")
	fs.IntVar(&opts.workers, "workers", 1, "smoothing goroutines per solve")
	fs.BoolVar(&opts.verbose, "v", false, "log every solver iteration")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.band.Dt = opts.synth.Dt

	var err error
	if opts.radii, err = rawio.ParseInts(rect); err != nil {
		return opts, err
	}
	if opts.simRadii, err = rawio.ParseInts(simr); err != nil {
		return opts, err
	}
	if opts.combinator, err = localortho.ParseCombinator(combine); err != nil {
		return opts, err
	}

	if opts.demo {
		return opts, nil
	}
	if opts.signalPath == "" || opts.noisePath == "" || shape == "" {
		return opts, errInput
	}
	if opts.shape, err = rawio.ParseInts(shape); err != nil {
		return opts, fmt.Errorf("-shape: %w", err)
	}
	return opts, nil
}

func (o options) localorthoOptions() []localortho.Option {
	return []localortho.Option{
		localortho.WithIterations(o.iterations),
		localortho.WithTolerance(o.tolerance),
		localortho.WithDamping(o.damping),
		localortho.WithStabilizer(o.stabilizer),
		localortho.WithCombinator(o.combinator),
		localortho.WithWorkers(o.workers),
		localortho.WithVerbose(o.verbose),
	}
}
