package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-localortho/dsp/bandsplit"
	"github.com/cwbudde/algo-localortho/dsp/grid"
	"github.com/cwbudde/algo-localortho/dsp/localortho"
	"github.com/cwbudde/algo-localortho/internal/rawio"
	"github.com/cwbudde/algo-localortho/internal/synth"
)

// inputs is the initial separation and, for the demo, the clean section it
// was derived from.
type inputs struct {
	clean  *grid.Grid
	noisy  *grid.Grid
	signal *grid.Grid
	noise  *grid.Grid
}

type outputs struct {
	result    *localortho.Result
	simBefore *grid.Grid
	simAfter  *grid.Grid
}

func run(opts options, stdout io.Writer, logger zerolog.Logger) error {
	in, err := load(opts, logger)
	if err != nil {
		return err
	}

	lopts := append(opts.localorthoOptions(), localortho.WithLogger(logger))
	res, err := localortho.Orthogonalize(in.signal, in.noise, opts.radii, lopts...)
	if err != nil {
		return err
	}
	simBefore, err := localortho.Similarity(in.signal, in.noise, opts.simRadii, lopts...)
	if err != nil {
		return err
	}
	simAfter, err := localortho.Similarity(res.Signal, res.Noise, opts.simRadii, lopts...)
	if err != nil {
		return err
	}
	out := outputs{result: res, simBefore: simBefore, simAfter: simAfter}

	if err := printReport(stdout, opts, in, out); err != nil {
		return err
	}
	if opts.out == "" {
		return nil
	}
	return save(opts.out, out, logger)
}

func load(opts options, logger zerolog.Logger) (inputs, error) {
	if opts.demo {
		clean := synth.Section(opts.synth)
		noisy := synth.Noisy(clean, opts.sigma, opts.seed)
		signal, noise, err := bandsplit.Split(noisy, opts.band)
		if err != nil {
			return inputs{}, err
		}
		logger.Info().
			Ints("shape", clean.Shape()).
			Float64("sigma", opts.sigma).
			Float64("low", opts.band.Low).
			Float64("high", opts.band.High).
			Msg("synthetic section band split")
		return inputs{clean: clean, noisy: noisy, signal: signal, noise: noise}, nil
	}

	signal, err := rawio.ReadFile(opts.signalPath, opts.shape...)
	if err != nil {
		return inputs{}, fmt.Errorf("signal: %w", err)
	}
	noise, err := rawio.ReadFile(opts.noisePath, opts.shape...)
	if err != nil {
		return inputs{}, fmt.Errorf("noise: %w", err)
	}
	logger.Info().Ints("shape", opts.shape).Str("signal", opts.signalPath).Str("noise", opts.noisePath).Msg("inputs loaded")
	return inputs{signal: signal, noise: noise}, nil
}

func save(prefix string, out outputs, logger zerolog.Logger) error {
	files := []struct {
		name string
		g    *grid.Grid
	}{
		{"signal.bin", out.result.Signal},
		{"noise.bin", out.result.Noise},
		{"weight.bin", out.result.Weight},
		{"simi0.bin", out.simBefore},
		{"simi1.bin", out.simAfter},
	}
	for _, f := range files {
		path := prefix + f.name
		if err := rawio.WriteFile(path, f.g); err != nil {
			return err
		}
		logger.Debug().Str("path", path).Int("samples", f.g.Len()).Msg("output written")
	}
	return nil
}
