package localortho

import (
	"github.com/cwbudde/algo-localortho/dsp/grid"
	"github.com/cwbudde/algo-localortho/dsp/shaping"
	"github.com/cwbudde/algo-localortho/dsp/smooth"
	"github.com/cwbudde/algo-vecmath"
)

// Result is the output of [Orthogonalize].
type Result struct {
	// Signal is the corrected signal d + w·d.
	Signal *grid.Grid

	// Noise is the corrected noise n - w·d.
	Noise *grid.Grid

	// Weight is the solved field w: the local share of the signal estimate
	// that leaked into the noise estimate. Smooth by construction, it maps
	// where the initial separation damaged the signal.
	Weight *grid.Grid
}

// Orthogonalize rebalances signal and noise so that they are locally
// orthogonal. radii gives the triangle smoothing radius per axis. All
// settings are validated before computation; inputs are not modified.
func Orthogonalize(signal, noise *grid.Grid, radii []int, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)
	if err := grid.CheckSameShape(signal, noise); err != nil {
		return nil, err
	}
	if err := smooth.ValidateRadii(signal.Shape(), radii); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	w, err := shaping.Divide(noise, signal, radii, cfg.divideOptions("orthogonalize")...)
	if err != nil {
		cfg.Logger.Error().Err(err).Msg("orthogonalization failed")
		return nil, err
	}

	leak := grid.ZerosLike(signal)
	vecmath.MulBlock(leak.Data, w.Data, signal.Data)

	res := &Result{
		Signal: grid.ZerosLike(signal),
		Noise:  grid.ZerosLike(noise),
		Weight: w,
	}
	vecmath.AddBlock(res.Signal.Data, signal.Data, leak.Data)
	vecmath.ScaleBlockInPlace(leak.Data, -1)
	vecmath.AddBlock(res.Noise.Data, noise.Data, leak.Data)

	cfg.Logger.Debug().
		Ints("shape", signal.Shape()).
		Ints("radii", radii).
		Float64("weight_max", vecmath.MaxAbs(w.Data)).
		Msg("orthogonalization done")

	return res, nil
}
