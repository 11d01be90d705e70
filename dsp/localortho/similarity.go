package localortho

import (
	"sync"

	"github.com/cwbudde/algo-localortho/dsp/grid"
	"github.com/cwbudde/algo-localortho/dsp/shaping"
	"github.com/cwbudde/algo-localortho/dsp/smooth"
)

// Similarity returns the local similarity of a and b, a map in [0, 1] where
// 1 means locally proportional and 0 locally unrelated. It solves
// w₁·b ≈ a and w₂·a ≈ b concurrently and merges the two fields with the
// configured [Combinator]. The result does not depend on argument order.
func Similarity(a, b *grid.Grid, radii []int, opts ...Option) (*grid.Grid, error) {
	cfg := ApplyOptions(opts...)
	if err := grid.CheckSameShape(a, b); err != nil {
		return nil, err
	}
	if err := smooth.ValidateRadii(a.Shape(), radii); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var (
		wg         sync.WaitGroup
		r1, r2     *grid.Grid
		err1, err2 error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		r1, err1 = shaping.Divide(a, b, radii, cfg.divideOptions("similarity a/b")...)
	}()
	go func() {
		defer wg.Done()
		r2, err2 = shaping.Divide(b, a, radii, cfg.divideOptions("similarity b/a")...)
	}()
	wg.Wait()

	for _, err := range []error{err1, err2} {
		if err != nil {
			cfg.Logger.Error().Err(err).Msg("similarity failed")
			return nil, err
		}
	}

	out := grid.ZerosLike(a)
	for i := range out.Data {
		out.Data[i] = cfg.Combinator.Combine(r1.Data[i], r2.Data[i])
	}

	cfg.Logger.Debug().
		Ints("shape", a.Shape()).
		Ints("radii", radii).
		Stringer("combinator", cfg.Combinator).
		Msg("similarity done")

	return out, nil
}
