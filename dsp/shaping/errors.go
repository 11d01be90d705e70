package shaping

import (
	"fmt"

	"github.com/cwbudde/algo-localortho/dsp/core"
)

// Configuration errors.
var (
	ErrIterations  = fmt.Errorf("%w: shaping: iterations must be > 0", core.ErrConfiguration)
	ErrTolerance   = fmt.Errorf("%w: shaping: tolerance must be >= 0", core.ErrConfiguration)
	ErrDamping     = fmt.Errorf("%w: shaping: damping must be > 0", core.ErrConfiguration)
	ErrStabilizer  = fmt.Errorf("%w: shaping: stabilizer must be >= 0", core.ErrConfiguration)
	ErrOperandSize = fmt.Errorf("%w: shaping: operand size mismatch", core.ErrConfiguration)
)

// DivergenceError reports a non-finite value met during a solve. Iteration
// is 0 when the value was found while normalizing the inputs, before the
// first iteration; Sample then holds the offending input index, or -1 when
// only the accumulated energy overflowed.
type DivergenceError struct {
	Solve     string
	Iteration int
	Sample    int
	Value     float64
}

func (e *DivergenceError) Error() string {
	switch {
	case e.Iteration > 0:
		return fmt.Sprintf("shaping: %s: non-finite residual %v at iteration %d", e.Solve, e.Value, e.Iteration)
	case e.Sample >= 0:
		return fmt.Sprintf("shaping: %s: non-finite input %v at sample %d during input normalization", e.Solve, e.Value, e.Sample)
	default:
		return fmt.Sprintf("shaping: %s: non-finite denominator energy %v during input normalization", e.Solve, e.Value)
	}
}

// Unwrap makes errors.Is(err, core.ErrDivergence) hold.
func (e *DivergenceError) Unwrap() error { return core.ErrDivergence }
