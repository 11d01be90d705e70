package snr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-localortho/dsp/core"
)

// ErrLength is returned when the operands differ in length or are empty.
var ErrLength = fmt.Errorf("%w: snr: operands must be non-empty and of equal length", core.ErrConfiguration)

// DB returns the SNR of estimate against clean in dB.
func DB(clean, estimate []float64) (float64, error) {
	if len(clean) == 0 || len(clean) != len(estimate) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLength, len(clean), len(estimate))
	}
	residual := make([]float64, len(clean))
	vecmath.ScaleBlock(residual, estimate, -1)
	vecmath.AddBlockInPlace(residual, clean)

	errEnergy := vecmath.DotProduct(residual, residual)
	if errEnergy == 0 {
		return math.Inf(1), nil
	}
	return core.LinearPowerToDB(vecmath.DotProduct(clean, clean) / errEnergy), nil
}

// Gain returns the SNR improvement in dB of after over before.
func Gain(clean, before, after []float64) (float64, error) {
	b, err := DB(clean, before)
	if err != nil {
		return 0, err
	}
	a, err := DB(clean, after)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}
