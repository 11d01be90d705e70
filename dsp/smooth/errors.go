package smooth

import (
	"fmt"

	"github.com/cwbudde/algo-localortho/dsp/core"
)

// Errors returned by radius validation.
var (
	ErrNegativeRadius = fmt.Errorf("%w: smooth: negative radius", core.ErrConfiguration)
	ErrRadiusTooLarge = fmt.Errorf("%w: smooth: radius exceeds axis length", core.ErrConfiguration)
	ErrMissingRadius  = fmt.Errorf("%w: smooth: fewer radii than axes", core.ErrConfiguration)
)

// ValidateRadii checks radii against shape. Entries beyond the last axis
// describe implicit axes of length 1 and may only be 0 or 1.
func ValidateRadii(shape, radii []int) error {
	if len(radii) < len(shape) {
		return fmt.Errorf("%w: %d radii for %d axes", ErrMissingRadius, len(radii), len(shape))
	}
	for axis, r := range radii {
		if r < 0 {
			return fmt.Errorf("%w: axis %d: %d", ErrNegativeRadius, axis, r)
		}
		n := 1
		if axis < len(shape) {
			n = shape[axis]
		}
		if r > n {
			return fmt.Errorf("%w: axis %d: radius %d > length %d", ErrRadiusTooLarge, axis, r, n)
		}
	}
	return nil
}
