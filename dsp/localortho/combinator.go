package localortho

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-localortho/dsp/core"
)

// ErrCombinator reports an unknown similarity combinator.
var ErrCombinator = fmt.Errorf("%w: localortho: unknown combinator", core.ErrConfiguration)

// Combinator merges the two directional ratios of a similarity estimate into
// one value. Every combinator is symmetric in its arguments and the result is
// clamped to [0, 1].
type Combinator int

const (
	// Geometric is sqrt(|r1·r2|). For unsmoothed ratios this is the absolute
	// normalized cross-correlation.
	Geometric Combinator = iota

	// Arithmetic is (|r1| + |r2|) / 2.
	Arithmetic

	// Minimum is min(|r1|, |r2|).
	Minimum
)

var combinatorNames = map[Combinator]string{
	Geometric:  "geometric",
	Arithmetic: "arithmetic",
	Minimum:    "minimum",
}

func (c Combinator) String() string {
	if name, ok := combinatorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Combinator(%d)", int(c))
}

// ParseCombinator maps a name such as "geometric" to its Combinator.
func ParseCombinator(name string) (Combinator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range combinatorNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrCombinator, name)
}

func (c Combinator) validate() error {
	if _, ok := combinatorNames[c]; !ok {
		return fmt.Errorf("%w: %d", ErrCombinator, int(c))
	}
	return nil
}

// Combine merges r1 and r2.
func (c Combinator) Combine(r1, r2 float64) float64 {
	var v float64
	switch c {
	case Arithmetic:
		v = (math.Abs(r1) + math.Abs(r2)) / 2
	case Minimum:
		v = math.Min(math.Abs(r1), math.Abs(r2))
	default:
		v = math.Sqrt(math.Abs(r1 * r2))
	}
	return core.Clamp(v, 0, 1)
}
