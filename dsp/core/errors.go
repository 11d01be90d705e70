package core

import "errors"

// Root errors shared by all packages of the module. Package specific
// sentinels wrap one of these, so callers can classify any failure with
// errors.Is.
var (
	// ErrConfiguration reports caller misuse detected before any computation:
	// mismatched shapes, invalid smoothing radii, non-positive iteration
	// counts and similar.
	ErrConfiguration = errors.New("configuration error")

	// ErrDivergence reports non-finite values produced during an iterative
	// solve. No partial result accompanies it.
	ErrDivergence = errors.New("numerical divergence")
)

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsDivergence reports whether err is a numerical divergence error.
func IsDivergence(err error) bool {
	return errors.Is(err, ErrDivergence)
}
