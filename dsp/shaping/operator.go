package shaping

import "github.com/cwbudde/algo-vecmath"

// Operator is a linear operator together with its adjoint. dst and src have
// the operator's model and data lengths; implementations must not retain
// either slice.
type Operator interface {
	Forward(dst, src []float64)
	Adjoint(dst, src []float64)
}

// Sized is implemented by operators bound to a fixed vector length. The
// solver rejects a Sized operator whose length differs from the data.
type Sized interface {
	Len() int
}

// Weight is the diagonal operator dst[i] = w[i] * src[i]. It is self-adjoint.
type Weight []float64

// Len returns the number of weights.
func (w Weight) Len() int { return len(w) }

// Forward applies the weights.
func (w Weight) Forward(dst, src []float64) {
	vecmath.MulBlock(dst, w, src)
}

// Adjoint applies the weights; a diagonal operator is its own adjoint.
func (w Weight) Adjoint(dst, src []float64) {
	vecmath.MulBlock(dst, w, src)
}

// Identity is the operator dst = src.
type Identity struct{}

// Forward copies src into dst.
func (Identity) Forward(dst, src []float64) { copy(dst, src) }

// Adjoint copies src into dst.
func (Identity) Adjoint(dst, src []float64) { copy(dst, src) }
