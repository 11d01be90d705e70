// Package bandsplit separates a section into an in-band and an out-of-band
// part along its first (time) axis.
//
// Each trace is transformed with a power-of-two FFT, multiplied by a
// zero-phase raised-cosine mask and transformed back. The out-of-band part
// is the exact remainder, so in+out reproduces the input sample for sample.
//
// A band split is a cheap single-channel separation. Its result typically
// leaks signal into the rejected part, which is what local orthogonalization
// in [github.com/cwbudde/algo-localortho/dsp/localortho] recovers.
package bandsplit
