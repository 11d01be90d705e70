// Package snr scores a separation against a known clean reference.
//
// The signal-to-noise ratio of an estimate is
//
//	SNR = 10 log10(|clean|² / |clean - estimate|²)
//
// in dB. A perfect estimate scores +Inf. The package is used for reporting
// on synthetic data only; it plays no part in the separation itself.
package snr
