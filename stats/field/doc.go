// Package field computes summary statistics of sample fields such as
// sections, weights and similarity maps.
//
// All functions treat their input as a flat sample list; the shape of the
// grid it came from does not matter.
package field
