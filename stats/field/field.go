package field

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds summary statistics of a field.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	StdDev   float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Peak     float64 // max(|max|, |min|)
	Energy   float64 // sum of squares
	Variance float64
}

// Calculate computes the statistics in a single pass. Mean and variance use
// Welford's update.
func Calculate(data []float64) Stats {
	n := len(data)
	if n == 0 {
		return Stats{}
	}

	var (
		mean   float64
		m2     float64
		maxVal = data[0]
		maxPos int
		minVal = data[0]
		minPos int
	)
	for i, x := range data {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	energy := vecmath.DotProduct(data, data)
	variance := m2 / float64(n)
	return Stats{
		Length:   n,
		Mean:     mean,
		RMS:      math.Sqrt(energy / float64(n)),
		StdDev:   math.Sqrt(variance),
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Peak:     vecmath.MaxAbs(data),
		Energy:   energy,
		Variance: variance,
	}
}

// Fraction returns the share of samples greater than or equal to threshold.
// It returns 0 for an empty field.
func Fraction(data []float64, threshold float64) float64 {
	if len(data) == 0 {
		return 0
	}
	count := 0
	for _, x := range data {
		if x >= threshold {
			count++
		}
	}
	return float64(count) / float64(len(data))
}

// Correlation returns the normalized zero-lag cross-correlation
// <a,b>/(|a||b|) over the common length of a and b. A zero-energy operand
// yields 0.
func Correlation(a, b []float64) float64 {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	ea := vecmath.DotProduct(a, a)
	eb := vecmath.DotProduct(b, b)
	if ea == 0 || eb == 0 {
		return 0
	}
	return vecmath.DotProduct(a, b) / math.Sqrt(ea*eb)
}
