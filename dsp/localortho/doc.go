// Package localortho separates a signal estimate and its companion noise
// estimate into locally orthogonal components, and measures local similarity
// between two sections.
//
// A coarse denoising step (f-x deconvolution, rank reduction, band-pass
// filtering, ...) splits recorded data into an estimated signal d and an
// estimated noise n = data - d. Any signal damaged by that step leaks into n.
// [Orthogonalize] estimates a smooth weight field w with w·d ≈ n by shaping
// regularization and moves the leaked energy back:
//
//	d' = d + w·d
//	n' = n - w·d
//
// The pair is rebalanced, never created or destroyed: d' + n' = d + n at
// every sample.
//
// [Similarity] computes a local similarity map in [0, 1] from two local
// division solves with the roles of the inputs swapped, merged by a symmetric
// [Combinator]. A low similarity between d' and n' indicates successful
// orthogonalization.
//
// # Usage
//
//	res, err := localortho.Orthogonalize(d1, noi1, []int{20, 20, 1},
//		localortho.WithIterations(20),
//		localortho.WithTolerance(0),
//	)
//	simi, err := localortho.Similarity(res.Signal, res.Noise, []int{5, 5, 1})
//
// Verbose diagnostics are emitted through a zerolog logger supplied with
// [WithLogger]; the default logger discards everything.
package localortho
