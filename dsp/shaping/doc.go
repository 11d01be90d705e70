// Package shaping solves regularized linear inverse problems by shaping
// regularization.
//
// Instead of adding a penalty term to the objective, every gradient is passed
// through a smoothing (shaping) operator S, so the model estimate x = S p
// stays in the range of S. The [Solver] runs conjugate gradients on the
// preconditioned variable p, minimizing
//
//	|L S p - d|² + λ (|p|² - |S p|²)
//
// for a forward operator L and damping λ > 0. With a symmetric smoother
// whose norm is at most one the system is positive definite, so every
// iteration lowers this objective.
//
// # Local division
//
// [Divide] is the workhorse of local attribute estimation: it finds a smooth
// field w with w·den ≈ num, i.e. the regularized ratio num/den. L is the
// diagonal [Weight] operator built from den, S is a triangle smoother:
//
//	w, err := shaping.Divide(num, den, []int{20, 20},
//		shaping.WithSolverOptions(shaping.WithIterations(20)),
//	)
//
// # Failures
//
// Invalid settings are reported before any computation with errors wrapping
// core.ErrConfiguration. Non-finite values during the iteration abort the
// solve with a [*DivergenceError] wrapping core.ErrDivergence; no partial
// field is returned.
package shaping
