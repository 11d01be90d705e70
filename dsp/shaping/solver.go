package shaping

import (
	"fmt"

	"github.com/cwbudde/algo-localortho/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Solver runs shaping-regularized conjugate gradients. A Solver holds only
// its configuration and may be shared between goroutines.
type Solver struct {
	cfg Config
}

// NewSolver validates the options and returns a solver.
func NewSolver(opts ...Option) (*Solver, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg}, nil
}

// Config returns the solver settings.
func (s *Solver) Config() Config { return s.cfg }

// state holds the iteration vectors of one solve.
type state struct {
	p, x, r    []float64 // shaped model, model, residual L x - d
	gp, gx, gr []float64 // gradient and its images
	sp, sx, sr []float64 // conjugate direction and its images
	tmp        []float64
}

func newState(n int) *state {
	buf := make([]float64, 10*n)
	next := func() []float64 {
		v := buf[:n:n]
		buf = buf[n:]
		return v
	}
	return &state{
		p: next(), x: next(), r: next(),
		gp: next(), gx: next(), gr: next(),
		sp: next(), sx: next(), sr: next(),
		tmp: next(),
	}
}

// axpy computes dst += a*src using tmp as scratch.
func axpy(dst, tmp, src []float64, a float64) {
	vecmath.ScaleBlock(tmp, src, a)
	vecmath.AddBlockInPlace(dst, tmp)
}

// Solve estimates x = S p from data d for the forward operator L and the
// shaping operator S. Both operators act on vectors of len(data) samples;
// S must be symmetric with norm at most one. Operators implementing [Sized]
// are checked against len(data) before the first iteration. The returned
// slice is newly allocated; data is not modified.
func (s *Solver) Solve(L, S Operator, data []float64) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrOperandSize)
	}
	for _, op := range []struct {
		name string
		op   Operator
	}{{"forward", L}, {"shaping", S}} {
		if sz, ok := op.op.(Sized); ok && sz.Len() != n {
			return nil, fmt.Errorf("%w: %s operator has length %d, data %d", ErrOperandSize, op.name, sz.Len(), n)
		}
	}

	lambda := s.cfg.Damping
	st := newState(n)
	vecmath.ScaleBlock(st.r, data, -1)

	var g0, gnPrev float64
	for iter := 1; iter <= s.cfg.Iterations; iter++ {
		// gx = Lᵀr - λx, gp = Sᵀgx + λp
		L.Adjoint(st.gx, st.r)
		axpy(st.gx, st.tmp, st.x, -lambda)
		S.Adjoint(st.gp, st.gx)
		axpy(st.gp, st.tmp, st.p, lambda)

		// images of the gradient in model and data space
		S.Forward(st.gx, st.gp)
		L.Forward(st.gr, st.gx)

		gn := vecmath.DotProduct(st.gp, st.gp)
		if !core.IsFinite(gn) {
			return nil, &DivergenceError{Solve: s.cfg.Label, Iteration: iter, Value: gn}
		}

		if iter == 1 {
			if gn == 0 {
				break
			}
			g0 = gn
			copy(st.sp, st.gp)
			copy(st.sx, st.gx)
			copy(st.sr, st.gr)
		} else {
			// Gradient vanished to round-off: all further updates are zero.
			if gn <= core.MachineEpsilon*g0 {
				break
			}
			if s.cfg.Tolerance > 0 && (gn/gnPrev < s.cfg.Tolerance || gn/g0 < s.cfg.Tolerance) {
				break
			}

			beta := 0.0
			if gnPrev > core.MachineEpsilon*g0 {
				beta = gn / gnPrev
			}
			vecmath.ScaleBlockInPlace(st.sp, beta)
			vecmath.AddBlockInPlace(st.sp, st.gp)
			vecmath.ScaleBlockInPlace(st.sx, beta)
			vecmath.AddBlockInPlace(st.sx, st.gx)
			vecmath.ScaleBlockInPlace(st.sr, beta)
			vecmath.AddBlockInPlace(st.sr, st.gr)
		}

		curv := vecmath.DotProduct(st.sr, st.sr) +
			lambda*(vecmath.DotProduct(st.sp, st.sp)-vecmath.DotProduct(st.sx, st.sx))
		if !core.IsFinite(curv) {
			return nil, &DivergenceError{Solve: s.cfg.Label, Iteration: iter, Value: curv}
		}
		// Curvature at round-off level: the step would be meaningless.
		if curv <= core.MachineEpsilon*gn {
			break
		}

		step := -gn / curv
		axpy(st.p, st.tmp, st.sp, step)
		axpy(st.x, st.tmp, st.sx, step)
		axpy(st.r, st.tmp, st.sr, step)

		rr := vecmath.DotProduct(st.r, st.r)
		if !core.IsFinite(rr) {
			return nil, &DivergenceError{Solve: s.cfg.Label, Iteration: iter, Value: rr}
		}
		gnPrev = gn

		if s.cfg.Observer != nil {
			pp := vecmath.DotProduct(st.p, st.p)
			xx := vecmath.DotProduct(st.x, st.x)
			s.cfg.Observer(Iteration{
				Solve:     s.cfg.Label,
				Index:     iter,
				Residual:  rr / float64(n),
				Objective: (rr + lambda*(pp-xx)) / float64(n),
				Gradient:  gn / g0,
			})
		}
	}

	out := make([]float64, n)
	copy(out, st.x)
	return out, nil
}
