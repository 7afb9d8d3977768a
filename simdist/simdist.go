// SPDX-License-Identifier: MIT

package simdist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrust/optim"
	"github.com/katalvlaran/procrust/ortho"
)

// Transform is a fitting/scoring session for one pair of square matrices at
// a time. It carries the configured defaults plus the fitted state: the
// optimized orthogonal matrix C and the per-iteration loss trajectory of
// the most recent Fit. Both are overwritten by every subsequent Fit and
// consumed by Score until then.
//
// Not safe for concurrent use without external synchronization.
type Transform struct {
	opts   Options
	c      *mat.Dense
	losses []float64
}

// New builds a Transform with the given options applied over the documented
// defaults. Invalid values fail fast with ErrBadOption.
func New(opts ...Option) (*Transform, error) {
	o, err := gatherOptions(defaultOptions(), opts...)
	if err != nil {
		return nil, err
	}

	return &Transform{opts: o}, nil
}

// Fit computes the orthogonal matrix C minimizing the elementwise
// mean-squared error between a and C·b·Cᵗ and stores it on the Transform.
//
// a and b must be square matrices of identical size; both are copied, so
// callers may reuse them freely afterwards. Per-call options (WithIters,
// WithRate, ...) override the session defaults for this call only.
//
// The optimization runs a fixed budget of Adam steps on the unconstrained
// raw state behind an ortho.Parameter — each iteration computes the current
// C, the transformed C·b·Cᵗ, the MSE loss and its gradient, pulls the
// gradient back through the Cayley∘Skew reparameterization, and applies one
// optimizer step. There is no convergence check and no early stopping; a
// failure mid-loop aborts the fit with no partial state stored.
//
// Complexity: O(iters·n³) time, O(n²) memory.
func (t *Transform) Fit(a, b mat.Matrix, opts ...Option) error {
	o, err := gatherOptions(t.opts, opts...)
	if err != nil {
		return err
	}
	n, err := checkPair(a, b)
	if err != nil {
		return err
	}
	if o.checkFinite {
		if err = checkFinite(a); err != nil {
			return err
		}
		if err = checkFinite(b); err != nil {
			return err
		}
	}

	A := mat.DenseCopyOf(a)
	B := mat.DenseCopyOf(b)

	param, err := ortho.NewParameter(n)
	if err != nil {
		return err
	}
	param.Jitter(o.jitter, o.seed)
	opt := optim.NewAdam(optim.AdamConfig{Rate: o.rate})

	// Scratch, reused across the whole loop.
	var (
		transformed = mat.NewDense(n, n, nil) // C·B·Cᵗ
		resid       = mat.NewDense(n, n, nil) // C·B·Cᵗ − A
		gradP       = mat.NewDense(n, n, nil) // ∂loss/∂(C·B·Cᵗ)
		gradC       = mat.NewDense(n, n, nil) // ∂loss/∂C
		gradRaw     = mat.NewDense(n, n, nil) // ∂loss/∂raw
		t1          = mat.NewDense(n, n, nil)
		t2          = mat.NewDense(n, n, nil)
	)
	invN2 := 1 / float64(n*n)
	losses := make([]float64, 0, o.iters)

	for i := 0; i < o.iters; i++ {
		c, verr := param.Value()
		if verr != nil {
			return verr
		}
		if aerr := param.Apply(transformed, B); aerr != nil {
			return aerr
		}
		resid.Sub(transformed, A)
		frob := mat.Norm(resid, 2)
		loss := frob * frob * invN2

		// ∂loss/∂C = gradP·C·Bᵗ + gradPᵗ·C·B with gradP = (2/n²)·resid.
		gradP.Scale(2*invN2, resid)
		t1.Mul(gradP, c)
		gradC.Mul(t1, B.T())
		t1.Mul(gradP.T(), c)
		t2.Mul(t1, B)
		gradC.Add(gradC, t2)

		if berr := param.Backward(gradRaw, gradC); berr != nil {
			return berr
		}
		opt.Step(param.Raw(), gradRaw)

		losses = append(losses, loss)
		o.logger.Trace().Int("iter", i).Float64("loss", loss).Msg("fit iteration")
	}

	// The final optimizer step moved the raw state; derive C once more so
	// the stored result reflects it.
	c, err := param.Value()
	if err != nil {
		return err
	}
	t.c = mat.DenseCopyOf(c)
	t.losses = losses
	o.logger.Info().
		Int("iters", o.iters).
		Float64("rate", o.rate).
		Float64("final_loss", losses[len(losses)-1]).
		Msg("finished optimizing similarity transform")

	return nil
}

// Score evaluates the similarity of a and b under the fitted transform.
//
// Preconditions: a prior successful Fit (ErrNotFitted otherwise), and a and
// b square with the fitted C's size (ErrNonSquare / ErrDimensionMismatch).
// The computation is a pure evaluation — no gradients, no state mutation —
// so repeated calls with equal arguments return identical values.
//
// Metrics (override per call with WithMethod):
//
//	Angular:   arccos( trace(A·C·Bᵗ·Cᵗ) / (‖A‖_F·‖B‖_F) ), clamped ratio
//	Euclidean: ‖A − C·B·Cᵗ‖_F
func (t *Transform) Score(a, b mat.Matrix, opts ...Option) (float64, error) {
	o, err := gatherOptions(t.opts, opts...)
	if err != nil {
		return 0, err
	}
	if t.c == nil {
		return 0, ErrNotFitted
	}
	n, err := checkPair(a, b)
	if err != nil {
		return 0, err
	}
	if cn, _ := t.c.Dims(); n != cn {
		return 0, fmt.Errorf("simdist: inputs are %d×%d, fitted transform is %d×%d: %w",
			n, n, cn, cn, ErrDimensionMismatch)
	}
	if o.checkFinite {
		if err = checkFinite(a); err != nil {
			return 0, err
		}
		if err = checkFinite(b); err != nil {
			return 0, err
		}
	}

	A := mat.DenseCopyOf(a)
	B := mat.DenseCopyOf(b)
	t1 := mat.NewDense(n, n, nil)
	t2 := mat.NewDense(n, n, nil)

	switch o.method {
	case Euclidean:
		t1.Mul(t.c, B)
		t2.Mul(t1, t.c.T())
		t1.Sub(A, t2)

		return mat.Norm(t1, 2), nil
	default: // Angular
		t1.Mul(A, t.c)
		t2.Mul(t1, B.T())
		t1.Mul(t2, t.c.T())
		num := mat.Trace(t1)
		den := mat.Norm(A, 2) * mat.Norm(B, 2)
		if den == 0 {
			return 0, fmt.Errorf("simdist: angular score undefined for zero-norm input: %w", ErrNaNInf)
		}
		// Clamp against floating-point rounding near identical or
		// antipodal inputs; arccos is only defined on [-1, 1].
		ratio := num / den
		if ratio > 1 {
			ratio = 1
		} else if ratio < -1 {
			ratio = -1
		}

		return math.Acos(ratio), nil
	}
}

// FitScore runs Fit and then Score on the same pair with the same resolved
// options, returning the score. Pure composition — it exists because the
// two steps are almost always needed together.
func (t *Transform) FitScore(a, b mat.Matrix, opts ...Option) (float64, error) {
	if err := t.Fit(a, b, opts...); err != nil {
		return 0, err
	}

	return t.Score(a, b, opts...)
}

// Matrix returns a copy of the fitted orthogonal matrix C, detached from
// any further optimization. ErrNotFitted before the first successful Fit.
func (t *Transform) Matrix() (*mat.Dense, error) {
	if t.c == nil {
		return nil, ErrNotFitted
	}

	return mat.DenseCopyOf(t.c), nil
}

// Losses returns a copy of the per-iteration loss trajectory of the most
// recent Fit, in iteration order. Nil before the first successful Fit.
func (t *Transform) Losses() []float64 {
	if t.losses == nil {
		return nil
	}
	out := make([]float64, len(t.losses))
	copy(out, t.losses)

	return out
}
