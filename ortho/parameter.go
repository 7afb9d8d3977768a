package ortho

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// jitterStream is the second word of the PCG seed used by Jitter; the
// caller-supplied seed is the first. Keeping the stream constant makes a
// given (seed, scale, n) triple fully reproducible.
const jitterStream = 0x9e3779b97f4a7c15

// Parameter is a learnable n×n matrix constrained to be orthogonal through
// the composition Cayley ∘ Skew applied to an unconstrained raw state.
//
// The raw state starts at the identity (whose skew part is zero, so the
// initial value is exactly I). Optimizers mutate the raw state in place via
// Raw; every subsequent Value re-derives a valid orthogonal matrix, which
// is the structural-orthogonality mechanism: the constraint can never be
// violated by a gradient step.
//
// A Parameter is not safe for concurrent use.
type Parameter struct {
	n     int
	raw   *mat.Dense // unconstrained optimization variable
	skew  *mat.Dense // cached raw − rawᵗ from the last Value
	value *mat.Dense // cached C from the last Value

	// scratch reused across iterations
	lhs, rhs *mat.Dense // I − S and I + S (rhs doubles as the backward LHS)
	ict      *mat.Dense // I + Cᵗ
	tmp      *mat.Dense
	gs       *mat.Dense

	forward bool // Value has run at least once
}

// NewParameter allocates a Parameter of dimension n with its raw state set
// to the identity. Returns ErrBadDimension for n <= 0.
func NewParameter(n int) (*Parameter, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ortho: parameter size %d: %w", n, ErrBadDimension)
	}
	p := &Parameter{
		n:     n,
		raw:   mat.NewDense(n, n, nil),
		skew:  mat.NewDense(n, n, nil),
		value: mat.NewDense(n, n, nil),
		lhs:   mat.NewDense(n, n, nil),
		rhs:   mat.NewDense(n, n, nil),
		ict:   mat.NewDense(n, n, nil),
		tmp:   mat.NewDense(n, n, nil),
		gs:    mat.NewDense(n, n, nil),
	}
	for i := 0; i < n; i++ {
		p.raw.Set(i, i, 1)
	}

	return p, nil
}

// Dim reports the parameter dimension n.
func (p *Parameter) Dim() int { return p.n }

// Raw exposes the unconstrained state for in-place optimizer updates.
// Mutating it invalidates nothing structurally — the next Value simply
// re-derives C — but Backward always refers to the most recent Value.
func (p *Parameter) Raw() *mat.Dense { return p.raw }

// Jitter adds N(0, scale²) noise from a fixed-seed PCG stream to every
// entry of the raw state. An exact-identity start is a stationary point of
// the reconstruction loss whenever the residual commutes with the target
// (e.g. both inputs diagonal); a tiny deterministic perturbation keeps such
// saddles escapable without sacrificing reproducibility.
func (p *Parameter) Jitter(scale float64, seed uint64) {
	if scale == 0 {
		return
	}
	rng := rand.New(rand.NewPCG(seed, jitterStream))
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			p.raw.Set(i, j, p.raw.At(i, j)+scale*rng.NormFloat64())
		}
	}
}

// Value computes the current orthogonal matrix C = Cayley(Skew(raw)).
//
// The returned matrix is owned by the Parameter and stays valid until the
// next Value call; callers needing to retain it past that point must copy.
// The skew intermediate and C are cached for the following Backward.
func (p *Parameter) Value() (*mat.Dense, error) {
	if err := Skew(p.skew, p.raw); err != nil {
		return nil, err
	}
	if err := cayleyInto(p.value, p.skew, p.lhs, p.rhs); err != nil {
		return nil, err
	}
	p.forward = true

	return p.value, nil
}

// Apply writes the similarity transform dst = C·b·Cᵗ using the C cached by
// the most recent Value. Value must have run first (ErrNoForward), and b
// and dst must both be n×n (ErrDimensionMismatch).
func (p *Parameter) Apply(dst *mat.Dense, b mat.Matrix) error {
	if !p.forward {
		return ErrNoForward
	}
	br, bc := b.Dims()
	if br != p.n || bc != p.n {
		return ErrDimensionMismatch
	}
	if dr, dc := dst.Dims(); dr != p.n || dc != p.n {
		return ErrDimensionMismatch
	}
	p.tmp.Mul(p.value, b)
	dst.Mul(p.tmp, p.value.T())

	return nil
}

// Backward pulls gradC — the gradient of a scalar loss w.r.t. the current
// value C — back through the Cayley map and the skew-symmetrizer to the raw
// state, writing the result into dst:
//
//	G_S   = (I + S)⁻¹ · gradC · (I + Cᵗ)
//	G_raw = G_S − G_Sᵗ
//
// using the S and C cached by the most recent Value. This is the manual
// chain-rule composition for the reparameterization; feeding G_raw to an
// optimizer step on Raw reproduces what an autodiff framework would do.
//
// The identity (I − S)ᵗ = I + S for skew-symmetric S lets the backward
// solve reuse the forward's right factor as its left-hand side.
func (p *Parameter) Backward(dst, gradC *mat.Dense) error {
	if !p.forward {
		return ErrNoForward
	}
	if gr, gc := gradC.Dims(); gr != p.n || gc != p.n {
		return ErrDimensionMismatch
	}
	if dr, dc := dst.Dims(); dr != p.n || dc != p.n {
		return ErrDimensionMismatch
	}
	for i := 0; i < p.n; i++ {
		for j := 0; j < p.n; j++ {
			v := p.value.At(j, i)
			if i == j {
				v++
			}
			p.ict.Set(i, j, v)
		}
	}
	p.tmp.Mul(gradC, p.ict)
	if err := p.gs.Solve(p.rhs, p.tmp); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return fmt.Errorf("ortho: backward solve (%v): %w", err, ErrSolveFailed)
		}
	}

	return Skew(dst, p.gs)
}
