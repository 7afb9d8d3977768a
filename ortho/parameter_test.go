package ortho_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrust/ortho"
)

// TestNewParameter_BadDimension rejects non-positive sizes.
func TestNewParameter_BadDimension(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := ortho.NewParameter(n)
		assert.ErrorIs(t, err, ortho.ErrBadDimension, "n=%d", n)
	}
}

// TestParameter_IdentityStart: the raw identity start maps to C = I exactly
// (its skew part is zero, and Cayley(0) = I).
func TestParameter_IdentityStart(t *testing.T) {
	p, err := ortho.NewParameter(4)
	require.NoError(t, err)

	c, err := p.Value()
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, c.At(i, j), 1e-14, "entry (%d,%d)", i, j)
		}
	}
}

// TestParameter_StructuralOrthogonality: no matter how the raw state is
// mutated, every value read back is orthogonal.
func TestParameter_StructuralOrthogonality(t *testing.T) {
	p, err := ortho.NewParameter(5)
	require.NoError(t, err)
	p.Jitter(0.8, 7)
	p.Raw().Set(2, 4, 3.5) // arbitrary direct mutation

	c, err := p.Value()
	require.NoError(t, err)
	assert.Less(t, orthoResidual(c), 1e-10, "orthogonality must hold structurally")
}

// TestParameter_JitterDeterministic: equal seeds produce equal raw states,
// different seeds do not.
func TestParameter_JitterDeterministic(t *testing.T) {
	mk := func(seed uint64) *mat.Dense {
		p, err := ortho.NewParameter(3)
		require.NoError(t, err)
		p.Jitter(0.1, seed)

		return mat.DenseCopyOf(p.Raw())
	}

	assert.True(t, mat.Equal(mk(11), mk(11)), "same seed must reproduce the same jitter")
	assert.False(t, mat.Equal(mk(11), mk(12)), "different seeds must diverge")
}

// TestParameter_Apply verifies dst = C·B·Cᵗ against an explicit product.
func TestParameter_Apply(t *testing.T) {
	const n = 4
	p, err := ortho.NewParameter(n)
	require.NoError(t, err)
	p.Jitter(0.5, 3)

	c, err := p.Value()
	require.NoError(t, err)

	b := randomDense(n, 9)
	got := mat.NewDense(n, n, nil)
	require.NoError(t, p.Apply(got, b))

	var cb, want mat.Dense
	cb.Mul(c, b)
	want.Mul(&cb, c.T())
	assert.True(t, mat.EqualApprox(&want, got, 1e-12), "Apply must equal C·B·Cᵗ")
}

// TestParameter_ApplyBeforeValue requires a forward pass first.
func TestParameter_ApplyBeforeValue(t *testing.T) {
	p, err := ortho.NewParameter(3)
	require.NoError(t, err)

	dst := mat.NewDense(3, 3, nil)
	assert.ErrorIs(t, p.Apply(dst, mat.NewDense(3, 3, nil)), ortho.ErrNoForward)
}

// TestParameter_BackwardBeforeValue requires a forward pass first.
func TestParameter_BackwardBeforeValue(t *testing.T) {
	p, err := ortho.NewParameter(3)
	require.NoError(t, err)

	dst := mat.NewDense(3, 3, nil)
	assert.ErrorIs(t, p.Backward(dst, mat.NewDense(3, 3, nil)), ortho.ErrNoForward)
}

// TestParameter_BackwardShapeMismatch rejects wrongly sized gradients.
func TestParameter_BackwardShapeMismatch(t *testing.T) {
	p, err := ortho.NewParameter(3)
	require.NoError(t, err)
	_, err = p.Value()
	require.NoError(t, err)

	dst := mat.NewDense(3, 3, nil)
	assert.ErrorIs(t, p.Backward(dst, mat.NewDense(2, 2, nil)), ortho.ErrDimensionMismatch)
}

// reconstructionLoss evaluates ‖A − C·B·Cᵗ‖²_F / n² for the parameter's
// current raw state, running a fresh forward pass.
func reconstructionLoss(t *testing.T, p *ortho.Parameter, a, b *mat.Dense) float64 {
	t.Helper()
	n := p.Dim()
	_, err := p.Value()
	require.NoError(t, err)

	tr := mat.NewDense(n, n, nil)
	require.NoError(t, p.Apply(tr, b))

	var resid mat.Dense
	resid.Sub(tr, a)
	f := mat.Norm(&resid, 2)

	return f * f / float64(n*n)
}

// TestParameter_BackwardMatchesFiniteDifference is the load-bearing
// correctness check for the manual chain rule: the analytic gradient of the
// reconstruction loss w.r.t. the raw state must match central finite
// differences entry by entry.
func TestParameter_BackwardMatchesFiniteDifference(t *testing.T) {
	const (
		n = 3
		h = 1e-6
	)
	a := randomDense(n, 21)
	b := randomDense(n, 22)

	p, err := ortho.NewParameter(n)
	require.NoError(t, err)
	p.Jitter(0.3, 5)

	// Analytic gradient: forward, then ∂loss/∂C, then Backward.
	c, err := p.Value()
	require.NoError(t, err)
	tr := mat.NewDense(n, n, nil)
	require.NoError(t, p.Apply(tr, b))

	var resid, gradP, gradC, t1, t2 mat.Dense
	resid.Sub(tr, a)
	gradP.Scale(2/float64(n*n), &resid)
	t1.Mul(&gradP, c)
	gradC.Mul(&t1, b.T())
	t1.Mul(gradP.T(), c)
	t2.Mul(&t1, b)
	gradC.Add(&gradC, &t2)

	analytic := mat.NewDense(n, n, nil)
	require.NoError(t, p.Backward(analytic, &gradC))

	// Central finite differences over every raw entry.
	raw := p.Raw()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			orig := raw.At(i, j)

			raw.Set(i, j, orig+h)
			plus := reconstructionLoss(t, p, a, b)
			raw.Set(i, j, orig-h)
			minus := reconstructionLoss(t, p, a, b)
			raw.Set(i, j, orig)

			fd := (plus - minus) / (2 * h)
			assert.InDelta(t, fd, analytic.At(i, j), 1e-5, "gradient entry (%d,%d)", i, j)
		}
	}
}
