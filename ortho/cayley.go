package ortho

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Cayley maps a skew-symmetric matrix s to an orthogonal matrix:
//
//	dst = (I + s)(I − s)⁻¹
//
// computed by solving the linear system (I − s)·Y = (I + s) rather than
// forming an explicit inverse. The two factors are polynomials in s and
// commute, so the solve order is equivalent to the product form.
//
// Contract:
//   - s must be square (ErrNotSquare otherwise).
//   - dst must be empty or n×n (ErrDimensionMismatch otherwise).
//   - for a truly skew-symmetric s the system is always invertible over
//     the reals (eigenvalues of s are purely imaginary, so I − s has
//     eigenvalues 1 − λ with nonzero real part).
//   - an ill-conditioned solve is tolerated with degraded precision;
//     a singular system wraps ErrSolveFailed.
//
// The output satisfies dstᵗ·dst = I up to floating-point roundoff.
//
// Complexity: O(n³) time (LU solve), O(n²) space.
func Cayley(dst, s *mat.Dense) error {
	n, c := s.Dims()
	if n != c {
		return ErrNotSquare
	}
	if !dst.IsEmpty() {
		if dr, dc := dst.Dims(); dr != n || dc != n {
			return ErrDimensionMismatch
		}
	}
	lhs := mat.NewDense(n, n, nil)
	rhs := mat.NewDense(n, n, nil)

	return cayleyInto(dst, s, lhs, rhs)
}

// cayleyInto is the scratch-reusing core of Cayley: lhs and rhs receive
// I − s and I + s, dst receives the solve result. All four matrices must
// be n×n; s is assumed square by the caller.
func cayleyInto(dst, s, lhs, rhs *mat.Dense) error {
	n, _ := s.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := s.At(i, j)
			if i == j {
				lhs.Set(i, j, 1-v)
				rhs.Set(i, j, 1+v)
			} else {
				lhs.Set(i, j, -v)
				rhs.Set(i, j, v)
			}
		}
	}
	if err := dst.Solve(lhs, rhs); err != nil {
		// gonum reports a near-singular system as a mat.Condition value
		// while still producing a usable solution; only a hard failure
		// is surfaced.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return fmt.Errorf("ortho: cayley solve (%v): %w", err, ErrSolveFailed)
		}
	}

	return nil
}
