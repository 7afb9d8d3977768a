// SPDX-License-Identifier: MIT
// Package simdist: input validators. All precondition checks run before any
// allocation or optimizer work, so a rejected call leaves no partial state.

package simdist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// squareDim returns the dimension of m if it is square, wrapping
// ErrNonSquare with the offending shape otherwise.
func squareDim(m mat.Matrix) (int, error) {
	r, c := m.Dims()
	if r != c {
		return 0, fmt.Errorf("simdist: got %d×%d: %w", r, c, ErrNonSquare)
	}

	return r, nil
}

// checkPair validates that a and b are both square and equal in size,
// returning the shared dimension.
func checkPair(a, b mat.Matrix) (int, error) {
	n, err := squareDim(a)
	if err != nil {
		return 0, err
	}
	m, err := squareDim(b)
	if err != nil {
		return 0, err
	}
	if n != m {
		return 0, fmt.Errorf("simdist: A is %d×%d, B is %d×%d: %w", n, n, m, m, ErrDimensionMismatch)
	}

	return n, nil
}

// checkFinite rejects NaN and ±Inf entries, wrapping ErrNaNInf with the
// first offending coordinate.
func checkFinite(m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("simdist: entry (%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}
