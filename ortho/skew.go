package ortho

import "gonum.org/v1/gonum/mat"

// Skew writes the skew-symmetric part of x into dst: dst = x − xᵗ.
//
// Contract:
//   - x must be square (ErrNotSquare otherwise).
//   - dst must be n×n (ErrDimensionMismatch otherwise).
//   - dst may alias x: each antisymmetric pair is read before either
//     entry is written.
//
// Pure function, no state. Used as the first parametrization stage of the
// orthogonal parameter; the map is linear, so its own backward pass is
// Skew itself applied to the incoming gradient.
//
// Complexity: O(n²) time, O(1) extra space.
func Skew(dst, x *mat.Dense) error {
	n, c := x.Dims()
	if n != c {
		return ErrNotSquare
	}
	if dr, dc := dst.Dims(); dr != n || dc != n {
		return ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		dst.Set(i, i, 0)
		for j := i + 1; j < n; j++ {
			d := x.At(i, j) - x.At(j, i)
			dst.Set(i, j, d)
			dst.Set(j, i, -d)
		}
	}

	return nil
}
