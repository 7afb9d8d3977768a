// Package ortho provides the constrained-parameter machinery behind the
// similarity-transform fit: an unconstrained square matrix is pushed through
// two composed differentiable maps — skew-symmetrization, then the Cayley
// transform — so that every value read from the parameter is orthogonal by
// construction, never by penalty or projection.
//
// The two maps:
//
//	Skew:   X ↦ X − Xᵗ                 (skew-symmetric part)
//	Cayley: S ↦ (I + S)(I − S)⁻¹       (orthogonal, via a linear solve)
//
// For any skew-symmetric S the eigenvalues of S are purely imaginary, so
// I − S has eigenvalues 1 − λ with nonzero real part and the solve is
// well-posed over the reals. The composition therefore maps *any* raw state
// to a valid orthogonal matrix.
//
// Parameter holds the raw state and exposes the forward value, the
// similarity-transform application C·B·Cᵗ, and a manual backward pass that
// pulls a loss gradient w.r.t. C back to the raw state through both maps.
// Optimizers update the raw state in place; the derived C follows.
//
// Complexity: all operations are O(n³) (dense multiply / LU solve) with
// O(n²) memory, scratch buffers reused across iterations.
package ortho
