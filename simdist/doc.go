// Package simdist fits and scores the best orthogonal similarity transform
// between two square matrices: given n×n inputs A and B, it searches the
// orthogonal group for the C minimizing ‖A − C·B·Cᵗ‖² and reports the
// residual similarity under an angular or euclidean metric.
//
// 🚀 How it works
//
//	The transform C is never optimized directly. A Transform session runs
//	gradient descent (Adam) on an unconstrained raw matrix that is pushed
//	through skew-symmetrization and the Cayley map on every read, so each
//	iterate is orthogonal by construction (see package ortho). The loss is
//	the elementwise mean-squared error between A and C·B·Cᵗ; the gradient
//	is pulled back through the reparameterization by hand.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/procrust/simdist"
//
//	t, err := simdist.New(
//	  simdist.WithIters(500),             // optimization budget
//	  simdist.WithRate(0.01),             // Adam learning rate
//	  simdist.WithMethod(simdist.Angular) // similarity metric
//	)
//	if err != nil { ... }
//
//	score, err := t.FitScore(a, b)        // fit C, then score it
//
// Fit stores the optimized C and the per-iteration loss trajectory on the
// Transform; Score reuses them until the next Fit overwrites them. Both
// steps validate shapes before touching the optimizer and fail with the
// package sentinels (ErrNonSquare, ErrDimensionMismatch, ErrNotFitted, ...).
//
// Determinism:
//
//	The orthogonal parameter starts at the identity plus a tiny fixed-seed
//	perturbation, and the loop is strictly sequential, so repeated runs on
//	the same inputs produce identical results. There is no convergence
//	check and no early stopping — the full iteration budget always runs.
//
// Performance:
//
//   - Time:   O(iters · n³) — each iteration is a handful of dense
//     multiplies plus one LU solve
//   - Memory: O(n²), scratch reused across iterations
//
// A Transform is not safe for concurrent use: Fit mutates the stored C and
// loss log. Wrap calls in external synchronization if sharing one instance.
package simdist
