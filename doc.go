// Package procrust estimates the best orthogonal similarity transform
// between two square matrices and scores the residual similarity —
// Procrustes analysis over vector fields, done by gradient descent on
// the orthogonal manifold.
//
// 🚀 What is procrust?
//
//	Given two n×n matrices A and B (dynamics operators, connectivity
//	matrices, covariance structures, ...), procrust searches for the
//	orthogonal matrix C minimizing ‖A − C·B·Cᵗ‖², then reports how
//	similar the two systems are under the optimal alignment:
//	  • structural orthogonality — C is parameterized through a
//	    skew-symmetric intermediate and the Cayley transform, so every
//	    gradient step lands back on the manifold
//	  • adaptive first-order optimization (Adam) with a fixed budget
//	  • angular or euclidean similarity scores
//
// ✨ Why choose procrust?
//
//   - Minimal API — New, Fit, Score, FitScore; clear, intuitive naming
//   - Deterministic — identity start plus a fixed-seed perturbation,
//     no time-based randomness anywhere
//   - Strict sentinels — every failure mode is an errors.Is-checkable value
//   - Built on gonum — dense linear algebra, no hand-rolled numerics
//
// Everything is organized under three subpackages:
//
//	ortho/   — skew-symmetrizer, Cayley map, orthogonal parameter wrapper
//	optim/   — Adam and SGD over dense matrices
//	simdist/ — fitting, scoring and the Transform session object
//
// Quick taste:
//
//	t, _ := simdist.New(simdist.WithIters(500))
//	score, err := t.FitScore(a, b)
//
// Dive into README.md and each package's doc.go for contracts,
// complexity notes and worked examples.
//
//	go get github.com/katalvlaran/procrust
package procrust
