package simdist_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrust/simdist"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTransform_FitScore
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A = diag(1,-1) and B = diag(-1,1) describe the same dynamics up to a
//	90° rotation of the coordinate frame. Fitting recovers an orthogonal C
//	with C·B·Cᵗ ≈ A, so the euclidean residual collapses.
//
// Options:
//   - WithIters(1000)  — longer budget than the default 200 for a tight fit
//   - WithMethod(Euclidean) — report the Frobenius residual norm
//
// Use case:
//
//	Comparing two linear systems whose state bases differ by an unknown
//	orthogonal change of coordinates.
//
// Complexity: O(iters·n³) time, O(n²) memory.
func ExampleTransform_FitScore() {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, -1})
	b := mat.NewDense(2, 2, []float64{-1, 0, 0, 1})

	t, err := simdist.New(simdist.WithIters(1000), simdist.WithMethod(simdist.Euclidean))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	score, err := t.FitScore(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("aligned: %t\n", score < 0.25)
	// Output:
	// aligned: true
}

// ExampleTransform_Score shows fitting once and scoring under both metrics.
func ExampleTransform_Score() {
	a := mat.NewDense(3, 3, []float64{
		0.9, 0.1, 0.0,
		-0.1, 0.8, 0.2,
		0.0, -0.2, 0.7,
	})

	t, err := simdist.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	// A compared against itself: the best alignment leaves it unchanged.
	if err = t.Fit(a, a); err != nil {
		fmt.Println("error:", err)

		return
	}
	angular, err := t.Score(a, a)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	euclidean, err := t.Score(a, a, simdist.WithMethod(simdist.Euclidean))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("angular near zero: %t\neuclidean near zero: %t\n", angular < 0.2, euclidean < 0.2)
	// Output:
	// angular near zero: true
	// euclidean near zero: true
}
