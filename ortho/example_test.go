package ortho_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/procrust/ortho"
)

// ExampleCayley maps a skew-symmetric matrix onto the orthogonal group: the
// skew generator [[0,-1],[1,0]] lands on the 90° rotation, and the output
// satisfies the structural guarantee CᵗC = I.
func ExampleCayley() {
	s := mat.NewDense(2, 2, []float64{
		0, -1,
		1, 0,
	})
	c := mat.NewDense(2, 2, nil)
	if err := ortho.Cayley(c, s); err != nil {
		fmt.Println("error:", err)

		return
	}

	rotation := mat.NewDense(2, 2, []float64{
		0, -1,
		1, 0,
	})
	var gram mat.Dense
	gram.Mul(c.T(), c)
	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	fmt.Printf("C is the 90° rotation: %t\n", mat.EqualApprox(c, rotation, 1e-12))
	fmt.Printf("CᵗC = I: %t\n", mat.EqualApprox(&gram, identity, 1e-12))
	// Output:
	// C is the 90° rotation: true
	// CᵗC = I: true
}
