// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/matrix"
)

// ExampleBuildIncidence orients the edges of a 4-cycle by score and prints the
// signed incidence matrix.
func ExampleBuildIncidence() {
	adj := mat.NewDense(4, 4, []float64{
		0, 1, 1, 0,
		1, 0, 0, 1,
		1, 0, 0, 1,
		0, 1, 1, 0,
	})
	inc, err := matrix.BuildIncidence(adj, []float64{3, 1, 0, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for e := 0; e < inc.EdgeCount(); e++ {
		low, high, _ := inc.Edge(e)
		fmt.Printf("edge %d: %d -> %d\n", e, low, high)
	}
	fmt.Println("degrees:", inc.GramDiag())

	// Output:
	// edge 0: 1 -> 0
	// edge 1: 2 -> 0
	// edge 2: 1 -> 3
	// edge 3: 2 -> 3
	// degrees: [2 2 2 2]
}
