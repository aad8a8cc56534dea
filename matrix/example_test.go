package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/nearest/matrix"
)

// ExamplePairwiseEuclidean builds a 2×2 distance matrix and reduces it to
// the nearest reference row per query.
func ExamplePairwiseEuclidean() {
	queries, _ := matrix.NewDenseFromRows([][]float64{{0, 0}, {6, 8}})
	refs, _ := matrix.NewDenseFromRows([][]float64{{3, 4}, {6, 8}})

	d, err := matrix.PairwiseEuclidean(queries, refs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	idx, minima, _ := matrix.ArgMinRows(d)
	fmt.Print(d)
	fmt.Println(idx, minima)
	// Output:
	// [5, 10]
	// [5, 0]
	// [0 1] [5 0]
}
