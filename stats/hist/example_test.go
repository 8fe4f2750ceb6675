package hist_test

import (
	"fmt"

	"github.com/cwbudde/algo-astro/stats/hist"
)

func ExampleLinear() {
	edges, _ := hist.Linear(4, 0, 2)
	fmt.Println(edges)

	// Output:
	// [0 0.5 1 1.5 2]
}

func ExampleCount() {
	edges := hist.Edges{0, 1, 2, 3}

	counts, _ := hist.Count([]float64{0.5, 1.5, 1.7, 3}, edges)
	fmt.Println(counts)

	// Output:
	// [1 2 1]
}
