package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/hypersurface/adjacency"
	"github.com/katalvlaran/hypersurface/skeleton"
)

// ExampleCache_ForEach sums neighbor values per point, the inner loop of a
// diffusion step.
func ExampleCache_ForEach() {
	m, _ := skeleton.New(2, 1, 1)
	cache := adjacency.New(m)

	values := make([]int, cache.Len())
	for i := range values {
		values[i] = i
	}
	cache.ForEach(func(i int, nbrs []int) {
		sum := 0
		for _, j := range nbrs {
			sum += values[j]
		}
		fmt.Println(cache.Coord(i), len(nbrs), sum)
	})

	// Output:
	// (-,-) 2 10
	// (+,-) 2 11
	// (-,+) 2 11
	// (+,+) 2 12
	// (0,-) 2 1
	// (0,+) 2 5
	// (-,0) 2 2
	// (+,0) 2 4
}
