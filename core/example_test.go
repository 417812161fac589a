package core_test

import (
	"fmt"

	"github.com/katalvlaran/geodesiclab/core"
)

// ExampleGraph_AddEdge builds the edge graph of a single triangle.
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 0, 1.5)

	nb, _ := g.Neighbors(0)
	fmt.Println(g.Order(), g.Size(), len(nb))
	// Output: 3 3 2
}
