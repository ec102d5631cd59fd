// Package core_test provides runnable examples for building and
// querying graphs. Each example runs via “go test -run Example”.
package core_test

import (
	"fmt"

	"github.com/kastelov/eigenrank/core"
)

// ExampleNewGraph demonstrates building a small weighted graph and
// reading its deterministic vertex ordering and weights.
func ExampleNewGraph() {
	// 1) Create a weighted, undirected graph.
	g := core.NewGraph(core.WithWeighted())
	// 2) Add two edges; endpoints are created on demand.
	g.AddEdge("A", "B", 1.5)
	g.AddEdge("B", "C", 2.0)

	// 3) Vertices are always reported in sorted order.
	fmt.Println("vertices:", g.Vertices())

	// 4) Weight lookup is symmetric on undirected graphs.
	w, _ := g.EdgeWeight("C", "B")
	fmt.Println("w(C,B) =", w)
	// Output:
	// vertices: [A B C]
	// w(C,B) = 2
}

// ExampleGraph_ConnectedComponents shows the direction-blind component
// partition, singletons included.
func ExampleGraph_ConnectedComponents() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("C", "D", 0)
	g.AddVertex("Z")

	for _, comp := range g.ConnectedComponents() {
		fmt.Println(comp)
	}
	// Output:
	// [A B]
	// [C D]
	// [Z]
}
