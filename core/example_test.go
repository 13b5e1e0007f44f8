// Package core_test provides runnable examples for the Graph primitive.
// Each example is executable via "go test -run Example", showing both the
// code and its expected output.
package core_test

import (
	"fmt"

	"github.com/velory/grafo/core"
)

// ExampleNew builds a small undirected social graph and inspects it.
func ExampleNew() {
	g := core.New[string]()
	_ = g.AddEdge("ann", "bob")
	_ = g.AddEdge("bob", "cid")

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("ann-bob:", g.HasEdge("ann", "bob"))
	fmt.Println("bob-ann:", g.HasEdge("bob", "ann"))
	fmt.Println("bob adjacent:", g.Adjacent("bob"))
	// Output:
	// vertices: 3
	// ann-bob: true
	// bob-ann: true
	// bob adjacent: [ann cid]
}

// ExampleNewWeighted shows weighted arcs and the diagnostic dump. The
// dump is a pure formatting function: printing it is the caller's choice.
func ExampleNewWeighted() {
	g := core.NewWeighted[string]()
	_ = g.AddEdge("depot", "north", core.WithWeight(4.5))
	_ = g.AddEdge("depot", "south") // defaults to weight 1

	fmt.Print(g)
	// Output:
	// Vertex depot -> north(weight: 4.5) south(weight: 1)
	// Vertex north ->
	// Vertex south ->
}

// ExampleGraph_RemoveVertex demonstrates the cascade: removing a vertex
// strips every reference to it from the rest of the graph.
func ExampleGraph_RemoveVertex() {
	g := core.New[int]()
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(1, 3)

	g.RemoveVertex(2)

	fmt.Print(g)
	// Output:
	// Vertex 1 -> 3
	// Vertex 3 -> 1
}
