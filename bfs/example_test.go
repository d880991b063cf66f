package bfs_test

import (
	"fmt"

	"github.com/trophiclab/foodweb/bfs"
	"github.com/trophiclab/foodweb/core"
)

// ExampleBFS demonstrates downstream layering: every species a
// disturbance at phytoplankton can reach, in hop order.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("phytoplankton", "copepod")
	g.AddEdge("phytoplankton", "krill")
	g.AddEdge("copepod", "herring")
	g.AddEdge("krill", "herring")
	g.AddEdge("herring", "seal")

	res, err := bfs.BFS(g, "phytoplankton")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [phytoplankton copepod krill herring seal]
}

// ExampleBFS_upstream walks a predator's diet closure: everything that
// ultimately feeds the seal.
func ExampleBFS_upstream() {
	g := core.NewGraph()
	g.AddEdge("phytoplankton", "krill")
	g.AddEdge("krill", "herring")
	g.AddEdge("herring", "seal")
	g.AddEdge("algae", "snail") // disconnected pair

	res, err := bfs.BFS(g, "seal", bfs.WithDirection(bfs.Upstream))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [seal herring krill phytoplankton]
}

// ExampleBFSResult_PathTo reconstructs the shortest trophic route from
// a producer to an apex predator.
func ExampleBFSResult_PathTo() {
	g := core.NewGraph()
	g.AddEdge("grass", "hare")
	g.AddEdge("grass", "vole")
	g.AddEdge("hare", "fox")
	g.AddEdge("vole", "owl")
	g.AddEdge("fox", "eagle")
	g.AddEdge("owl", "eagle")

	res, err := bfs.BFS(g, "grass")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("eagle")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [grass hare fox eagle]
}
