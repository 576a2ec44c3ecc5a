package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/conformity/bfs"
	"github.com/katalvlaran/conformity/builder"
	"github.com/katalvlaran/conformity/core"
)

// ExampleBFSResult_Layers groups a 3×3 grid into distance classes from a
// corner. Each layer is one anti-diagonal.
func ExampleBFSResult_Layers() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for d, layer := range res.Layers() {
		fmt.Println(d, layer)
	}
	fmt.Println("eccentricity:", res.Eccentricity())
	// Output:
	// 0 [0,0]
	// 1 [0,1 1,0]
	// 2 [0,2 1,1 2,0]
	// 3 [1,2 2,1]
	// 4 [2,2]
	// eccentricity: 4
}

// ExampleBFSResult_PathTo finds the fewest-hop route when two compete:
// A-B-C-D-K has four hops, A-E-F-K three.
func ExampleBFSResult_PathTo() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
		{"A", "E"}, {"E", "F"}, {"F", "K"},
		{"C", "G"}, {"D", "I"},
	} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleComponents splits a graph into its connected parts, ordered by
// their smallest vertex ID.
func ExampleComponents() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"x", "y"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	_ = g.AddVertex("solo")

	comps, err := bfs.Components(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(comps)
	connected, _ := bfs.IsConnected(g)
	fmt.Println("connected:", connected)
	// Output:
	// [[a b c] [solo] [x y]]
	// connected: false
}

// ExampleBFS_maxDepth stops a walk along a path after two hops.
func ExampleBFS_maxDepth() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(10))

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [A B C]
}

// ExampleBFS_hooksAndCancellation cancels a walk from its visit hook once
// depth 4 is reached; the hooks show how far it got.
func ExampleBFS_hooksAndCancellation() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(7))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enq, vis []string
	_, err := bfs.BFS(g, "0",
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, fmt.Sprintf("%s@%d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error {
			vis = append(vis, fmt.Sprintf("%s@%d", id, d))
			if d == 4 {
				cancel()
			}
			return nil
		}),
	)

	fmt.Println("error:", err)
	fmt.Println("enqueued:", enq)
	fmt.Println("visited: ", vis)
	// Output:
	// error: context canceled
	// enqueued: [0@0 1@1 2@2 3@3 4@4]
	// visited:  [0@0 1@1 2@2 3@3 4@4]
}
