// Package conformity measures attribute-profile conformity on undirected,
// connected, attributed graphs.
//
// 🚀 What is conformity?
//
//	For a node u, an attribute profile (a set of labels) and a damping
//	exponent α, conformity compares u with every node at hop distance d,
//	weights each distance class by d^-α and normalises the sum. Scores lie
//	in [-1, 1]: 1 means everyone agrees with u on every label of the profile,
//	-1 means everyone disagrees.
//
// ✨ What is in the box?
//
//   - Core primitives: a thread-safe undirected graph with categorical attributes
//   - Traversals: BFS with distance layers, connected components
//   - Builders: path, cycle, star, complete, grid, random and Zachary's karate club
//   - Views: the conformity engine reads any GraphView, including gonum graphs
//   - Engine: parallel, cancellable, deterministic scoring with progress hooks
//   - Documents: node-link JSON/YAML graphs, hierarchy files, score mappings
//
// Under the hood, everything is organized under these packages:
//
//	core/          Graph, Vertex, Edge and Attributes under R/W locks
//	bfs/           breadth-first search, layers, components
//	builder/       deterministic fixture constructors and attribute assigners
//	view/          GraphView adapters over core.Graph and gonum graphs
//	conformity/    profiles, distances, adjacency factors and the scoring engine
//	gio/           graph, hierarchy and result documents
//	cmd/           the conformity command-line tool
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.KarateClub())
//	res, _ := conformity.Compute(ctx, view.NewCore(g), conformity.Config{
//		Alphas:      []float64{1, 2},
//		Labels:      []string{builder.ClubLabel},
//		ProfileSize: 1,
//	})
//	scores, _ := res.NodeScores("1.0", builder.ClubLabel)
//
//	go install github.com/katalvlaran/conformity/cmd/conformity@latest
package conformity
