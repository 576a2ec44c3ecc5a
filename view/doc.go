// Package view adapts concrete graph stores to the read-only capability set
// the conformity engine consumes: node listing, neighbor lookup, attribute
// access, connectivity and unweighted shortest-path lengths.
//
// Two adapters are provided:
//
//   - Core wraps a *core.Graph and answers traversal queries with package bfs.
//   - Gonum wraps any gonum graph.Undirected plus a per-node attribute table,
//     using traverse.BreadthFirst and topo.ConnectedComponents.
//
// Both adapters are safe for concurrent readers as long as the underlying
// graph is not mutated during a run.
//
// LargestComponent trims a disconnected core graph to its largest connected
// component, which is the usual way to make real-world data admissible.
package view
