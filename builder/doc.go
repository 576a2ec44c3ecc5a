// Package builder provides deterministic, functional-options constructors for
// attributed test and benchmark graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   create a core.Graph and run constructors in order.
//     – Apply:        run constructors against an existing graph.
//   - Configuration primitives:
//     – BuilderOption: WithIDScheme, WithSeed, WithRand, WithCenterID.
//     – IDFn schemes:  DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), SymbolNumberIDFn(prefix).
//   - Topologies:
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//     – KarateClub: Zachary's 34-member network labelled with "club".
//   - Attribute assigners:
//     – Assign, AssignConst, AssignCycle, AssignRandom.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph and attributes.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors (errors.Is) and never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Path(5),
//		builder.AssignCycle("color", "red", "blue"),
//		builder.AssignRandom("shape", "circle", "square"),
//	)
package builder
