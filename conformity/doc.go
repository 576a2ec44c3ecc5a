// Package conformity computes attribute-profile conformity scores over an
// undirected, connected, attributed graph.
//
// For every node u, every profile (a non-empty subset of the configured
// categorical labels, up to ProfileSize labels) and every damping exponent
// alpha, the score measures how closely the profile values of nodes at hop
// distance d agree with u's own values, weighted by d^-alpha and normalised
// into [-1, 1]:
//
//	score(u) = Σ_d sim(u, class_d) · d^-α  /  Σ_d d^-α     (d = 1..ecc(u))
//
// sim(u, class_d) multiplies, over the labels of the profile, the mean of
// ind(v)·factor(v) across the distance class. ind is 1 on equal values and
// otherwise the label's Distance (graded through a Hierarchy, else -1);
// factor is the node's local same-value neighbor fraction, clamped to 1
// when no neighbor agrees.
//
// The engine is expressed against GraphView, so any graph store can be
// scored (see package view for core and gonum adapters). Nodes are scored
// independently on a bounded worker pool; each worker writes only to its own
// node's cells, so no locking is needed on the result.
//
// Example:
//
//	res, err := conformity.Compute(ctx, view.NewCore(g), conformity.Config{
//		Alphas:      []float64{1, 2},
//		Labels:      []string{"club", "role"},
//		ProfileSize: 2,
//	}, conformity.WithWorkers(8))
//	score, ok := res.Score("1.0", "club_role", "33")
package conformity
