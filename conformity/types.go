package conformity

// GraphView is the read-only graph capability set the engine consumes.
//
// Implementations must be safe for concurrent readers: Compute calls
// ShortestPathLengths from several workers at once.
type GraphView interface {
	// Nodes returns every node ID exactly once.
	Nodes() []string
	// Neighbors returns the IDs adjacent to v.
	Neighbors(v string) ([]string, error)
	// Attribute returns v's categorical value for label, or an error matching
	// ErrMissingAttribute when v has none.
	Attribute(v, label string) (string, error)
	// IsConnected reports whether the graph is a single connected component.
	IsConnected() (bool, error)
	// ShortestPathLengths returns the unweighted hop distance from source to
	// every node reachable from it, source included at 0.
	ShortestPathLengths(source string) (map[string]int, error)
}

// Config holds the parameters of one conformity run.
type Config struct {
	// Alphas are the damping exponents; each must be finite and > 0.
	// Duplicates collapse to their first occurrence.
	Alphas []float64
	// Labels are the attribute labels profiles are drawn from, in order.
	Labels []string
	// ProfileSize is the largest profile size, 1 ≤ ProfileSize ≤ len(Labels).
	ProfileSize int
	// Hierarchies optionally rank the values of some labels.
	Hierarchies Hierarchies
}

// Hierarchy ranks the values of one label.
type Hierarchy map[string]int

// Hierarchies maps a label to its value ranking.
type Hierarchies map[string]Hierarchy
