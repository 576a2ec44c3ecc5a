// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodKarateClub is the canonical name for the KarateClub constructor.
	MethodKarateClub = "KarateClub"
	// MethodAssign is the canonical name for the attribute assigners.
	MethodAssign = "Assign"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertexID is the identifier for the hub vertex of Star.
const CenterVertexID = "Center"

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest size for a simple cycle.
const MinCycleNodes = 3

// MinPathNodes is the smallest size for a simple path (one edge).
const MinPathNodes = 2

// MinStarNodes is the smallest size for a star: a center plus one leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest size for K_n; K_1 is a lone vertex.
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for Grid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0
