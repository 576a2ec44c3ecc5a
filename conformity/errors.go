package conformity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/conformity/core"
)

// Sentinel errors. Branch with errors.Is; returned errors carry context.
var (
	// ErrNilGraph is returned when Compute is given a nil GraphView.
	ErrNilGraph = errors.New("conformity: nil graph view")

	// ErrDisconnectedGraph indicates the graph has more than one connected component.
	ErrDisconnectedGraph = errors.New("conformity: graph is not connected")

	// ErrInvalidParameter indicates empty or malformed alphas, labels or options.
	ErrInvalidParameter = errors.New("conformity: invalid parameter")

	// ErrInvalidProfileSize indicates ProfileSize < 1 or ProfileSize > len(Labels),
	// which includes an empty label list. It matches ErrInvalidParameter.
	ErrInvalidProfileSize = fmt.Errorf("%w: invalid profile size", ErrInvalidParameter)

	// ErrEmptyGraph indicates a graph without nodes. It matches ErrInvalidParameter.
	ErrEmptyGraph = fmt.Errorf("%w: graph has no nodes", ErrInvalidParameter)

	// ErrInvalidHierarchy indicates a hierarchy with fewer than two distinct
	// ranks or a rank spread wider than its size allows. It matches ErrInvalidParameter.
	ErrInvalidHierarchy = fmt.Errorf("%w: invalid hierarchy", ErrInvalidParameter)

	// ErrUnrankedValue indicates a value of a hierarchical label that the
	// label's hierarchy does not rank.
	ErrUnrankedValue = errors.New("conformity: value not ranked by hierarchy")

	// ErrDegenerateGraph indicates a node without neighbors in a graph of more
	// than one node; its adjacency factor would divide by zero.
	ErrDegenerateGraph = errors.New("conformity: node has no neighbors")

	// ErrInconsistentView indicates a GraphView whose answers contradict each
	// other, e.g. a neighbor or distance entry that is not one of Nodes().
	ErrInconsistentView = errors.New("conformity: inconsistent graph view")

	// ErrMissingAttribute indicates a node lacks a configured label.
	// It is the same sentinel as core.ErrMissingAttribute.
	ErrMissingAttribute = core.ErrMissingAttribute
)

// MissingAttributeError names the node and label of a missing attribute.
type MissingAttributeError = core.MissingAttributeError
