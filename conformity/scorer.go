package conformity

import (
	"fmt"
	"sort"
)

// Scorer holds the read-only state shared by every per-node computation:
// an index-based snapshot of the graph's nodes, the configured labels'
// values and hierarchy ranks, and the adjacency factor of every node under
// the chosen FactorPolicy.
//
// Node indices follow sorted node order. A Scorer is immutable after
// NewScorer returns and safe for concurrent use.
type Scorer struct {
	nodes  []string
	index  map[string]int
	labels []string
	label  map[string]int

	values [][]string // [label][node]
	ranks  [][]int    // [label][node]; nil row for labels without hierarchy
	sizes  []int      // hierarchy size per label; 0 without hierarchy
	factor [][]float64
}

// NewScorer snapshots g for labels and computes adjacency factors.
//
// Every node must carry every label (ErrMissingAttribute) and every value of a
// hierarchical label must be ranked (ErrUnrankedValue), so these failures
// surface before any score is computed.
//
// Complexity: O(L·(V + E)) time, O(L·V) memory.
func NewScorer(g GraphView, labels []string, h Hierarchies, policy FactorPolicy) (*Scorer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: at least one label is required", ErrInvalidParameter)
	}
	if !policy.valid() {
		return nil, fmt.Errorf("%w: unknown factor policy %d", ErrInvalidParameter, int(policy))
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	nodes := append([]string(nil), g.Nodes()...)
	sort.Strings(nodes)
	s := &Scorer{
		nodes:  nodes,
		index:  make(map[string]int, len(nodes)),
		labels: append([]string(nil), labels...),
		label:  make(map[string]int, len(labels)),
		values: make([][]string, len(labels)),
		ranks:  make([][]int, len(labels)),
		sizes:  make([]int, len(labels)),
	}
	for i, n := range nodes {
		if _, dup := s.index[n]; dup {
			return nil, fmt.Errorf("%w: node %q listed twice", ErrInconsistentView, n)
		}
		s.index[n] = i
	}
	for l, label := range labels {
		s.label[label] = l
	}

	if err := s.snapshot(g, h); err != nil {
		return nil, err
	}
	raw, err := s.adjacencyFactors(g)
	if err != nil {
		return nil, err
	}
	s.factor = applyPolicy(raw, policy)

	return s, nil
}

// snapshot copies attribute values and hierarchy ranks.
func (s *Scorer) snapshot(g GraphView, h Hierarchies) error {
	for l, label := range s.labels {
		row := make([]string, len(s.nodes))
		for i, n := range s.nodes {
			v, err := g.Attribute(n, label)
			if err != nil {
				return fmt.Errorf("conformity: %w", err)
			}
			row[i] = v
		}
		s.values[l] = row

		hier, ok := h[label]
		if !ok {
			continue
		}
		ranks := make([]int, len(s.nodes))
		for i, v := range row {
			r, ok := hier[v]
			if !ok {
				return fmt.Errorf("%w: node %q label %q value %q", ErrUnrankedValue, s.nodes[i], label, v)
			}
			ranks[i] = r
		}
		s.ranks[l] = ranks
		s.sizes[l] = len(hier)
	}

	return nil
}

// adjacencyFactors returns, per label and node, the fraction of the node's
// neighbors sharing its value, clamped to 1 when that fraction is 0.
// A lone node has factor 1.
func (s *Scorer) adjacencyFactors(g GraphView) ([][]float64, error) {
	raw := make([][]float64, len(s.labels))
	for l := range raw {
		raw[l] = make([]float64, len(s.nodes))
	}

	nb := make([]int, 0)
	for i, n := range s.nodes {
		ids, err := g.Neighbors(n)
		if err != nil {
			return nil, fmt.Errorf("conformity: neighbors of %q: %w", n, err)
		}
		if len(ids) == 0 {
			if len(s.nodes) > 1 {
				return nil, fmt.Errorf("%w: %q", ErrDegenerateGraph, n)
			}
			for l := range raw {
				raw[l][i] = 1
			}
			continue
		}
		nb = nb[:0]
		for _, id := range ids {
			j, ok := s.index[id]
			if !ok {
				return nil, fmt.Errorf("%w: neighbor %q of %q is not a node", ErrInconsistentView, id, n)
			}
			nb = append(nb, j)
		}
		for l, row := range s.values {
			same := 0
			for _, j := range nb {
				if row[j] == row[i] {
					same++
				}
			}
			f := float64(same) / float64(len(nb))
			if f == 0 {
				f = 1
			}
			raw[l][i] = f
		}
	}

	return raw, nil
}

// applyPolicy resolves raw per-label factors into the factor weighting each label.
func applyPolicy(raw [][]float64, policy FactorPolicy) [][]float64 {
	out := make([][]float64, len(raw))
	switch policy {
	case FactorPerLabel:
		copy(out, raw)
	case FactorMean:
		mean := make([]float64, len(raw[0]))
		for i := range mean {
			var sum float64
			for l := range raw {
				sum += raw[l][i]
			}
			mean[i] = sum / float64(len(raw))
		}
		for l := range out {
			out[l] = mean
		}
	default:
		last := raw[len(raw)-1]
		for l := range out {
			out[l] = last
		}
	}

	return out
}

// Nodes returns the snapshot's node IDs in sorted order.
func (s *Scorer) Nodes() []string { return append([]string(nil), s.nodes...) }

// Factor returns the adjacency factor weighting label's comparisons
// against node, after the policy is applied.
func (s *Scorer) Factor(label, node string) (float64, error) {
	l, ok := s.label[label]
	if !ok {
		return 0, fmt.Errorf("%w: label %q not configured", ErrInvalidParameter, label)
	}
	i, ok := s.index[node]
	if !ok {
		return 0, fmt.Errorf("%w: unknown node %q", ErrInvalidParameter, node)
	}

	return s.factor[l][i], nil
}

// Score returns the similarity in [-1, 1] between u and the distance class
// for profile p: the product over p's labels of the mean of
// ind(v)·factor(v) over v in class.
func (s *Scorer) Score(u string, class []string, p Profile) (float64, error) {
	ui, ok := s.index[u]
	if !ok {
		return 0, fmt.Errorf("%w: unknown node %q", ErrInvalidParameter, u)
	}
	if len(class) == 0 {
		return 0, fmt.Errorf("%w: empty distance class", ErrInvalidParameter)
	}
	ci := make([]int, len(class))
	for k, v := range class {
		j, ok := s.index[v]
		if !ok {
			return 0, fmt.Errorf("%w: unknown node %q", ErrInvalidParameter, v)
		}
		ci[k] = j
	}
	pl, err := s.profileIndex(p)
	if err != nil {
		return 0, err
	}

	return s.score(ui, ci, pl), nil
}

// profileIndex maps profile labels to label indices.
func (s *Scorer) profileIndex(p Profile) ([]int, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty profile", ErrInvalidParameter)
	}
	out := make([]int, len(p))
	for k, label := range p {
		l, ok := s.label[label]
		if !ok {
			return nil, fmt.Errorf("%w: label %q not configured", ErrInvalidParameter, label)
		}
		out[k] = l
	}

	return out, nil
}

// score is Score over indices. class must be non-empty.
func (s *Scorer) score(u int, class []int, profile []int) float64 {
	sim := 1.0
	for _, l := range profile {
		row, factor := s.values[l], s.factor[l]
		au := row[u]
		var sum float64
		for _, v := range class {
			ind := 1.0
			if row[v] != au {
				ind = s.distance(l, u, v)
			}
			sum += ind * factor[v]
		}
		sim *= sum / float64(len(class))
	}

	return sim
}

// distance is Distance for two distinct values held by nodes u and v.
func (s *Scorer) distance(l, u, v int) float64 {
	ranks := s.ranks[l]
	if ranks == nil {
		return -1
	}

	return rankDistance(ranks[u], ranks[v], s.sizes[l])
}
