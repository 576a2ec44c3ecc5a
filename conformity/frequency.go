package conformity

import "fmt"

// ValueFrequencies returns, for each label, the share of nodes holding each
// value. Shares of one label sum to 1. Scoring does not use them; they
// describe how balanced the labels are.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrMissingAttribute.
func ValueFrequencies(g GraphView, labels []string) (map[string]map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	out := make(map[string]map[string]float64, len(labels))
	for _, label := range labels {
		counts := make(map[string]int)
		for _, n := range nodes {
			v, err := g.Attribute(n, label)
			if err != nil {
				return nil, fmt.Errorf("conformity: %w", err)
			}
			counts[v]++
		}
		freq := make(map[string]float64, len(counts))
		for v, c := range counts {
			freq[v] = float64(c) / float64(len(nodes))
		}
		out[label] = freq
	}

	return out, nil
}
