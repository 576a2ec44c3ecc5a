package conformity

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Result holds the scores of one run, indexed alpha → profile → node.
// It is immutable; accessors return copies.
type Result struct {
	alphas      []float64
	alphaKeys   []string
	profiles    []Profile
	profileKeys []string
	nodes       []string

	alphaIdx   map[string]int
	profileIdx map[string]int
	nodeIdx    map[string]int

	// scores[a][p][n] follows the order of alphas, profiles and nodes.
	scores [][][]float64
}

func newResult(alphas []float64, profiles []Profile, nodes []string) *Result {
	r := &Result{
		alphas:     alphas,
		alphaKeys:  make([]string, len(alphas)),
		profiles:   profiles,
		nodes:      nodes,
		alphaIdx:   make(map[string]int, len(alphas)),
		profileIdx: make(map[string]int, len(profiles)),
		nodeIdx:    make(map[string]int, len(nodes)),
		scores:     make([][][]float64, len(alphas)),
	}
	for a, alpha := range alphas {
		r.alphaKeys[a] = AlphaKey(alpha)
		r.alphaIdx[r.alphaKeys[a]] = a
		r.scores[a] = make([][]float64, len(profiles))
		for p := range profiles {
			r.scores[a][p] = make([]float64, len(nodes))
		}
	}
	r.profileKeys = make([]string, len(profiles))
	for p, prof := range profiles {
		r.profileKeys[p] = prof.Key()
		r.profileIdx[r.profileKeys[p]] = p
	}
	for i, n := range nodes {
		r.nodeIdx[n] = i
	}

	return r
}

// Alphas returns the damping exponents in configuration order, deduplicated.
func (r *Result) Alphas() []float64 { return append([]float64(nil), r.alphas...) }

// AlphaKeys returns the alpha keys (see AlphaKey) in configuration order.
func (r *Result) AlphaKeys() []string { return append([]string(nil), r.alphaKeys...) }

// Profiles returns the profiles in enumeration order.
func (r *Result) Profiles() []Profile {
	out := make([]Profile, len(r.profiles))
	for i, p := range r.profiles {
		out[i] = append(Profile(nil), p...)
	}

	return out
}

// ProfileKeys returns the profile keys in enumeration order.
func (r *Result) ProfileKeys() []string { return append([]string(nil), r.profileKeys...) }

// Nodes returns the scored node IDs, sorted.
func (r *Result) Nodes() []string { return append([]string(nil), r.nodes...) }

// Score returns the score of node for the given alpha key and profile key.
func (r *Result) Score(alphaKey, profileKey, node string) (float64, bool) {
	a, ok := r.alphaIdx[alphaKey]
	if !ok {
		return 0, false
	}
	p, ok := r.profileIdx[profileKey]
	if !ok {
		return 0, false
	}
	n, ok := r.nodeIdx[node]
	if !ok {
		return 0, false
	}

	return r.scores[a][p][n], true
}

// NodeScores returns node → score for one alpha key and profile key.
func (r *Result) NodeScores(alphaKey, profileKey string) (map[string]float64, bool) {
	a, ok := r.alphaIdx[alphaKey]
	if !ok {
		return nil, false
	}
	p, ok := r.profileIdx[profileKey]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(r.nodes))
	for i, n := range r.nodes {
		out[n] = r.scores[a][p][i]
	}

	return out, true
}

// Map returns the full alphaKey → profileKey → node → score mapping.
func (r *Result) Map() map[string]map[string]map[string]float64 {
	out := make(map[string]map[string]map[string]float64, len(r.alphaKeys))
	for _, ak := range r.alphaKeys {
		byProfile := make(map[string]map[string]float64, len(r.profileKeys))
		for _, pk := range r.profileKeys {
			byProfile[pk], _ = r.NodeScores(ak, pk)
		}
		out[ak] = byProfile
	}

	return out
}

// Summary describes the distribution of one profile's scores under one alpha.
type Summary struct {
	AlphaKey   string
	ProfileKey string
	Min, Max   float64
	Mean       float64
	Median     float64 // lower median
}

// Summaries returns one Summary per (alpha, profile) in result order.
func (r *Result) Summaries() []Summary {
	out := make([]Summary, 0, len(r.alphaKeys)*len(r.profileKeys))
	buf := make([]float64, len(r.nodes))
	for a, ak := range r.alphaKeys {
		for p, pk := range r.profileKeys {
			s := Summary{AlphaKey: ak, ProfileKey: pk}
			if len(buf) > 0 {
				copy(buf, r.scores[a][p])
				sort.Float64s(buf)
				s.Min, s.Max = buf[0], buf[len(buf)-1]
				s.Mean = stat.Mean(buf, nil)
				s.Median = stat.Quantile(0.5, stat.Empirical, buf, nil)
			}
			out = append(out, s)
		}
	}

	return out
}
