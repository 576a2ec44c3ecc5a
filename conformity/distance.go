package conformity

import "fmt"

// Distance compares two values of label.
//
// Equal values yield 1. Distinct values of a label with a hierarchy yield
// -|rank(v1)-rank(v2)| / (len(hierarchy)-1), which lies in [-1, 0) for a valid
// hierarchy. Distinct values of any other label yield -1.
//
// Errors: ErrUnrankedValue when the hierarchy lacks v1 or v2;
// ErrInvalidHierarchy when it has fewer than two entries.
func Distance(label, v1, v2 string, h Hierarchies) (float64, error) {
	if v1 == v2 {
		return 1, nil
	}
	ranks, ok := h[label]
	if !ok {
		return -1, nil
	}
	if len(ranks) < 2 {
		return 0, fmt.Errorf("%w: label %q has %d ranked values", ErrInvalidHierarchy, label, len(ranks))
	}
	r1, ok1 := ranks[v1]
	r2, ok2 := ranks[v2]
	switch {
	case !ok1:
		return 0, fmt.Errorf("%w: label %q value %q", ErrUnrankedValue, label, v1)
	case !ok2:
		return 0, fmt.Errorf("%w: label %q value %q", ErrUnrankedValue, label, v2)
	}

	return rankDistance(r1, r2, len(ranks)), nil
}

// rankDistance is the graded distance between two ranks of a hierarchy with
// size entries.
func rankDistance(r1, r2, size int) float64 {
	d := r1 - r2
	if d < 0 {
		d = -d
	}

	return -float64(d) / float64(size-1)
}

// Validate checks that h has at least two distinct ranks and that no two
// ranks are further apart than len(h)-1, which keeps Distance within [-1, 0).
func (h Hierarchy) Validate() error {
	if len(h) < 2 {
		return fmt.Errorf("%w: %d ranked values, need at least 2", ErrInvalidHierarchy, len(h))
	}
	first := true
	var lo, hi int
	for _, r := range h {
		if first {
			lo, hi, first = r, r, false
			continue
		}
		lo, hi = min(lo, r), max(hi, r)
	}
	if lo == hi {
		return fmt.Errorf("%w: all values share rank %d", ErrInvalidHierarchy, lo)
	}
	if hi-lo > len(h)-1 {
		return fmt.Errorf("%w: rank spread %d exceeds %d", ErrInvalidHierarchy, hi-lo, len(h)-1)
	}

	return nil
}

// Validate validates every hierarchy, naming the offending label.
func (hs Hierarchies) Validate() error {
	for label, h := range hs {
		if label == "" {
			return fmt.Errorf("%w: hierarchy for empty label", ErrInvalidHierarchy)
		}
		if err := h.Validate(); err != nil {
			return fmt.Errorf("label %q: %w", label, err)
		}
	}

	return nil
}
