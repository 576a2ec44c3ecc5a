package conformity

import "fmt"

// FactorPolicy decides which adjacency factor weights a label's comparisons.
//
// A node's factor for a label is the fraction of its neighbors sharing its
// value for that label, clamped to 1 when the fraction is 0.
type FactorPolicy int

const (
	// FactorLastLabel weights every label with the factor of the last
	// configured label. This is the default.
	FactorLastLabel FactorPolicy = iota
	// FactorPerLabel weights each label with the node's factor for that label.
	FactorPerLabel
	// FactorMean weights every label with the mean factor across all labels.
	FactorMean
)

var policyNames = [...]string{
	FactorLastLabel: "last-label",
	FactorPerLabel:  "per-label",
	FactorMean:      "mean",
}

func (p FactorPolicy) valid() bool { return p >= FactorLastLabel && p <= FactorMean }

// String returns the policy name used by ParseFactorPolicy.
func (p FactorPolicy) String() string {
	if !p.valid() {
		return fmt.Sprintf("FactorPolicy(%d)", int(p))
	}

	return policyNames[p]
}

// ParseFactorPolicy parses "last-label", "per-label" or "mean".
func ParseFactorPolicy(s string) (FactorPolicy, error) {
	for p, name := range policyNames {
		if s == name {
			return FactorPolicy(p), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown factor policy %q", ErrInvalidParameter, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p FactorPolicy) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("%w: unknown factor policy %d", ErrInvalidParameter, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FactorPolicy) UnmarshalText(b []byte) error {
	v, err := ParseFactorPolicy(string(b))
	if err != nil {
		return err
	}
	*p = v

	return nil
}
