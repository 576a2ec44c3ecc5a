package conformity

import (
	"fmt"
	"math"
)

// normalize validates c and returns a copy with duplicate alphas removed
// (first occurrence wins). Graph-independent checks only.
func (c Config) normalize() (Config, error) {
	if c.ProfileSize < 1 || c.ProfileSize > len(c.Labels) {
		return Config{}, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidProfileSize, c.ProfileSize, len(c.Labels))
	}
	if len(c.Alphas) == 0 {
		return Config{}, fmt.Errorf("%w: at least one alpha is required", ErrInvalidParameter)
	}
	if len(c.Labels) == 0 {
		return Config{}, fmt.Errorf("%w: at least one label is required", ErrInvalidParameter)
	}

	out := Config{ProfileSize: c.ProfileSize, Hierarchies: c.Hierarchies}
	seenLabel := make(map[string]bool, len(c.Labels))
	for _, l := range c.Labels {
		if l == "" {
			return Config{}, fmt.Errorf("%w: empty label", ErrInvalidParameter)
		}
		if seenLabel[l] {
			return Config{}, fmt.Errorf("%w: duplicate label %q", ErrInvalidParameter, l)
		}
		seenLabel[l] = true
		out.Labels = append(out.Labels, l)
	}

	seenAlpha := make(map[float64]bool, len(c.Alphas))
	for _, a := range c.Alphas {
		if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
			return Config{}, fmt.Errorf("%w: alpha %v must be finite and > 0", ErrInvalidParameter, a)
		}
		if seenAlpha[a] {
			continue
		}
		seenAlpha[a] = true
		out.Alphas = append(out.Alphas, a)
	}

	if err := c.Hierarchies.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}
