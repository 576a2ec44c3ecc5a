package conformity

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// ProfileSeparator joins profile labels into a profile key.
const ProfileSeparator = "_"

// Profile is an ordered, non-empty subset of the configured labels.
type Profile []string

// Key joins the labels with ProfileSeparator, e.g. "club_role".
func (p Profile) Key() string { return strings.Join(p, ProfileSeparator) }

// Profiles enumerates every combination of labels of size 1..size: all
// singletons first, then pairs, and so on, each size in lexicographic index
// order. For labels [A B C] and size 2 that is A, B, C, A_B, A_C, B_C.
//
// Errors: ErrInvalidProfileSize when size is outside 1..len(labels);
// ErrInvalidParameter when two profiles would share a key, which happens
// when labels contain ProfileSeparator.
func Profiles(labels []string, size int) ([]Profile, error) {
	if size < 1 || size > len(labels) {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidProfileSize, size, len(labels))
	}

	var out []Profile
	seen := make(map[string]bool)
	for k := 1; k <= size; k++ {
		for _, idx := range combin.Combinations(len(labels), k) {
			p := make(Profile, k)
			for i, j := range idx {
				p[i] = labels[j]
			}
			key := p.Key()
			if seen[key] {
				return nil, fmt.Errorf("%w: profile key %q is ambiguous; labels must not contain %q",
					ErrInvalidParameter, key, ProfileSeparator)
			}
			seen[key] = true
			out = append(out, p)
		}
	}

	return out, nil
}

// AlphaKey renders alpha as a result key: the shortest decimal that round
// trips, with ".0" appended to integral values (1 → "1.0", 1.25 → "1.25").
// Magnitudes below 1e-4 or from 1e16 up switch to exponent form with a
// signed two-digit exponent (1e-05 → "1e-05", 1e16 → "1e+16").
func AlphaKey(alpha float64) string {
	e := strconv.FormatFloat(alpha, 'e', -1, 64)
	if exp, err := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:]); err == nil && (exp < -4 || exp >= 16) {
		return e
	}

	s := strconv.FormatFloat(alpha, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
