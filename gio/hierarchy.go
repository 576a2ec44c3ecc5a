package gio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/conformity/conformity"
)

// ReadHierarchies decodes a label → hierarchy document. Each hierarchy is
// either an explicit value → rank mapping or a list of values from the
// lowest rank up:
//
//	level: {low: 0, mid: 1, high: 2}
//	size: [small, medium, large]
//
// The result is validated with conformity.Hierarchies.Validate.
func ReadHierarchies(r io.Reader, f Format) (conformity.Hierarchies, error) {
	var doc map[string]any
	if err := decode(r, f, &doc); err != nil {
		return nil, err
	}

	out := make(conformity.Hierarchies, len(doc))
	for label, raw := range doc {
		h, err := hierarchyOf(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: hierarchy %q: %v", ErrMalformedDocument, label, err)
		}
		out[label] = h
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

func hierarchyOf(raw any) (conformity.Hierarchy, error) {
	if m, ok := stringKeyed(raw); ok {
		h := make(conformity.Hierarchy, len(m))
		for v, r := range m {
			rank, ok := integer(r)
			if !ok {
				return nil, fmt.Errorf("rank of %q is not an integer", v)
			}
			h[v] = rank
		}
		return h, nil
	}

	switch x := raw.(type) {
	case []any:
		h := make(conformity.Hierarchy, len(x))
		for i, item := range x {
			v, ok := scalar(item)
			if !ok {
				return nil, fmt.Errorf("entry #%d is not a scalar", i)
			}
			if _, dup := h[v]; dup {
				return nil, fmt.Errorf("value %q listed twice", v)
			}
			h[v] = i
		}
		return h, nil
	}

	return nil, fmt.Errorf("expected a mapping or a list, got %T", raw)
}

// WriteHierarchies encodes h as explicit value → rank mappings.
func WriteHierarchies(w io.Writer, h conformity.Hierarchies, f Format) error {
	return encode(w, f, h)
}
