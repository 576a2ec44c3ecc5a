// File: attributes.go
// Role: Explicit categorical attribute mapping for vertices.
// Policy:
//   - Values are compared by exact string equality.
//   - Missing labels are an error (MissingAttributeError), never a zero value.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingAttribute is matched (errors.Is) by every MissingAttributeError.
var ErrMissingAttribute = errors.New("core: missing attribute")

// MissingAttributeError reports that a vertex carries no value for a label.
type MissingAttributeError struct {
	Vertex string
	Label  string
}

// Error implements error.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("core: vertex %q has no value for label %q", e.Vertex, e.Label)
}

// Is lets errors.Is(err, ErrMissingAttribute) match.
func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// Attributes maps attribute label to categorical value.
type Attributes map[string]string

// Get returns the value stored under label, or a *MissingAttributeError
// naming vertex when the label is absent.
// Complexity: O(1).
func (a Attributes) Get(vertex, label string) (string, error) {
	v, ok := a[label]
	if !ok {
		return "", &MissingAttributeError{Vertex: vertex, Label: label}
	}

	return v, nil
}

// Labels returns the labels present, sorted ascending.
func (a Attributes) Labels() []string {
	out := make([]string, 0, len(a))
	for k := range a {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy (nil stays nil).
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}
