package gio

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/conformity/core"
)

// Reserved node keys.
const (
	keyID    = "id"
	keyAttrs = "attrs"
)

type graphDoc struct {
	Directed bool             `json:"directed" yaml:"directed"`
	Nodes    []map[string]any `json:"nodes" yaml:"nodes"`
	Links    []linkDoc        `json:"links" yaml:"links"`
	Edges    []linkDoc        `json:"edges" yaml:"edges"`
}

type linkDoc struct {
	Source any `json:"source" yaml:"source"`
	Target any `json:"target" yaml:"target"`
}

// ReadGraph decodes a node-link document into a new graph.
//
// Errors:
//   - ErrUnknownFormat for an unsupported format.
//   - ErrDirectedGraph if the document is directed.
//   - ErrMalformedDocument for missing or repeated node IDs, non-scalar
//     attribute values, or edges touching undeclared nodes.
func ReadGraph(r io.Reader, f Format) (*core.Graph, error) {
	var doc graphDoc
	if err := decode(r, f, &doc); err != nil {
		return nil, err
	}
	if doc.Directed {
		return nil, ErrDirectedGraph
	}

	g := core.NewGraph(core.WithLoops())
	for i, node := range doc.Nodes {
		id, attrs, err := nodeOf(node)
		if err != nil {
			return nil, fmt.Errorf("%w: node #%d: %v", ErrMalformedDocument, i, err)
		}
		if g.HasVertex(id) {
			return nil, fmt.Errorf("%w: node %q declared twice", ErrMalformedDocument, id)
		}
		if err = g.AddVertexWithAttributes(id, attrs); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrMalformedDocument, id, err)
		}
	}

	links := append(doc.Links, doc.Edges...)
	for i, l := range links {
		from, okF := scalar(l.Source)
		to, okT := scalar(l.Target)
		if !okF || !okT {
			return nil, fmt.Errorf("%w: edge #%d: source and target must be scalars", ErrMalformedDocument, i)
		}
		if !g.HasVertex(from) || !g.HasVertex(to) {
			return nil, fmt.Errorf("%w: edge %s-%s touches an undeclared node", ErrMalformedDocument, from, to)
		}
		if _, err := g.AddEdge(from, to); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return nil, fmt.Errorf("%w: edge %s-%s: %v", ErrMalformedDocument, from, to, err)
		}
	}

	return g, nil
}

// nodeOf splits a decoded node object into its ID and attributes.
func nodeOf(node map[string]any) (string, core.Attributes, error) {
	raw, ok := node[keyID]
	if !ok {
		return "", nil, errors.New(`missing "id"`)
	}
	id, ok := scalar(raw)
	if !ok || id == "" {
		return "", nil, fmt.Errorf("id %v is not a non-empty scalar", raw)
	}

	attrs := make(core.Attributes, len(node))
	for k, v := range node {
		switch k {
		case keyID:
			continue
		case keyAttrs:
			nested, ok := stringKeyed(v)
			if !ok {
				return "", nil, fmt.Errorf(`"attrs" of %q is not an object`, id)
			}
			for nk, nv := range nested {
				s, ok := scalar(nv)
				if !ok {
					return "", nil, fmt.Errorf("attribute %q of %q is not a scalar", nk, id)
				}
				attrs[nk] = s
			}
		default:
			s, ok := scalar(v)
			if !ok {
				return "", nil, fmt.Errorf("attribute %q of %q is not a scalar", k, id)
			}
			attrs[k] = s
		}
	}

	return id, attrs, nil
}

type nodeOut struct {
	ID    string            `json:"id" yaml:"id"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

type linkOut struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

type graphOut struct {
	Directed bool      `json:"directed" yaml:"directed"`
	Nodes    []nodeOut `json:"nodes" yaml:"nodes"`
	Links    []linkOut `json:"links" yaml:"links"`
}

// WriteGraph encodes g as a node-link document that ReadGraph accepts.
// Nodes appear in sorted order with attributes nested under "attrs";
// links follow edge creation order.
func WriteGraph(w io.Writer, g *core.Graph, f Format) error {
	out := graphOut{Nodes: []nodeOut{}, Links: []linkOut{}}
	for _, id := range g.Vertices() {
		attrs, err := g.Attributes(id)
		if err != nil {
			return fmt.Errorf("gio: node %q: %w", id, err)
		}
		out.Nodes = append(out.Nodes, nodeOut{ID: id, Attrs: attrs})
	}
	for _, e := range g.Edges() {
		out.Links = append(out.Links, linkOut{Source: e.From, Target: e.To})
	}

	return encode(w, f, out)
}
