// SPDX-License-Identifier: MIT

// Package gio reads and writes the documents the conformity tools exchange:
//
//   - node-link graph documents (JSON or YAML) into a *core.Graph,
//   - hierarchy files mapping label → value → rank,
//   - score mappings alpha → profile → node → score.
//
// A node-link document lists nodes by "id". Every other scalar key of a node,
// and every key of an optional nested "attrs" object, becomes an attribute;
// numbers and booleans are stored as their literal text. Edges are read
// from "links" or "edges" as {"source": .., "target": ..} pairs.
//
//	{
//	  "directed": false,
//	  "nodes": [{"id": "a", "club": "Mr. Hi"}, {"id": "b", "attrs": {"club": "Officer"}}],
//	  "links": [{"source": "a", "target": "b"}]
//	}
//
// Directed documents are rejected. Repeated edges collapse into one and
// self-loops are kept.
package gio
