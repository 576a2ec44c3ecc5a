package view

import "errors"

var (
	// ErrNilGraph is returned when an adapter wraps no graph.
	ErrNilGraph = errors.New("view: nil graph")

	// ErrUnknownNode is returned for node names the adapter cannot resolve.
	ErrUnknownNode = errors.New("view: unknown node")

	// ErrSelfLoop is returned when converting a looped core graph to gonum's
	// simple graphs, which cannot represent self edges.
	ErrSelfLoop = errors.New("view: self-loop not representable")

	// ErrDuplicateName is returned when two gonum nodes resolve to the same
	// name, which would hide one of them from the view.
	ErrDuplicateName = errors.New("view: duplicate node name")
)
