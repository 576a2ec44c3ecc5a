package gio

import "errors"

var (
	// ErrUnknownFormat is returned for a format other than json or yaml.
	ErrUnknownFormat = errors.New("gio: unknown document format")

	// ErrDirectedGraph is returned for documents that declare directed: true.
	ErrDirectedGraph = errors.New("gio: directed graphs are not supported")

	// ErrMalformedDocument wraps every structural problem in a document.
	ErrMalformedDocument = errors.New("gio: malformed document")
)
