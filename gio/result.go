package gio

import (
	"io"

	"github.com/katalvlaran/conformity/conformity"
)

// WriteResult encodes the alphaKey → profileKey → node → score mapping of res.
// Map keys are emitted in sorted order by both encoders.
func WriteResult(w io.Writer, res *conformity.Result, f Format) error {
	return encode(w, f, res.Map())
}

// ReadResult decodes a mapping written by WriteResult.
func ReadResult(r io.Reader, f Format) (map[string]map[string]map[string]float64, error) {
	var out map[string]map[string]map[string]float64
	if err := decode(r, f, &out); err != nil {
		return nil, err
	}

	return out, nil
}
