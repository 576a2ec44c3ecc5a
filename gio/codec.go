package gio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// decode reads one document of format f from r into v. JSON numbers are kept
// as json.Number so integer IDs survive unchanged.
func decode(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		err = dec.Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return nil
}

// encode writes v to w in format f, indented by two spaces.
func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// scalar renders a decoded scalar as text. Maps, lists and null are not scalars.
func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	}

	return "", false
}

// integer converts a decoded whole number to int. Values outside the int
// range and non-integral floats are rejected; an integral float such as 1.0
// counts as a whole number in both JSON and YAML.
func integer(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return integer(n)
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return integer(f)
	case float64:
		// -MinInt is 2^63, exactly representable; MaxInt is not.
		if x == math.Trunc(x) && x >= math.MinInt && x < -float64(math.MinInt) {
			return int(x), true
		}
	}

	return 0, false
}

// stringKeyed returns v as a map with string keys. yaml.v3 decodes a mapping
// whose keys are not all strings (for example numeric ordinals) into
// map[any]any; each key is then rendered through scalar.
func stringKeyed(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			ks, ok := scalar(k)
			if !ok {
				return nil, false
			}
			if _, dup := out[ks]; dup {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}

	return nil, false
}
