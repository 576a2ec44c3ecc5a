package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the vertex at a zero-based construction index. It must be pure:
// constructors call it more than once for the same index. A panic signals a
// scheme that cannot name the requested index.
type IDFn func(idx int) string

// alphabet is the number of letters available to SymbolIDFn and ExcelColumnIDFn.
const alphabet = 26

// DefaultIDFn names vertices "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn names vertices "A".."Z" and panics outside [0, 25].
// Handy for hand-drawn fixtures where single letters read best.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= alphabet {
		panic(fmt.Sprintf("builder: SymbolIDFn index %d outside [0,%d]", idx, alphabet-1))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn names vertices like spreadsheet columns: A..Z, AA..AZ, BA...
// It panics on a negative index.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn index %d is negative", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for i := idx; i >= 0; i = i/alphabet - 1 {
		pos--
		buf[pos] = byte('A' + i%alphabet)
	}

	return string(buf[pos:])
}

// SymbolNumberIDFn names vertices prefix+"0", prefix+"1", ... and panics on a
// negative index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: SymbolNumberIDFn index %d is negative", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs selects DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
