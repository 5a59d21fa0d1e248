package similarity

import (
	"fmt"

	"github.com/katalvlaran/setsim/sets"
)

// kindNumber is the single class all numeric subtypes collapse into:
// an int and a float64 may share a set, an int and a string may not.
const kindNumber = "number"

// kindOf classifies one element by an explicit tag check over its
// dynamic type. Non-numeric elements are classed by their exact type.
func kindOf(v any) string {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		complex64, complex128:
		return kindNumber
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// homogeneous reports whether every element across a ∪ b belongs to a
// single kind class. Empty inputs are trivially homogeneous.
//
// Complexity: O(|A|+|B|) time, O(1) extra space.
func homogeneous(a, b *sets.Set) bool {
	var first string
	seen := false
	for _, s := range [2]*sets.Set{a, b} {
		for _, elem := range s.Elems() {
			k := kindOf(elem)
			if !seen {
				first, seen = k, true
				continue
			}
			if k != first {
				return false
			}
		}
	}
	return true
}
