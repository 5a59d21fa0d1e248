package similarity

import (
	"math"

	"github.com/katalvlaran/setsim/sets"
)

// Cosine computes the cosine similarity between a and b, viewing each
// set as a 0/1 indicator vector over the shared index A ∪ B.
//
// Formula:
//
//	dot(vA, vB) / (‖vA‖ · ‖vB‖)
//
// with vX[i] = 1 if element i ∈ X else 0. The index order over A ∪ B
// is immaterial: it only affects the intermediate vector layout, never
// the dot product or the norms. If the dot product is 0 (disjoint
// sets), the result is 0 without touching the norms.
//
// Policy: PolicyOne — the gate intercepts the empty cases, so both
// norms are positive whenever the division runs.
//
// A universe supplied via WithUniverse is validated by the gate but
// does not enter the formula.
//
// Complexity: O(|A ∪ B|) time.
func Cosine(a, b *sets.Set, opts ...Option) (float64, error) {
	return run(PolicyOne, cosineSimilarity, a, b, opts)
}

func cosineSimilarity(a, b, _ *sets.Set) float64 {
	var dot, normA, normB float64
	for _, elem := range a.Union(b).Elems() {
		inA, inB := a.Has(elem), b.Has(elem)
		if inA && inB {
			dot++
		}
		if inA {
			normA++
		}
		if inB {
			normB++
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
