package similarity

import "github.com/katalvlaran/setsim/sets"

// Jaccard computes the Jaccard similarity between a and b.
//
// Formula:
//
//	|A ∩ B| / |A ∪ B|
//
// Policy: PolicyNone — a single empty set is tolerated and simply
// scores 0; the both-empty case is short-circuited by the gate, so
// |A ∪ B| > 0 here.
//
// A universe supplied via WithUniverse is validated by the gate but
// does not enter the formula.
//
// Complexity: O(|A|+|B|) time.
func Jaccard(a, b *sets.Set, opts ...Option) (float64, error) {
	return run(PolicyNone, jaccardSimilarity, a, b, opts)
}

func jaccardSimilarity(a, b, _ *sets.Set) float64 {
	return float64(a.Intersect(b).Len()) / float64(a.Union(b).Len())
}
