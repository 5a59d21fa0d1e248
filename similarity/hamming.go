package similarity

import "github.com/katalvlaran/setsim/sets"

// HammingDistance returns |A ⊕ B|, the number of elements present in
// exactly one of the two sets.
//
// It is the unvalidated primitive under Hamming: no gate, no
// homogeneity or emptiness rules, and nil sets read as empty. Mixed
// element kinds are counted as-is.
//
// Complexity: O(|A|+|B|) time.
func HammingDistance(a, b *sets.Set) int {
	return a.SymmetricDifference(b).Len()
}

// Hamming computes the Hamming coefficient between a and b: the
// Hamming distance normalized by the size of the reference universe.
//
// Formula:
//
//	|A ⊕ B| / |U|
//
// U is the set supplied via WithUniverse, or A ∪ B when the option is
// absent or the gate dropped an invalid universe.
//
// Policy: PolicyNone — a single empty set is tolerated; the both-empty
// case is short-circuited by the gate, so |U| ≥ |A ∪ B| > 0 here.
//
// Complexity: O(|A|+|B|+|U|) time.
func Hamming(a, b *sets.Set, opts ...Option) (float64, error) {
	return run(PolicyNone, hammingCoefficient, a, b, opts)
}

func hammingCoefficient(a, b, universe *sets.Set) float64 {
	u := universe
	if u == nil {
		u = a.Union(b)
	}
	return float64(HammingDistance(a, b)) / float64(u.Len())
}
