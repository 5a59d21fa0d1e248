package similarity

import "github.com/katalvlaran/setsim/sets"

// SimpleMatching computes the simple matching coefficient between a
// and b over a reference universe U.
//
// Formula:
//
//	(p + s) / (p + q + r + s)
//
// counted over the positions of U:
//
//	p = |A ∩ B|        present in both
//	q = |A − B|        present only in A
//	r = |B − A|        present only in B
//	s = |U ∖ (A ∪ B)|  absent from both
//
// U is the set supplied via WithUniverse, or A ∪ B when the option is
// absent or the gate dropped an invalid universe. In that default case
// s is always 0 and the measure degenerates to p / |A ∪ B|; this is
// the documented contract, so callers who want the both-absent term to
// count must supply a strict superset universe.
//
// Policy: PolicyOne — the gate intercepts the empty cases, so the
// denominator |U| ≥ |A ∪ B| > 0 whenever the division runs.
//
// Complexity: O(|A|+|B|+|U|) time.
func SimpleMatching(a, b *sets.Set, opts ...Option) (float64, error) {
	return run(PolicyOne, simpleMatchingCoefficient, a, b, opts)
}

func simpleMatchingCoefficient(a, b, universe *sets.Set) float64 {
	p := a.Intersect(b).Len()
	q := a.Difference(b).Len()
	r := b.Difference(a).Len()
	s := 0
	if universe != nil {
		s = universe.Difference(a.Union(b)).Len()
	}
	return float64(p+s) / float64(p+q+r+s)
}
