package similarity

import "github.com/katalvlaran/setsim/sets"

// Overlap computes the overlap (Szymkiewicz–Simpson) coefficient
// between a and b.
//
// Formula:
//
//	|A ∩ B| / min(|A|, |B|)
//
// Policy: PolicyOne — at least one primary set must be non-empty;
// the gate intercepts the empty cases, so min(|A|,|B|) > 0 here.
//
// A universe supplied via WithUniverse is validated by the gate but
// does not enter the formula.
//
// Complexity: O(|A|+|B|) time.
func Overlap(a, b *sets.Set, opts ...Option) (float64, error) {
	return run(PolicyOne, overlapCoefficient, a, b, opts)
}

func overlapCoefficient(a, b, _ *sets.Set) float64 {
	return float64(a.Intersect(b).Len()) / float64(min(a.Len(), b.Len()))
}
