package similarity

import "github.com/katalvlaran/setsim/sets"

// DiceSorensen computes the Dice–Sørensen coefficient between a and b.
//
// Formula:
//
//	2·|A ∩ B| / (|A| + |B|)
//
// Policy: PolicyNone — a single empty set is tolerated and scores 0;
// the both-empty case is short-circuited by the gate, so |A|+|B| > 0
// here.
//
// A universe supplied via WithUniverse is validated by the gate but
// does not enter the formula.
//
// Complexity: O(|A|+|B|) time.
func DiceSorensen(a, b *sets.Set, opts ...Option) (float64, error) {
	return run(PolicyNone, diceSorensenCoefficient, a, b, opts)
}

func diceSorensenCoefficient(a, b, _ *sets.Set) float64 {
	return 2 * float64(a.Intersect(b).Len()) / float64(a.Len()+b.Len())
}
