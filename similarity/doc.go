// Package similarity computes set-similarity and set-distance measures
// behind a single shared validation gate.
//
// What:
//
//   - Overlap        — |A∩B| / min(|A|,|B|)
//   - Jaccard        — |A∩B| / |A∪B|
//   - DiceSorensen   — 2·|A∩B| / (|A|+|B|)
//   - Cosine         — dot/(‖vA‖·‖vB‖) over 0/1 indicator vectors on A∪B
//   - SimpleMatching — (p+s)/(p+q+r+s) over a reference universe
//   - Hamming        — |A⊕B| / |U| (Hamming coefficient)
//   - HammingDistance — |A⊕B| raw count, the one unvalidated primitive
//   - Wrap           — apply the same gate to a custom MeasureFunc
//
// The gate:
//
//	Every measure except HammingDistance runs behind the same
//	fixed-order precondition contract:
//	  1. nil set arguments are rejected with ErrNotSet;
//	  2. both primary sets empty → warning, score 0, formula skipped;
//	  3. under PolicyOne, one empty primary set → warning, NaN
//	     ("no result"), formula skipped;
//	  4. elements across A∪B must share one kind class (all numeric
//	     subtypes count as a single class) or the call fails with
//	     ErrMixedTypes;
//	  5. a universe that is not a superset of A∪B is dropped with a
//	     warning and the measure computes its own universe as A∪B.
//
// Warnings:
//
//	Steps 2, 3 and 5 are non-fatal: the call still returns a value and
//	a nil error. Register WithWarningHandler to observe them; they
//	never alter control flow.
//
// Options:
//
//   - WithUniverse: reference universe for SimpleMatching and Hamming;
//     accepted (and validated) by every measure for contract symmetry.
//   - WithWarningHandler: per-call observer for non-fatal diagnostics.
//
// Errors:
//
//   - ErrBadPolicy: unknown Policy passed to Wrap (construction time).
//   - ErrNotSet: a set argument is nil.
//   - ErrMixedTypes: input elements span more than one kind class.
//
// All functions are pure and safe for concurrent use; each call only
// touches its own arguments. Time is O(|A|+|B|) or O(|A∪B|) per call.
package similarity
