// Package similarity - the validation gate shared by every measure.
//
// This file implements the precondition contract as staged, fixed-order
// checks around a raw formula:
//  1. Every supplied set argument must be an initialized set.
//  2. Both primary sets empty → warn, short-circuit to 0.
//  3. PolicyOne with one empty primary set → warn, short-circuit to NaN.
//  4. Elements across A ∪ B must share one kind class.
//  5. A supplied universe that is not ⊇ A ∪ B is dropped with a warning.
//
// Design principles:
//   - Deterministic, side-effect free; diagnostics go only to the
//     caller's opt-in handler.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go.
//   - O(|A|+|B|+|U|) worst case; no hidden allocations beyond the
//     per-call options.
package similarity

import (
	"math"

	"github.com/katalvlaran/setsim/sets"
)

// Wrap builds a validated front-end for fn under the given policy.
// It is the public form of the gate: the package's own measures are
// wrapped the same way, and callers can apply the identical contract
// to custom formulas.
//
// Returns ErrBadPolicy for any policy other than PolicyNone/PolicyOne;
// this is a construction-time programming-error guard, not a per-call
// check.
func Wrap(policy Policy, fn MeasureFunc) (Measure, error) {
	if policy != PolicyNone && policy != PolicyOne {
		return nil, ErrBadPolicy
	}
	return func(a, b *sets.Set, opts ...Option) (float64, error) {
		return run(policy, fn, a, b, opts)
	}, nil
}

// run executes the gate's fixed check order, then forwards to fn.
// The package's exported measures call it directly with compile-time
// constant policies, so no construction-time validation is needed.
func run(policy Policy, fn MeasureFunc, a, b *sets.Set, opts []Option) (float64, error) {
	var cfg callOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: every set argument must be an initialized set.
	// Highest priority, regardless of policy.
	if a == nil || b == nil || (cfg.hasUniverse && cfg.universe == nil) {
		return 0, ErrNotSet
	}

	// Stage 2: both primary sets empty → defined zero score, skip fn.
	if a.Len() == 0 && b.Len() == 0 {
		cfg.warn(WarnBothEmpty, msgBothEmpty)
		return 0, nil
	}

	// Stage 3: PolicyOne demands at least one non-empty primary set.
	// Violation yields the NaN "no result" sentinel, not an error.
	if policy == PolicyOne && (a.Len() == 0 || b.Len() == 0) {
		cfg.warn(WarnEmptySet, msgEmptySet)
		return math.NaN(), nil
	}

	// Stage 4: one kind class across A ∪ B. The universe is exempt.
	if !homogeneous(a, b) {
		return 0, ErrMixedTypes
	}

	// Stage 5: a universe that does not cover A ∪ B is dropped; the
	// formula then computes its own universe as A ∪ B.
	universe := cfg.universe
	if cfg.hasUniverse && !(universe.IsSupersetOf(a) && universe.IsSupersetOf(b)) {
		cfg.warn(WarnBadUniverse, msgBadUniverse)
		universe = nil
	}

	return fn(a, b, universe), nil
}
