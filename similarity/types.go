// Package similarity defines the policies, sentinel errors, warnings,
// and per-call options shared by the validation gate and every measure.
package similarity

import (
	"errors"

	"github.com/katalvlaran/setsim/sets"
)

// Sentinel errors for similarity operations.
var (
	// ErrBadPolicy indicates an unknown Policy passed to Wrap.
	ErrBadPolicy = errors.New("similarity: policy must be PolicyNone or PolicyOne")
	// ErrNotSet indicates a nil set argument (the Go analogue of
	// passing a non-set value).
	ErrNotSet = errors.New("similarity: all arguments must be sets")
	// ErrMixedTypes indicates that the two input sets span more than
	// one element-kind class.
	ErrMixedTypes = errors.New("similarity: elements in the sets must be of the same type")
)

// Policy selects the emptiness rule the validation gate enforces on the
// two primary input sets.
type Policy int

const (
	// PolicyNone applies no non-emptiness requirement; only the
	// both-empty short-circuit fires.
	PolicyNone Policy = iota
	// PolicyOne requires at least one of the two primary sets to be
	// non-empty; a violation yields the NaN sentinel plus a warning.
	PolicyOne
)

// WarningCode identifies a non-fatal diagnostic emitted by the gate.
type WarningCode int

const (
	// WarnBothEmpty fires when both primary sets are empty; the call
	// short-circuits to 0.
	WarnBothEmpty WarningCode = iota
	// WarnEmptySet fires when PolicyOne is violated; the call
	// short-circuits to NaN ("no result").
	WarnEmptySet
	// WarnBadUniverse fires when a supplied universe is not a superset
	// of A ∪ B; the universe is dropped and the call proceeds.
	WarnBadUniverse
)

// Diagnostic message texts. They are part of the contract and stable.
const (
	msgBothEmpty   = "Both sets are empty!"
	msgEmptySet    = "At least one of the sets must be non-empty."
	msgBadUniverse = "The total range provided is not a superset of the other two sets"
)

// Warning is a non-fatal diagnostic. It is delivered to the handler
// registered with WithWarningHandler and never alters control flow.
type Warning struct {
	Code    WarningCode
	Message string
}

// MeasureFunc is the shape of a raw similarity formula: two validated
// sets plus an optional universe (nil when absent or dropped).
// Implementations may assume the gate's invariants hold.
type MeasureFunc func(a, b, universe *sets.Set) float64

// Measure is a validated front-end produced by Wrap: the gate runs
// first, then the wrapped formula.
type Measure func(a, b *sets.Set, opts ...Option) (float64, error)

// Option configures a single measure call.
type Option func(*callOptions)

// callOptions carries per-call state; nothing survives the call.
type callOptions struct {
	universe    *sets.Set
	hasUniverse bool
	onWarning   func(Warning)
}

// WithUniverse supplies a reference universe set bounding the domain
// for measures that count "absent from both" positions (simple
// matching, Hamming coefficient). The gate validates it: if it is not
// a superset of A ∪ B it is dropped with WarnBadUniverse and the
// measure computes its own universe as A ∪ B. Other measures accept
// the option for contract symmetry and ignore the set itself.
func WithUniverse(u *sets.Set) Option {
	return func(c *callOptions) {
		c.universe = u
		c.hasUniverse = true
	}
}

// WithWarningHandler registers h to observe the call's non-fatal
// diagnostics. Without it, warnings are silently discarded.
func WithWarningHandler(h func(Warning)) Option {
	return func(c *callOptions) {
		c.onWarning = h
	}
}

// warn delivers a diagnostic to the registered handler, if any.
func (c *callOptions) warn(code WarningCode, msg string) {
	if c.onWarning != nil {
		c.onWarning(Warning{Code: code, Message: msg})
	}
}
