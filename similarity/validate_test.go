package similarity_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/setsim/sets"
	"github.com/katalvlaran/setsim/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect returns an option recording every warning into *dst.
func collect(dst *[]similarity.Warning) similarity.Option {
	return similarity.WithWarningHandler(func(w similarity.Warning) {
		*dst = append(*dst, w)
	})
}

// countIntersection is a trivial custom formula used to probe Wrap.
func countIntersection(a, b, _ *sets.Set) float64 {
	return float64(a.Intersect(b).Len())
}

// TestWrap_BadPolicy ensures unknown policies are rejected at
// construction time, before any call is made.
func TestWrap_BadPolicy(t *testing.T) {
	m, err := similarity.Wrap(similarity.Policy(42), countIntersection)
	assert.ErrorIs(t, err, similarity.ErrBadPolicy)
	assert.Nil(t, m, "no measure must be built from a bad policy")
}

// TestWrap_ValidPolicies verifies that both policies build working measures.
func TestWrap_ValidPolicies(t *testing.T) {
	for _, policy := range []similarity.Policy{similarity.PolicyNone, similarity.PolicyOne} {
		m, err := similarity.Wrap(policy, countIntersection)
		require.NoError(t, err)
		require.NotNil(t, m)

		score, err := m(sets.New(1, 2, 3), sets.New(2, 3, 4))
		require.NoError(t, err)
		assert.Equal(t, 2.0, score)
	}
}

// TestGate_NilSetArguments verifies ErrNotSet for every nil position,
// including a nil universe supplied via WithUniverse.
func TestGate_NilSetArguments(t *testing.T) {
	valid := sets.New(1)

	_, err := similarity.Jaccard(nil, valid)
	assert.ErrorIs(t, err, similarity.ErrNotSet)

	_, err = similarity.Jaccard(valid, nil)
	assert.ErrorIs(t, err, similarity.ErrNotSet)

	_, err = similarity.Jaccard(valid, valid, similarity.WithUniverse(nil))
	assert.ErrorIs(t, err, similarity.ErrNotSet)
}

// TestGate_NilBeatsEmpty verifies check order: the nil-set guard has
// highest priority, even when the other set is empty.
func TestGate_NilBeatsEmpty(t *testing.T) {
	var warns []similarity.Warning

	_, err := similarity.Overlap(nil, sets.New(), collect(&warns))
	assert.ErrorIs(t, err, similarity.ErrNotSet)
	assert.Empty(t, warns, "fatal errors must not emit warnings")
}

// TestGate_BothEmptyShortCircuit verifies the zero score and the
// WarnBothEmpty diagnostic under both policies.
func TestGate_BothEmptyShortCircuit(t *testing.T) {
	measures := map[string]similarity.Measure{
		"overlap": similarity.Overlap, // PolicyOne
		"jaccard": similarity.Jaccard, // PolicyNone
	}
	for name, m := range measures {
		var warns []similarity.Warning

		score, err := m(sets.New(), sets.New(), collect(&warns))
		require.NoError(t, err, "%s: both-empty is non-fatal", name)
		assert.Equal(t, 0.0, score, "%s: both-empty scores 0", name)
		require.Len(t, warns, 1, "%s: exactly one diagnostic", name)
		assert.Equal(t, similarity.WarnBothEmpty, warns[0].Code)
		assert.Equal(t, "Both sets are empty!", warns[0].Message)
	}
}

// TestGate_PolicyOneEmptySet verifies the NaN sentinel plus
// WarnEmptySet when PolicyOne sees one empty primary set.
func TestGate_PolicyOneEmptySet(t *testing.T) {
	var warns []similarity.Warning

	score, err := similarity.Overlap(sets.New(), sets.New(1), collect(&warns))
	require.NoError(t, err, "policy violation is non-fatal")
	assert.True(t, math.IsNaN(score), "policy-one sentinel is NaN (no result)")
	require.Len(t, warns, 1)
	assert.Equal(t, similarity.WarnEmptySet, warns[0].Code)
	assert.Equal(t, "At least one of the sets must be non-empty.", warns[0].Message)
}

// TestGate_PolicyNoneToleratesEmpty verifies PolicyNone measures run
// the formula with one empty set and emit no diagnostics.
func TestGate_PolicyNoneToleratesEmpty(t *testing.T) {
	var warns []similarity.Warning

	score, err := similarity.Jaccard(sets.New(), sets.New(1), collect(&warns))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, warns, "no diagnostic for a tolerated empty set")
}

// TestGate_MixedTypes verifies ErrMixedTypes for number/string and
// string/bool mixes, and that the numeric collapse admits int vs float.
func TestGate_MixedTypes(t *testing.T) {
	_, err := similarity.Overlap(sets.New(1, 2, 3), sets.New("f"))
	assert.ErrorIs(t, err, similarity.ErrMixedTypes)

	_, err = similarity.Jaccard(sets.New("a"), sets.New(true))
	assert.ErrorIs(t, err, similarity.ErrMixedTypes)

	// Numeric subtypes share one class: ints vs a float is valid input.
	score, err := similarity.Overlap(sets.New(1, 2, 3), sets.New(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score, "disjoint numeric sets score 0")
}

// TestGate_UniverseNotSuperset verifies the invalid universe is
// dropped with WarnBadUniverse and the call proceeds on A ∪ B.
func TestGate_UniverseNotSuperset(t *testing.T) {
	a, b := sets.New(1, 2), sets.New(2, 3)
	var warns []similarity.Warning

	got, err := similarity.SimpleMatching(a, b, similarity.WithUniverse(sets.New(1, 2)), collect(&warns))
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, similarity.WarnBadUniverse, warns[0].Code)
	assert.Equal(t, "The total range provided is not a superset of the other two sets", warns[0].Message)

	want, err := similarity.SimpleMatching(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got, "dropped universe must equal the universe-less call")
}

// TestGate_UniverseValid verifies a proper superset universe passes
// silently.
func TestGate_UniverseValid(t *testing.T) {
	var warns []similarity.Warning

	_, err := similarity.SimpleMatching(
		sets.New(1, 2), sets.New(2, 3),
		similarity.WithUniverse(sets.New(1, 2, 3, 4)),
		collect(&warns),
	)
	require.NoError(t, err)
	assert.Empty(t, warns, "valid universe must not warn")
}

// TestGate_UniverseExemptFromHomogeneity verifies that only A ∪ B is
// kind-checked; universe elements of another kind do not fail the call.
func TestGate_UniverseExemptFromHomogeneity(t *testing.T) {
	_, err := similarity.Hamming(
		sets.New(1, 2), sets.New(2, 3),
		similarity.WithUniverse(sets.New(1, 2, 3, "tag")),
	)
	assert.NoError(t, err, "universe elements are exempt from the homogeneity check")
}

// TestGate_BothEmptyBeatsPolicyOne verifies order between stages 2 and 3:
// two empty sets yield the zero score, not the policy-one sentinel.
func TestGate_BothEmptyBeatsPolicyOne(t *testing.T) {
	var warns []similarity.Warning

	score, err := similarity.Cosine(sets.New(), sets.New(), collect(&warns))
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	require.Len(t, warns, 1)
	assert.Equal(t, similarity.WarnBothEmpty, warns[0].Code)
}

// TestGate_CleanCallEmitsNothing verifies the happy path stays silent.
func TestGate_CleanCallEmitsNothing(t *testing.T) {
	var warns []similarity.Warning

	_, err := similarity.Jaccard(sets.New(1, 2), sets.New(2, 3), collect(&warns))
	require.NoError(t, err)
	assert.Empty(t, warns)
}
