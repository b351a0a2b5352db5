package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/parser"
	"github.com/patterngen/stringgen/internal/randsrc"
)

func resolveDefault(t *testing.T) alphabet.Resolved {
	t.Helper()
	res, err := alphabet.Resolve("")
	require.NoError(t, err)
	return res
}

func TestRenderMatchesLiteral(t *testing.T) {
	seq, err := parser.Parse("hello")
	require.NoError(t, err)
	res := resolveDefault(t)
	s, err := Render(seq, res, randsrc.New(int64(1)), 100)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestRenderCharClassStaysWithinSet(t *testing.T) {
	seq, err := parser.Parse("[ab]{10}")
	require.NoError(t, err)
	res := resolveDefault(t)
	rnd := randsrc.New(int64(7))
	for i := 0; i < 20; i++ {
		s, err := Render(seq, res, rnd, 100)
		require.NoError(t, err)
		require.Len(t, s, 10)
		for _, r := range s {
			assert.Contains(t, "ab", string(r))
		}
	}
}

func TestRenderBackreferenceRepeatsCapturedText(t *testing.T) {
	seq, err := parser.Parse(`([ab]{3})\1`)
	require.NoError(t, err)
	res := resolveDefault(t)
	rnd := randsrc.New(int64(3))
	s, err := Render(seq, res, rnd, 100)
	require.NoError(t, err)
	require.Len(t, s, 6)
	assert.Equal(t, s[:3], s[3:])
}

func TestRenderIsReproducibleForFixedSeed(t *testing.T) {
	seq, err := parser.Parse(`\d{6}-[a-z]{4}`)
	require.NoError(t, err)
	res := resolveDefault(t)
	a, err := Render(seq, res, randsrc.New(int64(42)), 100)
	require.NoError(t, err)
	b, err := Render(seq, res, randsrc.New(int64(42)), 100)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderRepeatRespectsBounds(t *testing.T) {
	seq, err := parser.Parse(`a{2,4}`)
	require.NoError(t, err)
	res := resolveDefault(t)
	rnd := randsrc.New(int64(5))
	for i := 0; i < 30; i++ {
		s, err := Render(seq, res, rnd, 100)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(s), 2)
		assert.LessOrEqual(t, len(s), 4)
	}
}

func TestRenderAnchorsAndAssertsContributeNothing(t *testing.T) {
	seq, err := parser.Parse(`^a(?=b)$`)
	require.NoError(t, err)
	res := resolveDefault(t)
	s, err := Render(seq, res, randsrc.New(int64(1)), 100)
	require.NoError(t, err)
	assert.Equal(t, "a", s)
}

func TestValidateRejectsEmptyNegatedClass(t *testing.T) {
	seq, err := parser.Parse(`[^\d\D]`)
	require.NoError(t, err)
	res := resolveDefault(t)
	err = Validate(seq, res, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
}

func TestValidateAcceptsEmptyNegatedClassUnderOptionalRepeat(t *testing.T) {
	// Validate is deliberately conservative: it flags any occurrence of
	// an always-empty leaf even when wrapped in a MAX_REPEAT(min=0,...)
	// that could skip it at runtime.
	seq, err := parser.Parse(`[^\d\D]*`)
	require.NoError(t, err)
	res := resolveDefault(t)
	err = Validate(seq, res, 100)
	assert.Error(t, err)
}

func TestValidateAcceptsSatisfiablePattern(t *testing.T) {
	seq, err := parser.Parse(`\w+@[a-z]+\.[a-z]{2,3}`)
	require.NoError(t, err)
	res := resolveDefault(t)
	assert.NoError(t, Validate(seq, res, 100))
}
