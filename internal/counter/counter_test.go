package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/parser"
)

func countPattern(t *testing.T, pattern string, maxRepeat int) Card {
	t.Helper()
	seq, err := parser.Parse(pattern)
	require.NoError(t, err)
	res, err := alphabet.Resolve("")
	require.NoError(t, err)
	return Count(seq, res, maxRepeat)
}

func TestCountScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		want    int64
	}{
		{"[01]{3}", 8},
		{"[ab]{2}", 4},
		{"(yes|no)", 2},
		{"abc", 1},
		{"a", 1},
		{"[abc]", 3},
		// A repeat whose body has exactly one rendering counts as 1
		// regardless of min/max: "repetitions are indistinguishable".
		{"a{0,3}", 1},
	}
	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			c := countPattern(t, tc.pattern, 100)
			got, ok := c.Int64()
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCountZeroInnerWithMinZero(t *testing.T) {
	// [^\d\D] can never match anything, but the outer * is satisfiable
	// with zero repetitions.
	c := countPattern(t, `[^\d\D]*`, 100)
	got, ok := c.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(1), got)
}

func TestCountUnboundedUsesMaxRepeat(t *testing.T) {
	// inner count 2 ([ab]), so MAX_REPEAT sums 2^1 + 2^2 + 2^3 = 14.
	c := countPattern(t, `[ab]+`, 3)
	got, ok := c.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(14), got)
}

func TestCountCollapsesToInfinity(t *testing.T) {
	c := countPattern(t, `[a-z]{50,}`, 100)
	assert.True(t, c.IsInfinite())
}

func TestCountMemoizationIsStableAcrossCalls(t *testing.T) {
	seq, err := parser.Parse(`[ab]{4}`)
	require.NoError(t, err)
	res, err := alphabet.Resolve("")
	require.NoError(t, err)
	c1 := Count(seq, res, 100)
	c2 := Count(seq, res, 100)
	assert.Equal(t, c1.String(), c2.String())
}

func TestCardLessThanInt(t *testing.T) {
	assert.True(t, FromInt64(3).LessThanInt(5))
	assert.False(t, FromInt64(5).LessThanInt(5))
	assert.False(t, Inf.LessThanInt(1_000_000))
}
