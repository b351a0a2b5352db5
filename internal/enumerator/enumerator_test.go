package enumerator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/parser"
)

func enumeratePattern(t *testing.T, pattern string, maxRepeat, limit int) []string {
	t.Helper()
	seq, err := parser.Parse(pattern)
	require.NoError(t, err)
	res, err := alphabet.Resolve("")
	require.NoError(t, err)
	var out []string
	Enumerate(seq, res, maxRepeat, limit)(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

func TestEnumerateScenarios(t *testing.T) {
	got := enumeratePattern(t, "[ab]{2}", 100, 0)
	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, got)

	got = enumeratePattern(t, "(yes|no)", 100, 0)
	assert.Equal(t, []string{"yes", "no"}, got)

	got = enumeratePattern(t, "[01]{3}", 100, 0)
	assert.Len(t, got, 8)
}

func TestEnumerateRangeOrder(t *testing.T) {
	got := enumeratePattern(t, "[a-c]", 100, 0)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestEnumerateConcatenationIsCartesianLeftOuter(t *testing.T) {
	got := enumeratePattern(t, "[ab][12]", 100, 0)
	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, got)
}

func TestEnumerateBackreference(t *testing.T) {
	got := enumeratePattern(t, `([ab])\1`, 100, 0)
	assert.Equal(t, []string{"aa", "bb"}, got)
}

func TestEnumerateRespectsLimitOnUnbounded(t *testing.T) {
	got := enumeratePattern(t, `a+`, 100, 2)
	assert.Equal(t, []string{"a", "aa"}, got)
}

func TestEnumerateEarlyStop(t *testing.T) {
	seq, err := parser.Parse("[ab]{2}")
	require.NoError(t, err)
	res, err := alphabet.Resolve("")
	require.NoError(t, err)
	var out []string
	Enumerate(seq, res, 100, 0)(func(s string) bool {
		out = append(out, s)
		return len(out) < 2
	})
	assert.Equal(t, []string{"aa", "ab"}, out)
}

func TestEnumerateChanProducesSameSequence(t *testing.T) {
	seq, err := parser.Parse("[ab]{2}")
	require.NoError(t, err)
	res, err := alphabet.Resolve("")
	require.NoError(t, err)
	done := make(chan struct{})
	defer close(done)
	ch := EnumerateChan(seq, res, 100, 0, done)
	var out []string
	for s := range ch {
		out = append(out, s)
	}
	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, out)
}
