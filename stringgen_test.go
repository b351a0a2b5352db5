package stringgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioCountOfBinaryTriples(t *testing.T) {
	g, err := New("[01]{3}")
	require.NoError(t, err)
	n, ok := g.Count().Int64()
	require.True(t, ok)
	assert.Equal(t, int64(8), n)
}

func TestScenarioEnumerateTwoByTwoClass(t *testing.T) {
	g, err := New("[ab]{2}")
	require.NoError(t, err)
	var got []string
	g.Enumerate()(func(s string) bool {
		got = append(got, s)
		return true
	})
	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, got)
}

func TestScenarioEnumerateAlternation(t *testing.T) {
	g, err := New("(yes|no)")
	require.NoError(t, err)
	var got []string
	g.Enumerate()(func(s string) bool {
		got = append(got, s)
		return true
	})
	assert.Equal(t, []string{"yes", "no"}, got)
}

func TestScenarioRenderSetImpossibleCountFails(t *testing.T) {
	g, err := New("[ab]")
	require.NoError(t, err)
	_, err = g.RenderSet(5)
	require.Error(t, err)
	var verr *ValueError
	assert.ErrorAs(t, err, &verr)
}

func TestScenarioFixedSeedIsReproducible(t *testing.T) {
	a, err := New(`\d{4}`, WithSeed(int64(42)))
	require.NoError(t, err)
	b, err := New(`\d{4}`, WithSeed(int64(42)))
	require.NoError(t, err)
	sa, err := a.Render()
	require.NoError(t, err)
	sb, err := b.Render()
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
}

func TestInvariantRenderLengthWithinBounds(t *testing.T) {
	g, err := New(`a{2,5}b`, WithSeed(int64(9)))
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		s, err := g.Render()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(s), 3)
		assert.LessOrEqual(t, len(s), 6)
	}
}

func TestInvariantCountIsMemoized(t *testing.T) {
	g, err := New(`[ab]{4}`)
	require.NoError(t, err)
	c1 := g.Count()
	c2 := g.Count()
	assert.Equal(t, c1.String(), c2.String())
}

func TestInvariantRenderSetExactCountSucceeds(t *testing.T) {
	g, err := New(`[ab]{2}`)
	require.NoError(t, err)
	set, err := g.RenderSet(4)
	require.NoError(t, err)
	assert.Len(t, set, 4)
}

func TestInvariantRenderSetAboveCountFailsBeforeSampling(t *testing.T) {
	g, err := New(`[ab]{2}`)
	require.NoError(t, err)
	_, err = g.RenderSet(5)
	require.Error(t, err)
	var verr *ValueError
	assert.ErrorAs(t, err, &verr)
}

func TestInvariantAlphabetAffectsWordButNotDigitOrSpace(t *testing.T) {
	withDefault, err := New(`\w`, WithSeed(int64(1)))
	require.NoError(t, err)
	withCustom, err := New(`\w`, WithAlphabet("xyz"), WithSeed(int64(1)))
	require.NoError(t, err)

	defaultSet, err := withDefault.RenderSet(3, 10_000)
	require.NoError(t, err)
	customSet, err := withCustom.RenderSet(3, 10_000)
	require.NoError(t, err)
	assert.NotEqual(t, defaultSet, customSet)

	dDefault, err := New(`\d`, WithSeed(int64(1)))
	require.NoError(t, err)
	dCustom, err := New(`\d`, WithAlphabet("xyz"), WithSeed(int64(1)))
	require.NoError(t, err)
	assert.Equal(t, dDefault.Count().String(), dCustom.Count().String())
}

func TestInvariantExplicitRangeIgnoresAlphabet(t *testing.T) {
	g, err := New(`[a-z]`, WithAlphabet("xyz"))
	require.NoError(t, err)
	assert.Equal(t, int64(26), must(g.Count().Int64()))
}

func must(n int64, ok bool) int64 {
	if !ok {
		panic("expected finite count")
	}
	return n
}

func TestConcatStripsDelimitersAndReparses(t *testing.T) {
	a, err := New(`^foo$`)
	require.NoError(t, err)
	b, err := New(`^bar$`)
	require.NoError(t, err)
	c, err := a.Concat(b)
	require.NoError(t, err)
	assert.Equal(t, "foobar", c.String())
	s, err := c.Render()
	require.NoError(t, err)
	assert.Equal(t, "foobar", s)
}

func TestConcatPropagatesPatternError(t *testing.T) {
	a, err := New(`foo`)
	require.NoError(t, err)
	b, err := New(`bar`)
	require.NoError(t, err)
	_, err = a.Concat(b, WithMaxRepeat(-1))
	require.Error(t, err)
}

func TestEqualAndString(t *testing.T) {
	a, err := New(`abc`)
	require.NoError(t, err)
	b, err := New(`abc`)
	require.NoError(t, err)
	c, err := New(`xyz`)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "abc", a.String())
}

func TestSeedRestartsSequence(t *testing.T) {
	g, err := New(`\d{6}`, WithSeed(int64(1)))
	require.NoError(t, err)
	first, err := g.Render()
	require.NoError(t, err)
	g.Seed(int64(1))
	second, err := g.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConfigurePrecedenceOverBuiltinDefault(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Configure(MaxRepeat(3)))
	g, err := New(`a+`)
	require.NoError(t, err)
	n, ok := g.Count().Int64()
	require.True(t, ok)
	assert.Equal(t, int64(3), n)
}

func TestConstructorOptionOverridesProcessConfig(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Configure(MaxRepeat(3)))
	g, err := New(`a+`, WithMaxRepeat(5))
	require.NoError(t, err)
	n, ok := g.Count().Int64()
	require.True(t, ok)
	assert.Equal(t, int64(5), n)
}

func TestConfigureDoesNotAffectExistingGenerators(t *testing.T) {
	t.Cleanup(Reset)
	g, err := New(`a+`, WithMaxRepeat(2))
	require.NoError(t, err)
	require.NoError(t, Configure(MaxRepeat(9)))
	n, ok := g.Count().Int64()
	require.True(t, ok)
	assert.Equal(t, int64(2), n)
}

func TestConfigureRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)
	err := Configure(MaxRepeat(0))
	require.Error(t, err)
	err = Configure(Alphabet("   "))
	require.Error(t, err)
}

func TestNewRejectsUnparseablePattern(t *testing.T) {
	_, err := New(`a{5,2}`)
	require.Error(t, err)
	var perr *PatternError
	assert.ErrorAs(t, err, &perr)
}

func TestNewRejectsUnsatisfiablePattern(t *testing.T) {
	_, err := New(`[^\d\D]`)
	require.Error(t, err)
	var perr *PatternError
	assert.ErrorAs(t, err, &perr)
}

func TestRenderListLength(t *testing.T) {
	g, err := New(`[ab]`)
	require.NoError(t, err)
	out, err := g.RenderList(7)
	require.NoError(t, err)
	assert.Len(t, out, 7)
}

func TestStreamYieldsExactlyN(t *testing.T) {
	g, err := New(`[ab]`)
	require.NoError(t, err)
	stream, err := g.Stream(5)
	require.NoError(t, err)
	count := 0
	stream(func(s string) bool {
		count++
		return true
	})
	assert.Equal(t, 5, count)
}

func TestInfiniteReportsUnboundedCount(t *testing.T) {
	g, err := New(`[a-z]{50,}`)
	require.NoError(t, err)
	assert.True(t, g.Infinite())
}

func TestIterateNeverStopsUntilCallerDoes(t *testing.T) {
	g, err := New(`[ab]`)
	require.NoError(t, err)
	count := 0
	g.Iterate()(func(s string) bool {
		count++
		return count < 50
	})
	assert.Equal(t, 50, count)
}
