package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDedupesAndSorts(t *testing.T) {
	s := NewSet('c', 'a', 'b', 'a')
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []rune{'a', 'b', 'c'}, s.Runes())
}

func TestSetContains(t *testing.T) {
	s := FromString("abc")
	assert.True(t, s.Contains('b'))
	assert.False(t, s.Contains('z'))
}

func TestSetUnionDifferenceWithout(t *testing.T) {
	a := FromString("abc")
	b := FromString("bcd")
	assert.Equal(t, []rune{'a', 'b', 'c', 'd'}, a.Union(b).Runes())
	assert.Equal(t, []rune{'a'}, a.Difference(b).Runes())
	assert.Equal(t, []rune{'a', 'c'}, a.Without('b').Runes())
}

func TestBuildCategories(t *testing.T) {
	cats := Build(FromString("ab"))

	assert.True(t, cats.Word.Contains('a'))
	assert.True(t, cats.Word.Contains('1'))
	assert.True(t, cats.Word.Contains('_'))
	assert.False(t, cats.Word.Contains(' '))

	assert.True(t, cats.Printable.Contains(' '))
	assert.True(t, cats.Printable.Contains('!'))

	assert.False(t, cats.NotWord.Contains('a'))
	assert.True(t, cats.NotWord.Contains(' '))

	// Digits/whitespace never vary with the alphabet.
	assert.Equal(t, 10, cats.Digits.Len())
	assert.True(t, cats.Digits.Contains('5'))
}

func TestDefaultLetters(t *testing.T) {
	assert.Equal(t, 52, DefaultLetters().Len())
}
