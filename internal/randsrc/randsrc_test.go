package randsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedProducesSameStream(t *testing.T) {
	a := New(int64(7))
	b := New(int64(7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestDifferentSeedKindsNormalizeDeterministically(t *testing.T) {
	a := New("hello")
	b := New("hello")
	assert.Equal(t, a.Intn(1000), b.Intn(1000))

	c := New([]byte("hello"))
	d := New([]byte("hello"))
	assert.Equal(t, c.Intn(1000), d.Intn(1000))

	e := New(0.1)
	f := New(0.2)
	assert.NotEqual(t, e.Intn(1_000_000_000), f.Intn(1_000_000_000))
}

func TestSeedRestartsStream(t *testing.T) {
	s := New(int64(3))
	first := s.Intn(1000)
	s.Seed(int64(3))
	second := s.Intn(1000)
	assert.Equal(t, first, second)
}

func TestIntRangeStaysWithinBounds(t *testing.T) {
	s := New(int64(1))
	for i := 0; i < 100; i++ {
		n := s.IntRange(5, 9)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 9)
	}
}

func TestIntRangeToleratesSwappedBounds(t *testing.T) {
	s := New(int64(1))
	n := s.IntRange(9, 5)
	assert.GreaterOrEqual(t, n, 5)
	assert.LessOrEqual(t, n, 9)
}

func TestChoiceStaysWithinSize(t *testing.T) {
	s := New(int64(2))
	for i := 0; i < 50; i++ {
		c := s.Choice(4)
		assert.GreaterOrEqual(t, c, 0)
		assert.Less(t, c, 4)
	}
}
