// Package randsrc is a seedable deterministic random engine: every
// stochastic choice the sampler makes goes through one of these,
// wrapping an instance-owned *rand.Rand rather than the global
// math/rand source, so distinct generators have independent,
// reproducible streams.
package randsrc

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// Source is a seedable, instance-owned random engine.
type Source struct {
	rng *rand.Rand
}

// New builds a Source. A nil seed behaves like an unseeded
// math/rand.Rand: seeded from the current time.
func New(seed any) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed re-seeds the engine. Accepts int, int64, float64, string,
// []byte, or nil (time-based). Calling Seed restarts the underlying
// sequence exactly as if the Source had been freshly constructed with
// that seed.
func (s *Source) Seed(seed any) {
	s.rng = rand.New(rand.NewSource(normalizeSeed(seed)))
}

func normalizeSeed(seed any) int64 {
	switch v := seed.(type) {
	case nil:
		return time.Now().UnixNano()
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		// Hash the IEEE-754 bit pattern rather than truncating to an
		// int, so distinct fractional seeds (0.1 vs 0.2) don't
		// collapse onto the same int64 seed.
		return int64(math.Float64bits(v))
	case string:
		return hashBytes([]byte(v))
	case []byte:
		return hashBytes(v)
	default:
		return time.Now().UnixNano()
	}
}

func hashBytes(b []byte) int64 {
	h := fnv.New64a()
	_, _ = h.Write(b)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], h.Sum64())
	return int64(binary.BigEndian.Uint64(buf[:]))
}

// Intn returns a uniform random integer in [0, n). Panics if n <= 0,
// matching math/rand.Intn.
func (s *Source) Intn(n int) int { return s.rng.Intn(n) }

// IntRange returns a uniform random integer in [lo, hi] inclusive.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Choice returns a uniform random index in [0, size).
func (s *Source) Choice(size int) int { return s.rng.Intn(size) }
