// Package counter computes an exact (or provably-infinite) count of
// distinct strings an ast.Node sequence can produce. Walks the same
// opcode tree internal/sampler renders from, but sums/products the
// size of the candidate space instead of drawing one point from it.
// Uses math/big since unbounded MAX_REPEAT chains can exceed int64.
package counter

import (
	"math/big"

	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/ast"
	"github.com/patterngen/stringgen/internal/charset"
)

// cutoff is the point past which a finite count collapses to Inf
// rather than growing its big.Int representation without bound: any
// sum reaching 2^63 is treated as effectively unbounded.
var cutoff = new(big.Int).Lsh(big.NewInt(1), 63)

// Card is a non-negative extended integer: a finite count or +∞.
type Card struct {
	inf bool
	v   *big.Int // nil means zero when !inf
}

// Inf is the cardinality of an unbounded pattern space.
var Inf = Card{inf: true}

// Zero is the empty cardinality.
var Zero = Card{v: big.NewInt(0)}

// One is the cardinality of a pattern with exactly one rendering.
var One = Card{v: big.NewInt(1)}

// FromInt64 builds a finite Card.
func FromInt64(n int64) Card {
	if n < 0 {
		n = 0
	}
	return Card{v: big.NewInt(n)}
}

func (c Card) bigVal() *big.Int {
	if c.v == nil {
		return big.NewInt(0)
	}
	return c.v
}

// IsInfinite reports whether c is +∞.
func (c Card) IsInfinite() bool { return c.inf }

// IsZero reports whether c is the finite value 0.
func (c Card) IsZero() bool { return !c.inf && c.bigVal().Sign() == 0 }

// String renders c for display; "+Inf" for the infinite case.
func (c Card) String() string {
	if c.inf {
		return "+Inf"
	}
	return c.bigVal().String()
}

// Int64 returns c as an int64 along with whether the conversion is
// exact (c is finite and fits). Callers use this for n-vs-count
// comparisons in the façade where n is always a plain int.
func (c Card) Int64() (int64, bool) {
	if c.inf || !c.bigVal().IsInt64() {
		return 0, false
	}
	return c.bigVal().Int64(), true
}

// LessThanInt reports whether c < n for a plain int n (used by
// render_set's "count() < n" precondition). +∞ is never less than a
// finite n.
func (c Card) LessThanInt(n int) bool {
	if c.inf {
		return false
	}
	return c.bigVal().Cmp(big.NewInt(int64(n))) < 0
}

func add(a, b Card) Card {
	if a.inf || b.inf {
		return Inf
	}
	sum := new(big.Int).Add(a.bigVal(), b.bigVal())
	if sum.Cmp(cutoff) >= 0 {
		return Inf
	}
	return Card{v: sum}
}

func mul(a, b Card) Card {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	if a.inf || b.inf {
		return Inf
	}
	prod := new(big.Int).Mul(a.bigVal(), b.bigVal())
	if prod.Cmp(cutoff) >= 0 {
		return Inf
	}
	return Card{v: prod}
}

func pow(base Card, k int) Card {
	if k == 0 {
		return One
	}
	if base.IsZero() {
		return Zero
	}
	if base.inf {
		return Inf
	}
	p := new(big.Int).Exp(base.bigVal(), big.NewInt(int64(k)), nil)
	if p.Cmp(cutoff) >= 0 {
		return Inf
	}
	return Card{v: p}
}

// Count returns the cardinality of the language of seq, substituting
// maxRepeat for every unbounded Repeat.Max.
func Count(seq []ast.Node, res alphabet.Resolved, maxRepeat int) Card {
	total := One
	for _, n := range seq {
		total = mul(total, countNode(n, res, maxRepeat))
	}
	return total
}

func countNode(n ast.Node, res alphabet.Resolved, maxRepeat int) Card {
	switch v := n.(type) {
	case ast.Literal:
		return One
	case ast.GroupRef:
		return One
	case ast.At:
		return One
	case ast.Assert:
		return One
	case ast.NotLiteral:
		return FromInt64(int64(res.Printable().Len() - 1))
	case ast.Any:
		return FromInt64(int64(res.Printable().Without('\n').Len()))
	case ast.RangeNode:
		return FromInt64(int64(v.Hi - v.Lo + 1))
	case ast.Category:
		return FromInt64(int64(res.Set(v.Kind).Len()))
	case ast.In:
		return FromInt64(int64(inSetLen(v, res)))
	case ast.Branch:
		sum := Zero
		for _, alt := range v.Alternatives {
			sum = add(sum, Count(alt, res, maxRepeat))
		}
		return sum
	case ast.Subpattern:
		return Count(v.Body, res, maxRepeat)
	case ast.Repeat:
		return countRepeat(v, res, maxRepeat)
	default:
		return Zero
	}
}

func countRepeat(r ast.Repeat, res alphabet.Resolved, maxRepeat int) Card {
	c := Count(r.Body, res, maxRepeat)
	if c.IsZero() {
		if r.Min == 0 {
			return One
		}
		return Zero
	}
	if !c.inf && c.bigVal().Cmp(big.NewInt(1)) == 0 {
		return One
	}
	effMax := r.Max
	if r.Unbounded() {
		effMax = maxRepeat
		if effMax < r.Min {
			effMax = r.Min
		}
	}
	sum := Zero
	for k := r.Min; k <= effMax; k++ {
		sum = add(sum, pow(c, k))
		if sum.inf {
			return Inf
		}
	}
	return sum
}

func inSetLen(in ast.In, res alphabet.Resolved) int {
	union := charset.Set{}
	for _, c := range in.Children {
		union = union.Union(childSetLen(c, res))
	}
	if in.Negated {
		return res.Printable().Difference(union).Len()
	}
	return union.Len()
}

func childSetLen(n ast.Node, res alphabet.Resolved) charset.Set {
	switch v := n.(type) {
	case ast.Literal:
		return charset.NewSet(v.Ch)
	case ast.RangeNode:
		runes := make([]rune, 0, int(v.Hi-v.Lo)+1)
		for r := v.Lo; r <= v.Hi; r++ {
			runes = append(runes, r)
		}
		return charset.NewSet(runes...)
	case ast.Category:
		return res.Set(v.Kind)
	default:
		return charset.Set{}
	}
}
