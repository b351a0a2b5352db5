// Package enumerator performs a deterministic, depth-first,
// lexicographic walk of an ast.Node sequence that yields every
// distinct string the pattern can produce (or, for unbounded
// patterns, a limit-bounded prefix of them). Written as a push-based
// iterator — yield(s string) bool, modeled on Go's range-over-func
// convention, since this walk must be able to stop mid-traversal
// instead of returning a fully materialized slice.
package enumerator

import (
	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/ast"
	"github.com/patterngen/stringgen/internal/charset"
)

// Yield is called once per produced string. Returning false stops
// enumeration early (the consumer has seen enough).
type Yield func(string) bool

// Enumerate walks seq in depth-first lexicographic order, substituting
// limit for every unbounded Repeat.Max. A limit <= 0 means "use
// maxRepeat" (the generator's configured effective cap).
func Enumerate(seq []ast.Node, res alphabet.Resolved, maxRepeat, limit int) func(Yield) {
	effUnbounded := limit
	if effUnbounded <= 0 {
		effUnbounded = maxRepeat
	}
	return func(yield Yield) {
		groups := map[int]string{}
		walkSeq(seq, res, effUnbounded, groups, "", yield)
	}
}

// EnumerateChan adapts Enumerate to a channel for range-friendly
// consumption. The channel is closed once enumeration completes or
// done is closed, whichever happens first; closing done from the
// consumer side is how an early "stop enumerating" is signaled to the
// background goroutine walking the AST.
func EnumerateChan(seq []ast.Node, res alphabet.Resolved, maxRepeat, limit int, done <-chan struct{}) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		Enumerate(seq, res, maxRepeat, limit)(func(s string) bool {
			select {
			case out <- s:
				return true
			case <-done:
				return false
			}
		})
	}()
	return out
}

// walkSeq enumerates the Cartesian product of seq's nodes, the left
// node varying slowest (left child as the outer loop). prefix
// accumulates the string built by nodes already resolved to the left
// of idx.
func walkSeq(seq []ast.Node, res alphabet.Resolved, maxRepeat int, groups map[int]string, prefix string, yield Yield) bool {
	return walkFrom(seq, 0, res, maxRepeat, groups, prefix, yield)
}

func walkFrom(seq []ast.Node, idx int, res alphabet.Resolved, maxRepeat int, groups map[int]string, prefix string, yield Yield) bool {
	if idx == len(seq) {
		return yield(prefix)
	}
	return walkNode(seq[idx], res, maxRepeat, groups, func(piece string, savedGroups map[int]string) bool {
		return walkFrom(seq, idx+1, res, maxRepeat, savedGroups, prefix+piece, yield)
	})
}

// nodeYield is invoked once per distinct value a single node can take,
// carrying the group table snapshot that should be visible to nodes
// further right in the same sequence: a capturing group's text must be
// stored before descending into anything that may reference it.
type nodeYield func(piece string, groups map[int]string) bool

func walkNode(n ast.Node, res alphabet.Resolved, maxRepeat int, groups map[int]string, yield nodeYield) bool {
	switch v := n.(type) {
	case ast.Literal:
		return yield(string(v.Ch), groups)
	case ast.NotLiteral:
		for _, r := range res.Printable().Without(v.Ch).Runes() {
			if !yield(string(r), groups) {
				return false
			}
		}
		return true
	case ast.Any:
		for _, r := range res.Printable().Without('\n').Runes() {
			if !yield(string(r), groups) {
				return false
			}
		}
		return true
	case ast.RangeNode:
		for r := v.Lo; r <= v.Hi; r++ {
			if !yield(string(r), groups) {
				return false
			}
		}
		return true
	case ast.Category:
		for _, r := range res.Set(v.Kind).Runes() {
			if !yield(string(r), groups) {
				return false
			}
		}
		return true
	case ast.In:
		set := inSet(v, res)
		for _, r := range set.Runes() {
			if !yield(string(r), groups) {
				return false
			}
		}
		return true
	case ast.Branch:
		for _, alt := range v.Alternatives {
			ok := walkFrom(alt, 0, res, maxRepeat, groups, "", func(s string) bool {
				return yield(s, groups)
			})
			if !ok {
				return false
			}
		}
		return true
	case ast.Subpattern:
		return walkFrom(v.Body, 0, res, maxRepeat, groups, "", func(s string) bool {
			next := groups
			if v.Group != 0 {
				next = cloneGroups(groups)
				next[v.Group] = s
			}
			return yield(s, next)
		})
	case ast.GroupRef:
		return yield(groups[v.Ref], groups)
	case ast.Repeat:
		return walkRepeat(v, res, maxRepeat, groups, yield)
	case ast.Assert, ast.At:
		return yield("", groups)
	default:
		return true
	}
}

func cloneGroups(groups map[int]string) map[int]string {
	next := make(map[int]string, len(groups)+1)
	for k, v := range groups {
		next[k] = v
	}
	return next
}

func walkRepeat(r ast.Repeat, res alphabet.Resolved, maxRepeat int, groups map[int]string, yield nodeYield) bool {
	effMax := r.Max
	if r.Unbounded() {
		effMax = maxRepeat
		if effMax < r.Min {
			effMax = r.Min
		}
	}
	for k := r.Min; k <= effMax; k++ {
		if !walkTuples(r.Body, k, res, maxRepeat, groups, "", yield) {
			return false
		}
	}
	return true
}

// walkTuples enumerates all k-fold concatenations of r.Body in
// lexicographic order, for a fixed repetition count k.
func walkTuples(body []ast.Node, k int, res alphabet.Resolved, maxRepeat int, groups map[int]string, prefix string, yield nodeYield) bool {
	if k == 0 {
		return yield(prefix, groups)
	}
	return walkFrom(body, 0, res, maxRepeat, groups, "", func(piece string) bool {
		return walkTuples(body, k-1, res, maxRepeat, groups, prefix+piece, yield)
	})
}

func inSet(in ast.In, res alphabet.Resolved) charset.Set {
	union := charset.Set{}
	for _, c := range in.Children {
		union = union.Union(childSet(c, res))
	}
	if in.Negated {
		return res.Printable().Difference(union)
	}
	return union
}

func childSet(n ast.Node, res alphabet.Resolved) charset.Set {
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
