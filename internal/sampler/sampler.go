// Package sampler draws one random matching string per walk of an
// ast.Node sequence: pick a size uniformly, then concatenate that many
// draws, dispatching on opcode the same way for every node kind.
package sampler

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/ast"
	"github.com/patterngen/stringgen/internal/charset"
	"github.com/patterngen/stringgen/internal/randsrc"
)

// ErrEmptyCandidateSet is wrapped into a *PatternError-equivalent by
// callers when a leaf node's resolved candidate set has no members,
// e.g. a negated class that, under the configured alphabet, excludes
// every printable character.
var ErrEmptyCandidateSet = errors.New("resolved character set is empty")

// Render walks seq once and returns one random matching string.
// maxRepeat substitutes for every unbounded Repeat.Max.
func Render(seq []ast.Node, res alphabet.Resolved, rnd *randsrc.Source, maxRepeat int) (string, error) {
	groups := map[int]string{}
	var sb strings.Builder
	if err := walkSeq(seq, res, rnd, maxRepeat, groups, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Validate statically checks every leaf's resolved candidate set under
// res, independent of randomness, so construction fails fast on
// patterns that can never be sampled rather than panicking on
// rnd.Intn(0) deep inside a render.
func Validate(seq []ast.Node, res alphabet.Resolved, maxRepeat int) error {
	for _, n := range seq {
		if err := validateNode(n, res, maxRepeat); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n ast.Node, res alphabet.Resolved, maxRepeat int) error {
	switch v := n.(type) {
	case ast.Literal, ast.Any, ast.RangeNode, ast.Category, ast.GroupRef, ast.At:
		_, err := candidateSet(n, res)
		return err
	case ast.NotLiteral:
		_, err := candidateSet(n, res)
		return err
	case ast.In:
		set, err := inSet(v, res)
		if err != nil {
			return err
		}
		if set.Len() == 0 {
			return errors.Wrap(ErrEmptyCandidateSet, "character class")
		}
		for _, c := range v.Children {
			if err := validateNode(c, res, maxRepeat); err != nil {
				return err
			}
		}
		return nil
	case ast.Branch:
		for _, alt := range v.Alternatives {
			for _, c := range alt {
				if err := validateNode(c, res, maxRepeat); err != nil {
					return err
				}
			}
		}
		return nil
	case ast.Subpattern:
		for _, c := range v.Body {
			if err := validateNode(c, res, maxRepeat); err != nil {
				return err
			}
		}
		return nil
	case ast.Assert:
		for _, c := range v.Body {
			if err := validateNode(c, res, maxRepeat); err != nil {
				return err
			}
		}
		return nil
	case ast.Repeat:
		for _, c := range v.Body {
			if err := validateNode(c, res, maxRepeat); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Errorf("unsupported opcode: %T", n)
	}
}

func walkSeq(seq []ast.Node, res alphabet.Resolved, rnd *randsrc.Source, maxRepeat int, groups map[int]string, sb *strings.Builder) error {
	for _, n := range seq {
		if err := walkNode(n, res, rnd, maxRepeat, groups, sb); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(n ast.Node, res alphabet.Resolved, rnd *randsrc.Source, maxRepeat int, groups map[int]string, sb *strings.Builder) error {
	switch v := n.(type) {
	case ast.Literal:
		sb.WriteRune(v.Ch)
		return nil
	case ast.NotLiteral:
		set, err := candidateSet(n, res)
		if err != nil {
			return err
		}
		sb.WriteRune(pick(set, rnd))
		return nil
	case ast.Any:
		set, err := candidateSet(n, res)
		if err != nil {
			return err
		}
		sb.WriteRune(pick(set, rnd))
		return nil
	case ast.RangeNode:
		sb.WriteRune(v.Lo + rune(rnd.IntRange(0, int(v.Hi-v.Lo))))
		return nil
	case ast.Category:
		set := res.Set(v.Kind)
		if set.Len() == 0 {
			return errors.Wrap(ErrEmptyCandidateSet, "category")
		}
		sb.WriteRune(pick(set, rnd))
		return nil
	case ast.In:
		set, err := inSet(v, res)
		if err != nil {
			return err
		}
		if set.Len() == 0 {
			return errors.Wrap(ErrEmptyCandidateSet, "character class")
		}
		sb.WriteRune(pick(set, rnd))
		return nil
	case ast.Branch:
		alt := v.Alternatives[rnd.Choice(len(v.Alternatives))]
		return walkSeq(alt, res, rnd, maxRepeat, groups, sb)
	case ast.Subpattern:
		var inner strings.Builder
		if err := walkSeq(v.Body, res, rnd, maxRepeat, groups, &inner); err != nil {
			return err
		}
		text := inner.String()
		sb.WriteString(text)
		if v.Group != 0 {
			groups[v.Group] = text
		}
		return nil
	case ast.GroupRef:
		sb.WriteString(groups[v.Ref])
		return nil
	case ast.Repeat:
		upper := v.Max
		if v.Unbounded() {
			upper = maxRepeat
			if upper < v.Min {
				upper = v.Min
			}
		}
		times := chooseRepeatCount(v, upper, rnd)
		for i := 0; i < times; i++ {
			if err := walkSeq(v.Body, res, rnd, maxRepeat, groups, sb); err != nil {
				return err
			}
		}
		return nil
	case ast.Assert:
		return nil
	case ast.At:
		return nil
	default:
		return errors.Errorf("unsupported opcode: %T", n)
	}
}

// chooseRepeatCount picks a repetition count for a MAX_REPEAT or
// MIN_REPEAT node: MAX_REPEAT draws k uniformly from [min, upper];
// MIN_REPEAT (lazy) always picks min, the standard monotone-decreasing
// choice for a lazy quantifier.
func chooseRepeatCount(r ast.Repeat, upper int, rnd *randsrc.Source) int {
	if r.Lazy {
		return r.Min
	}
	return rnd.IntRange(r.Min, upper)
}

func pick(set charset.Set, rnd *randsrc.Source) rune {
	return set.At(rnd.Choice(set.Len()))
}

// candidateSet computes the draw pool for a leaf opcode, used by both
// the live walk and the static Validate pass so the two can never
// disagree about what's "empty".
func candidateSet(n ast.Node, res alphabet.Resolved) (charset.Set, error) {
	switch v := n.(type) {
	case ast.Literal:
		return charset.NewSet(v.Ch), nil
	case ast.NotLiteral:
		set := res.Printable().Without(v.Ch)
		if set.Len() == 0 {
			return set, errors.Wrap(ErrEmptyCandidateSet, "negated literal")
		}
		return set, nil
	case ast.Any:
		set := res.Printable().Without('\n')
		if set.Len() == 0 {
			return set, errors.Wrap(ErrEmptyCandidateSet, "any")
		}
		return set, nil
	case ast.RangeNode:
		return charset.Set{}, nil // callers of Render draw directly; used here only for Validate's size check below
	case ast.Category:
		set := res.Set(v.Kind)
		if set.Len() == 0 {
			return set, errors.Wrap(ErrEmptyCandidateSet, "category")
		}
		return set, nil
	case ast.GroupRef, ast.At:
		return charset.NewSet('x'), nil // zero-width/backreference: never empty, size irrelevant to Validate
	default:
		return charset.Set{}, errors.Errorf("unsupported opcode: %T", n)
	}
}

// inSet computes the union (or, if negated, the complement of the
// union) of an IN node's children.
func inSet(in ast.In, res alphabet.Resolved) (charset.Set, error) {
	union := charset.Set{}
	for _, c := range in.Children {
		s, err := childSet(c, res)
		if err != nil {
			return charset.Set{}, err
		}
		union = union.Union(s)
	}
	if in.Negated {
		return res.Printable().Difference(union), nil
	}
	return union, nil
}

func childSet(n ast.Node, res alphabet.Resolved) (charset.Set, error) {
	switch v := n.(type) {
	case ast.Literal:
		return charset.NewSet(v.Ch), nil
	case ast.RangeNode:
		runes := make([]rune, 0, int(v.Hi-v.Lo)+1)
		for r := v.Lo; r <= v.Hi; r++ {
			runes = append(runes, r)
		}
		return charset.NewSet(runes...), nil
	case ast.Category:
		return res.Set(v.Kind), nil
	default:
		return charset.Set{}, errors.Errorf("unsupported character class member: %T", n)
	}
}
