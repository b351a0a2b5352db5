// Package ast defines the regex opcode tree that internal/sampler,
// internal/counter, and internal/enumerator interpret. One Go struct
// per opcode, each a tagged node walked by three independent
// interpreters rather than carrying its own generation method.
package ast

import "github.com/patterngen/stringgen/internal/alphabet"

// Node is any AST opcode. It carries no behavior of its own: the
// sampler/counter/enumerator each switch on the concrete type, so
// adding a new opcode means adding a case in three places rather than
// a method here, keeping the three interpreters independent with no
// shared mutable visitor state.
type Node interface {
	isNode()
}

// Literal emits a single code point.
type Literal struct {
	Ch rune
}

func (Literal) isNode() {}

// NotLiteral emits any printable code point other than Ch.
type NotLiteral struct {
	Ch rune
}

func (NotLiteral) isNode() {}

// Any emits any character from the printable set except newline.
type Any struct{}

func (Any) isNode() {}

// RangeNode emits one code point from the inclusive range [Lo, Hi].
type RangeNode struct {
	Lo, Hi rune
}

func (RangeNode) isNode() {}

// In emits one character from the union of its children, or (if
// Negated) from the printable set minus that union.
type In struct {
	Children []Node
	Negated  bool
}

func (In) isNode() {}

// Category resolves to an alphabet-dependent or alphabet-invariant
// rune set (\w \W \d \D \s \S).
type Category struct {
	Kind alphabet.Category
}

func (Category) isNode() {}

// Branch emits a match of exactly one alternative.
type Branch struct {
	Alternatives [][]Node
}

func (Branch) isNode() {}

// Subpattern emits Body. If Group is non-zero, the emitted text is
// stored under both the numeric Group and (if present) Name for later
// GroupRef lookups.
type Subpattern struct {
	Group int
	Name  string
	Body  []Node
}

func (Subpattern) isNode() {}

// GroupRef emits the text previously captured by the referenced
// group, or the empty string if that group has not yet been
// instantiated in this walk. Ref is a numeric group number; if the
// backreference was written by name, Name is also set and resolution
// prefers Name when present (both point at the same slot in the
// group table by construction).
type GroupRef struct {
	Ref  int
	Name string
}

func (GroupRef) isNode() {}

// Repeat emits Body a chosen number of times in [Min, Max]. Max < 0
// means unbounded (the effective cap is substituted at evaluation
// time). Lazy collapses greedy/lazy quantifiers into one struct: the
// cardinality math is identical either way, only the sampler's
// choice-of-k distribution differs.
type Repeat struct {
	Min, Max int
	Lazy     bool
	Body     []Node
}

func (Repeat) isNode() {}

// Unbounded reports whether this repeat has no upper bound.
func (r Repeat) Unbounded() bool { return r.Max < 0 }

// AssertKind distinguishes positive lookahead from negative lookahead.
type AssertKind int

const (
	PositiveLookahead AssertKind = iota
	NegativeLookahead
)

// Assert is a lookahead assertion. It contributes nothing to sampled,
// counted, or enumerated output, but Body must still be a valid
// sub-AST (the parser rejects unparseable lookahead contents).
type Assert struct {
	Kind AssertKind
	Body []Node
}

func (Assert) isNode() {}

// AtKind distinguishes the supported zero-width anchors.
type AtKind int

const (
	AtBeginning AtKind = iota
	AtEnd
	AtWordBoundary
	AtNonWordBoundary
)

// At is a zero-width anchor. Contributes nothing to output, in any
// position: rendering treats it as identical to its absence.
type At struct {
	Kind AtKind
}

func (At) isNode() {}
