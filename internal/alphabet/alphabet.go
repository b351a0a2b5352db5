// Package alphabet resolves an optional alphabet string into the
// character-category tables the sampler, counter, and enumerator
// evaluate CATEGORY and negated-IN nodes against.
package alphabet

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/patterngen/stringgen/internal/charset"
)

// ErrEmptyAlphabet is wrapped into a caller-visible error when the
// alphabet string is empty or whitespace-only.
var ErrEmptyAlphabet = errors.New("alphabet must not be empty or whitespace-only")

// Resolved is the immutable result of resolving an alphabet string.
// It is safe to share across goroutines once built.
type Resolved struct {
	cats charset.Categories
}

// Resolve builds a Resolved table from an optional alphabet string.
// An empty string means "unset": the built-in Latin letters are used.
// A non-empty string that contains only whitespace is rejected.
func Resolve(a string) (Resolved, error) {
	if a == "" {
		return Resolved{cats: charset.Build(charset.DefaultLetters())}, nil
	}
	if strings.TrimSpace(a) == "" {
		return Resolved{}, errors.Wrapf(ErrEmptyAlphabet, "alphabet %q", a)
	}
	return Resolved{cats: charset.Build(charset.FromString(a))}, nil
}

// Printable returns the resolved printable universe (used by ANY,
// NOT_LITERAL, and negated IN nodes).
func (r Resolved) Printable() charset.Set { return r.cats.Printable }

// Word returns the resolved \w set.
func (r Resolved) Word() charset.Set { return r.cats.Word }

// NotWord returns the resolved \W set.
func (r Resolved) NotWord() charset.Set { return r.cats.NotWord }

// Digits returns the resolved \d set (alphabet-invariant).
func (r Resolved) Digits() charset.Set { return r.cats.Digits }

// NotDigit returns the resolved \D set.
func (r Resolved) NotDigit() charset.Set { return r.cats.NotDigit }

// Whitespace returns the resolved \s set (alphabet-invariant).
func (r Resolved) Whitespace() charset.Set { return r.cats.Whitespace }

// NotSpace returns the resolved \S set.
func (r Resolved) NotSpace() charset.Set { return r.cats.NotSpace }

// Category kinds an ast.Category node can carry. Defined here (not in
// package ast) so ast stays free of any dependency on how categories
// resolve.
type Category int

const (
	Word Category = iota
	NotWord
	Digit
	NotDigit
	Space
	NotSpace
)

// Set returns the rune set a category resolves to under this alphabet.
func (r Resolved) Set(c Category) charset.Set {
	switch c {
	case Word:
		return r.cats.Word
	case NotWord:
		return r.cats.NotWord
	case Digit:
		return r.cats.Digits
	case NotDigit:
		return r.cats.NotDigit
	case Space:
		return r.cats.Whitespace
	case NotSpace:
		return r.cats.NotSpace
	default:
		panic("alphabet: unknown category")
	}
}
