// Package stringgen generates strings matching a regex-like pattern.
// It supports exact counting and deterministic enumeration of a
// pattern's language alongside random sampling, through three
// independent interpreters over one parsed AST
// (internal/sampler, internal/counter, internal/enumerator).
//
// Generalizes BorisIosifov-random-string-generator's single-shot CLI
// generator into a reusable, concurrency-documented library type.
package stringgen

import (
	"fmt"
	"strings"
	"sync"

	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/ast"
	"github.com/patterngen/stringgen/internal/counter"
	"github.com/patterngen/stringgen/internal/enumerator"
	"github.com/patterngen/stringgen/internal/parser"
	"github.com/patterngen/stringgen/internal/randsrc"
	"github.com/patterngen/stringgen/internal/sampler"
)

const (
	defaultMaxRepeat   = 100
	defaultRenderMaxIt = 100_000
)

// processConfig holds the package-level defaults new Generators pick
// up when a constructor option is left unset. Guarded by mu: each
// Configure/Reset call is atomic, but callers must still serialize it
// with New themselves when the relative order of a Configure call and
// a New call matters.
var (
	mu              sync.RWMutex
	cfgMaxRepeat    = defaultMaxRepeat
	cfgAlphabet     = ""
	cfgMaxRepeatSet = false
	cfgAlphabetSet  = false
)

// ConfigOption mutates process-level defaults. The set of constructors
// below is closed: there is no string-keyed map a caller could mistype
// a key into, so an unknown config key is a compile error here rather
// than a runtime "unknown key" (recorded as an Open Question
// resolution in DESIGN.md).
type ConfigOption func() error

// MaxRepeat sets the process-wide default max_repeat for generators
// constructed after this call. n must be positive.
func MaxRepeat(n int) ConfigOption {
	return func() error {
		if n <= 0 {
			return &ValueError{Msg: "max_repeat must be positive"}
		}
		cfgMaxRepeat = n
		cfgMaxRepeatSet = true
		return nil
	}
}

// Alphabet sets the process-wide default alphabet for generators
// constructed after this call. a must be non-empty and not
// whitespace-only.
func Alphabet(a string) ConfigOption {
	return func() error {
		if strings.TrimSpace(a) == "" {
			return &ValueError{Msg: "alphabet must not be empty or whitespace-only"}
		}
		cfgAlphabet = a
		cfgAlphabetSet = true
		return nil
	}
}

// Configure applies opts to the process config. Generators constructed
// before this call are unaffected.
func Configure(opts ...ConfigOption) error {
	mu.Lock()
	defer mu.Unlock()
	for _, opt := range opts {
		if err := opt(); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the process config back to built-in defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cfgMaxRepeat = defaultMaxRepeat
	cfgAlphabet = ""
	cfgMaxRepeatSet = false
	cfgAlphabetSet = false
}

func snapshotConfig() (maxRepeat int, maxRepeatSet bool, alphabetStr string, alphabetSet bool) {
	mu.RLock()
	defer mu.RUnlock()
	return cfgMaxRepeat, cfgMaxRepeatSet, cfgAlphabet, cfgAlphabetSet
}

// Option configures a Generator at construction time. Precedence for
// each of max_repeat/alphabet is: constructor option > process config
// > built-in default.
type Option func(*genOptions)

type genOptions struct {
	alphabet     string
	alphabetSet  bool
	maxRepeat    int
	maxRepeatSet bool
	seed         any
	seedSet      bool
}

// WithAlphabet overrides the alphabet for this generator only.
func WithAlphabet(a string) Option {
	return func(o *genOptions) { o.alphabet = a; o.alphabetSet = true }
}

// WithMaxRepeat overrides the unbounded-quantifier cap for this
// generator only.
func WithMaxRepeat(n int) Option {
	return func(o *genOptions) { o.maxRepeat = n; o.maxRepeatSet = true }
}

// WithSeed seeds this generator's random engine at construction. See
// internal/randsrc for accepted seed kinds.
func WithSeed(seed any) Option {
	return func(o *genOptions) { o.seed = seed; o.seedSet = true }
}

// Generator holds one parsed pattern and its resolved alphabet,
// max_repeat, and random engine. Not safe for concurrent use: Render
// and Seed mutate the embedded randsrc.Source, and Count memoizes into
// g.count. Construct one Generator per goroutine that needs one.
type Generator struct {
	src       string
	seq       []ast.Node
	res       alphabet.Resolved
	maxRepeat int
	rnd       *randsrc.Source

	countOnce sync.Once
	count     counter.Card
}

// New parses pattern and resolves its alphabet/max_repeat/seed per the
// precedence rule above. Returns *PatternError if pattern is
// unparseable, uses unsupported syntax, or resolves to a character
// class that is always empty under the chosen alphabet.
func New(pattern string, opts ...Option) (*Generator, error) {
	o := &genOptions{}
	for _, opt := range opts {
		opt(o)
	}

	procMaxRepeat, procMaxRepeatSet, procAlphabet, procAlphabetSet := snapshotConfig()

	alphabetStr := ""
	switch {
	case o.alphabetSet:
		alphabetStr = o.alphabet
	case procAlphabetSet:
		alphabetStr = procAlphabet
	}

	maxRepeat := defaultMaxRepeat
	switch {
	case o.maxRepeatSet:
		maxRepeat = o.maxRepeat
	case procMaxRepeatSet:
		maxRepeat = procMaxRepeat
	}
	if maxRepeat <= 0 {
		return nil, &ValueError{Msg: "max_repeat must be positive"}
	}

	seq, err := parser.Parse(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Cause: err}
	}

	res, err := alphabet.Resolve(alphabetStr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Cause: err}
	}

	if err := sampler.Validate(seq, res, maxRepeat); err != nil {
		return nil, &PatternError{Pattern: pattern, Cause: err}
	}

	var rnd *randsrc.Source
	if o.seedSet {
		rnd = randsrc.New(o.seed)
	} else {
		rnd = randsrc.New(nil)
	}

	return &Generator{
		src:       pattern,
		seq:       seq,
		res:       res,
		maxRepeat: maxRepeat,
		rnd:       rnd,
	}, nil
}

// Render returns one random string matching the pattern.
func (g *Generator) Render() (string, error) {
	s, err := sampler.Render(g.seq, g.res, g.rnd, g.maxRepeat)
	if err != nil {
		return "", &PatternError{Pattern: g.src, Cause: err}
	}
	return s, nil
}

// Stream returns a lazy sequence of exactly n samples. The returned
// function follows the same push-iterator convention as Enumerate.
func (g *Generator) Stream(n int) (func(func(string) bool), error) {
	if n < 0 {
		return nil, &ValueError{Msg: "n must be non-negative"}
	}
	return func(yield func(string) bool) {
		for i := 0; i < n; i++ {
			s, err := g.Render()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}, nil
}

// Iterate returns a perpetual push-iterator of random samples: unlike
// Stream, it never terminates on its own. The caller must return
// false from yield to stop pulling, or it never returns.
func (g *Generator) Iterate() func(func(string) bool) {
	return func(yield func(string) bool) {
		for {
			s, err := g.Render()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// RenderList eagerly returns n samples, possibly with duplicates.
func (g *Generator) RenderList(n int) ([]string, error) {
	if n < 0 {
		return nil, &ValueError{Msg: "n must be non-negative"}
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := g.Render()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// RenderSet eagerly collects n distinct samples, discarding duplicates,
// up to maxIter total draws. Fails with *ValueError before drawing any
// sample if Count() proves n unreachable, and with
// *MaxIterationsReachedError if maxIter is exhausted first.
func (g *Generator) RenderSet(n int, maxIter ...int) (map[string]struct{}, error) {
	if n < 0 {
		return nil, &ValueError{Msg: "n must be non-negative"}
	}
	iterCap := defaultRenderMaxIt
	if len(maxIter) > 0 {
		iterCap = maxIter[0]
	}
	if iterCap <= 0 {
		return nil, &ValueError{Msg: "max_iter must be positive"}
	}

	c := g.Count()
	if c.LessThanInt(n) {
		return nil, &ValueError{Msg: "n exceeds the pattern's distinct-value count"}
	}

	set := make(map[string]struct{}, n)
	iters := 0
	for len(set) < n {
		if iters >= iterCap {
			return nil, &MaxIterationsReachedError{N: n, MaxIter: iterCap, Found: len(set)}
		}
		s, err := g.Render()
		if err != nil {
			return nil, err
		}
		set[s] = struct{}{}
		iters++
	}
	return set, nil
}

// Count returns the exact (possibly infinite) number of distinct
// strings the pattern can produce. Memoized: a second call never
// re-traverses the AST.
func (g *Generator) Count() counter.Card {
	g.countOnce.Do(func() {
		g.count = counter.Count(g.seq, g.res, g.maxRepeat)
	})
	return g.count
}

// Infinite reports whether Count() is +∞.
func (g *Generator) Infinite() bool {
	return g.Count().IsInfinite()
}

// Enumerate returns a push-iterator over every distinct matching
// string in deterministic depth-first lexicographic order. limit, if
// positive, overrides the generator's max_repeat as the cap on any
// unbounded quantifier for this call only.
func (g *Generator) Enumerate(limit ...int) func(func(string) bool) {
	lim := 0
	if len(limit) > 0 {
		lim = limit[0]
	}
	inner := enumerator.Enumerate(g.seq, g.res, g.maxRepeat, lim)
	return func(yield func(string) bool) {
		inner(yield)
	}
}

// EnumerateChan adapts Enumerate to a channel for range-friendly
// consumption. Close done to stop enumeration early; the channel is
// always closed by the producer when the walk ends.
func (g *Generator) EnumerateChan(done <-chan struct{}, limit ...int) <-chan string {
	lim := 0
	if len(limit) > 0 {
		lim = limit[0]
	}
	return enumerator.EnumerateChan(g.seq, g.res, g.maxRepeat, lim, done)
}

// Seed reseeds the random engine. Subsequent Render/Stream/RenderList
// calls restart as if the generator had been freshly constructed with
// this seed.
func (g *Generator) Seed(seed any) {
	g.rnd.Seed(seed)
}

// String returns the generator's pattern source.
func (g *Generator) String() string {
	return g.src
}

// Equal reports whether two generators were built from the same
// pattern source.
func (g *Generator) Equal(other *Generator) bool {
	if other == nil {
		return false
	}
	return g.src == other.src
}

// Concat builds a new generator whose pattern source is this
// generator's source with any trailing '$' stripped, concatenated with
// other's source with any leading '^' stripped, then reparsed. A
// pattern error from either side's source propagates from the reparse.
func (g *Generator) Concat(other *Generator, opts ...Option) (*Generator, error) {
	left := strings.TrimSuffix(g.src, "$")
	right := strings.TrimPrefix(other.src, "^")
	return New(left+right, opts...)
}

// Error is the base kind every stringgen error satisfies.
type Error interface {
	error
	stringgenError()
}

// PatternError reports an unparseable, unsupported, or unsatisfiable
// pattern.
type PatternError struct {
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("stringgen: invalid pattern %q: %v", e.Pattern, e.Cause)
}
func (e *PatternError) Unwrap() error { return e.Cause }
func (*PatternError) stringgenError() {}

// MaxIterationsReachedError reports that RenderSet could not collect n
// distinct samples within max_iter draws.
type MaxIterationsReachedError struct {
	N       int
	MaxIter int
	Found   int
}

func (e *MaxIterationsReachedError) Error() string {
	return fmt.Sprintf("stringgen: reached %d iterations with only %d/%d distinct samples", e.MaxIter, e.Found, e.N)
}
func (*MaxIterationsReachedError) stringgenError() {}

// ValueError reports invalid argument or configuration values.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return "stringgen: " + e.Msg }
func (*ValueError) stringgenError() {}
