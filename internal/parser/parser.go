// Package parser turns a lexer.Token stream into an ast.Node sequence.
// Grammar shape (precedence climbing for alternation vs. concatenation
// vs. postfix quantifiers) is grounded on
// CyberCzar01-LABS_4/LAB_2/regexlib/parser.go's parseExpr(minPrec),
// extended with character classes, named/numbered groups,
// backreferences, and lookahead. Never imports regexp or
// regexp/syntax: every opcode is hand-evaluated against its own AST
// node, not Go's RE2 engine.
package parser

import (
	"github.com/pkg/errors"

	"github.com/patterngen/stringgen/internal/ast"
	"github.com/patterngen/stringgen/internal/lexer"
)

type parser struct {
	lx        *lexer.Lexer
	look      lexer.Token
	nextGroup int
	names     map[string]int
	err       error
}

// Parse compiles a pattern source string into its root node sequence.
func Parse(src string) ([]ast.Node, error) {
	p := &parser{lx: lexer.New(src), nextGroup: 1, names: map[string]int{}}
	p.scan()
	seq, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.look.Kind != lexer.EOF {
		return nil, errors.Errorf("at offset %d: unexpected %s", p.look.Pos, p.look.Kind)
	}
	return seq, nil
}

func (p *parser) scan() {
	if p.err != nil {
		return
	}
	tok, err := p.lx.Next(false)
	if err != nil {
		p.err = err
		p.look = lexer.Token{Kind: lexer.EOF}
		return
	}
	p.look = tok
}

func (p *parser) scanClass() (lexer.Token, error) {
	if p.err != nil {
		return lexer.Token{Kind: lexer.EOF}, p.err
	}
	tok, err := p.lx.Next(true)
	if err != nil {
		p.err = err
		return lexer.Token{Kind: lexer.EOF}, err
	}
	return tok, nil
}

// isAltStop reports whether the current lookahead ends a sequence
// (alternation bar, a closing paren, or end of input).
func (p *parser) isSeqStop() bool {
	switch p.look.Kind {
	case lexer.EOF, lexer.RParen, lexer.Union:
		return true
	default:
		return false
	}
}

func (p *parser) parseAlternation() ([]ast.Node, error) {
	first, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.look.Kind != lexer.Union {
		return first, nil
	}
	alts := [][]ast.Node{first}
	for p.look.Kind == lexer.Union {
		p.scan()
		if p.err != nil {
			return nil, p.err
		}
		next, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		if p.err != nil {
			return nil, p.err
		}
		alts = append(alts, next)
	}
	return []ast.Node{ast.Branch{Alternatives: alts}}, nil
}

func (p *parser) parseSequence() ([]ast.Node, error) {
	var seq []ast.Node
	for !p.isSeqStop() {
		node, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.err != nil {
			return nil, p.err
		}
		seq = append(seq, node)
	}
	return seq, nil
}

func (p *parser) parseTerm() (ast.Node, error) {
	pos := p.look.Pos
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}

	var min, max int
	hasQuant := true
	switch p.look.Kind {
	case lexer.Star:
		min, max = 0, -1
		p.scan()
	case lexer.Plus:
		min, max = 1, -1
		p.scan()
	case lexer.QMark:
		min, max = 0, 1
		p.scan()
	case lexer.LBrace:
		min, max, err = p.parseBraceQuantifier()
		if err != nil {
			return nil, err
		}
	default:
		hasQuant = false
	}
	if p.err != nil {
		return nil, p.err
	}
	if !hasQuant {
		return atom, nil
	}

	lazy := false
	if p.look.Kind == lexer.QMark {
		lazy = true
		p.scan()
		if p.err != nil {
			return nil, p.err
		}
	}
	switch p.look.Kind {
	case lexer.Plus:
		return nil, errors.Errorf("at offset %d: possessive quantifiers are not supported", p.look.Pos)
	case lexer.Star, lexer.QMark, lexer.LBrace:
		return nil, errors.Errorf("at offset %d: multiple repeat", p.look.Pos)
	}
	body, err := bodyOf(atom, pos)
	if err != nil {
		return nil, err
	}
	return ast.Repeat{Min: min, Max: max, Lazy: lazy, Body: body}, nil
}

// bodyOf wraps a single atom node as a one-element body sequence for
// ast.Repeat, which (like ast.Subpattern and ast.Branch alternatives)
// always holds a []ast.Node rather than a single Node.
func bodyOf(n ast.Node, pos int) ([]ast.Node, error) {
	if n == nil {
		return nil, errors.Errorf("at offset %d: quantifier applies to nothing", pos)
	}
	return []ast.Node{n}, nil
}

func (p *parser) parseBraceQuantifier() (int, int, error) {
	pos := p.look.Pos
	p.scan() // consume '{'
	if p.err != nil {
		return 0, 0, p.err
	}
	minStr, err := p.scanDigits()
	if err != nil {
		return 0, 0, err
	}
	if minStr == "" {
		return 0, 0, errors.Errorf("at offset %d: expected a number after '{'", pos)
	}
	min := atoiSafe(minStr)
	max := min
	if p.look.Kind == lexer.Comma {
		p.scan()
		if p.err != nil {
			return 0, 0, p.err
		}
		maxStr, err := p.scanDigits()
		if err != nil {
			return 0, 0, err
		}
		if maxStr == "" {
			max = -1
		} else {
			max = atoiSafe(maxStr)
		}
	}
	if p.look.Kind != lexer.RBrace {
		return 0, 0, errors.Errorf("at offset %d: expected '}'", pos)
	}
	p.scan()
	if p.err != nil {
		return 0, 0, p.err
	}
	if max >= 0 && min > max {
		return 0, 0, errors.Errorf("at offset %d: min repeat greater than max repeat", pos)
	}
	return min, max, nil
}

// scanDigits accumulates consecutive Char digit tokens. The lexer has
// no dedicated "number" token: digits inside {...} arrive as plain
// Char tokens the same way CyberCzar01's parseRepeat consumes them.
func (p *parser) scanDigits() (string, error) {
	digits := ""
	for p.look.Kind == lexer.Char && p.look.Ch >= '0' && p.look.Ch <= '9' {
		digits += string(p.look.Ch)
		p.scan()
		if p.err != nil {
			return "", p.err
		}
	}
	return digits, nil
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func (p *parser) parseAtom() (ast.Node, error) {
	tok := p.look
	switch tok.Kind {
	case lexer.Char:
		p.scan()
		return ast.Literal{Ch: tok.Ch}, p.err
	case lexer.Any:
		p.scan()
		return ast.Any{}, p.err
	case lexer.CategoryTok:
		p.scan()
		return ast.Category{Kind: tok.Cat}, p.err
	case lexer.AtTok:
		p.scan()
		return ast.At{Kind: tok.At}, p.err
	case lexer.Caret:
		p.scan()
		return ast.At{Kind: ast.AtBeginning}, p.err
	case lexer.Dollar:
		p.scan()
		return ast.At{Kind: ast.AtEnd}, p.err
	case lexer.Dash:
		p.scan()
		return ast.Literal{Ch: '-'}, p.err
	case lexer.RBracket:
		p.scan()
		return ast.Literal{Ch: ']'}, p.err
	case lexer.RBrace:
		p.scan()
		return ast.Literal{Ch: '}'}, p.err
	case lexer.BackRef:
		p.scan()
		return ast.GroupRef{Ref: tok.Num}, p.err
	case lexer.GroupRefName:
		p.scan()
		num, ok := p.names[tok.Name]
		if !ok {
			return nil, errors.Errorf("at offset %d: unknown group name %q", tok.Pos, tok.Name)
		}
		return ast.GroupRef{Ref: num, Name: tok.Name}, p.err
	case lexer.LBracket:
		return p.parseCharClass()
	case lexer.LParen:
		return p.parseGroup(0, "")
	case lexer.LParenNonCapturing:
		return p.parseGroup(-1, "")
	case lexer.LParenNamed:
		name := tok.Name
		num := p.nextGroup
		p.names[name] = num
		return p.parseGroup(num, name)
	case lexer.Lookahead:
		return p.parseAssert(ast.PositiveLookahead)
	case lexer.LookaheadNeg:
		return p.parseAssert(ast.NegativeLookahead)
	default:
		return nil, errors.Errorf("at offset %d: unexpected %s", tok.Pos, tok.Kind)
	}
}

// parseGroup parses the body of a '(' that has already been
// classified by the caller. groupNum == 0 means "assign the next
// capturing number"; groupNum == -1 means non-capturing; any other
// value is a pre-assigned named-group number (the name was registered
// by the caller before descending, so a backreference inside the
// group's own body can already resolve it).
func (p *parser) parseGroup(groupNum int, name string) (ast.Node, error) {
	pos := p.look.Pos
	capturing := groupNum != -1
	if capturing && groupNum == 0 {
		groupNum = p.nextGroup
	}
	if capturing {
		p.nextGroup++
	}
	p.scan() // consume the opening token
	if p.err != nil {
		return nil, p.err
	}
	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.look.Kind != lexer.RParen {
		return nil, errors.Errorf("at offset %d: missing ')'", pos)
	}
	p.scan()
	if p.err != nil {
		return nil, p.err
	}
	if !capturing {
		return ast.Subpattern{Group: 0, Body: body}, nil
	}
	return ast.Subpattern{Group: groupNum, Name: name, Body: body}, nil
}

func (p *parser) parseAssert(kind ast.AssertKind) (ast.Node, error) {
	pos := p.look.Pos
	p.scan() // consume '(?=' or '(?!'
	if p.err != nil {
		return nil, p.err
	}
	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.look.Kind != lexer.RParen {
		return nil, errors.Errorf("at offset %d: missing ')'", pos)
	}
	p.scan()
	if p.err != nil {
		return nil, p.err
	}
	return ast.Assert{Kind: kind, Body: body}, nil
}

// parseCharClass parses the body of a '[...]' class. The opening '['
// has already been consumed by the caller's p.scan() via parseAtom's
// dispatch; this function reads class-mode tokens directly rather
// than through p.look, since the rest of the parser never needs to
// see inside a class.
func (p *parser) parseCharClass() (ast.Node, error) {
	// p.look already holds the LBracket token: the underlying lexer's
	// position is already past '[', so reading the class body starts
	// directly with scanClass rather than another p.scan() (which
	// would mis-tokenize the first class byte in non-class mode).
	openPos := p.look.Pos

	negated := false
	tok, err := p.scanClass()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lexer.Caret {
		negated = true
		tok, err = p.scanClass()
		if err != nil {
			return nil, err
		}
	}

	var children []ast.Node
	for {
		switch tok.Kind {
		case lexer.EOF:
			return nil, errors.Errorf("at offset %d: missing ']'", openPos)
		case lexer.RBracket:
			goto closed
		case lexer.CategoryTok:
			children = append(children, ast.Category{Kind: tok.Cat})
			tok, err = p.scanClass()
			if err != nil {
				return nil, err
			}
		case lexer.Dash:
			children = append(children, ast.Literal{Ch: '-'})
			tok, err = p.scanClass()
			if err != nil {
				return nil, err
			}
		case lexer.Caret:
			children = append(children, ast.Literal{Ch: '^'})
			tok, err = p.scanClass()
			if err != nil {
				return nil, err
			}
		case lexer.Char:
			lo := tok.Ch
			next, hasNext := p.lx.PeekRune(0)
			after, hasAfter := p.lx.PeekRune(1)
			if hasNext && next == '-' && hasAfter && after != ']' {
				if _, err := p.scanClass(); err != nil { // consume '-'
					return nil, err
				}
				hiTok, err := p.scanClass()
				if err != nil {
					return nil, err
				}
				if hiTok.Kind != lexer.Char {
					return nil, errors.Errorf("at offset %d: invalid range end in character class", hiTok.Pos)
				}
				if hiTok.Ch < lo {
					return nil, errors.Errorf("at offset %d: range out of order in character class", tok.Pos)
				}
				children = append(children, ast.RangeNode{Lo: lo, Hi: hiTok.Ch})
			} else {
				children = append(children, ast.Literal{Ch: lo})
			}
			tok, err = p.scanClass()
			if err != nil {
				return nil, err
			}
		default:
			return nil, errors.Errorf("at offset %d: unexpected token in character class", tok.Pos)
		}
	}
closed:
	if len(children) == 0 {
		return nil, errors.Errorf("at offset %d: empty character class", openPos)
	}
	p.scan() // resync p.look past the class we consumed with scanClass
	if p.err != nil {
		return nil, p.err
	}
	return ast.In{Children: children, Negated: negated}, nil
}
