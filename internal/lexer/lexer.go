// Package lexer tokenizes a regex pattern source string for
// internal/parser. It never consults the standard library's regexp
// packages — every escape sequence and group-opening form is decoded
// by hand, in the pull-based, rune-at-a-time style of
// CyberCzar01-LABS_4/LAB_2/regexlib/lexer.go, extended with
// multi-character "(?..." lookahead.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/patterngen/stringgen/internal/alphabet"
	"github.com/patterngen/stringgen/internal/ast"
)

// Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota
	Char
	Any
	LParen
	LParenNonCapturing
	LParenNamed
	GroupRefName
	Lookahead
	LookaheadNeg
	RParen
	Star
	Plus
	QMark
	Union
	LBracket
	RBracket
	Dash
	Caret
	Dollar
	LBrace
	RBrace
	Comma
	CategoryTok
	AtTok
	BackRef
)

// Token is a single lexical unit. Not every field is populated for
// every Kind; see the comment on each Kind's producing branch.
type Token struct {
	Kind Kind
	Ch   rune              // Char
	Name string            // LParenNamed, GroupRefName
	Cat  alphabet.Category // CategoryTok
	At   ast.AtKind        // AtTok
	Num  int               // BackRef
	Pos  int               // rune offset the token started at, for error messages
}

// Lexer pulls tokens from a pattern source one at a time.
type Lexer struct {
	src []rune
	pos int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// Pos returns the current rune offset, for embedding in error messages.
func (l *Lexer) Pos() int { return l.pos }

func (l *Lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) peekAt(off int) (rune, bool) {
	i := l.pos + off
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

// PeekRune looks ahead off runes from the current position without
// consuming input. Used by the parser's character-class range
// detection (a-z) which needs to see past the current token's rune
// before deciding whether '-' starts a range or is a literal.
func (l *Lexer) PeekRune(off int) (rune, bool) {
	return l.peekAt(off)
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	return r
}

// Next returns the next token. inClass must be true while the parser
// is scanning the inside of a [...] character class: it changes how
// backslash-digit sequences are treated (literal digit, never a
// backreference, since backreferences inside classes are not part of
// the supported grammar) and lets '-' and ']' retain their ordinary
// token kinds so the parser can interpret them contextually.
func (l *Lexer) Next(inClass bool) (Token, error) {
	pos := l.pos
	r, ok := l.peekRune()
	if !ok {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	switch r {
	case '(':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '(', Pos: pos}, nil
		}
		return l.lexGroupOpen()
	case ')':
		l.advance()
		return Token{Kind: RParen, Pos: pos}, nil
	case '*':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '*', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: Star, Pos: pos}, nil
	case '+':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '+', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: Plus, Pos: pos}, nil
	case '?':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '?', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: QMark, Pos: pos}, nil
	case '|':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '|', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: Union, Pos: pos}, nil
	case '[':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '[', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: LBracket, Pos: pos}, nil
	case ']':
		l.advance()
		return Token{Kind: RBracket, Pos: pos}, nil
	case '-':
		l.advance()
		return Token{Kind: Dash, Pos: pos}, nil
	case '^':
		l.advance()
		return Token{Kind: Caret, Pos: pos}, nil
	case '$':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '$', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: Dollar, Pos: pos}, nil
	case '{':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '{', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: LBrace, Pos: pos}, nil
	case '}':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '}', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: RBrace, Pos: pos}, nil
	case ',':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: ',', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: Comma, Pos: pos}, nil
	case '.':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '.', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: Any, Pos: pos}, nil
	case '\\':
		return l.lexEscape(inClass)
	default:
		l.advance()
		return Token{Kind: Char, Ch: r, Pos: pos}, nil
	}
}

func (l *Lexer) lexGroupOpen() (Token, error) {
	pos := l.pos
	l.advance() // consume '('
	next, ok := l.peekRune()
	if !ok || next != '?' {
		return Token{Kind: LParen, Pos: pos}, nil
	}
	l.advance() // consume '?'
	kind, ok := l.peekRune()
	if !ok {
		return Token{}, errors.Errorf("at offset %d: truncated group after '(?'", pos)
	}
	switch kind {
	case ':':
		l.advance()
		return Token{Kind: LParenNonCapturing, Pos: pos}, nil
	case '=':
		l.advance()
		return Token{Kind: Lookahead, Pos: pos}, nil
	case '!':
		l.advance()
		return Token{Kind: LookaheadNeg, Pos: pos}, nil
	case '<':
		la, _ := l.peekAt(1)
		if la == '=' || la == '!' {
			return Token{}, errors.Errorf("at offset %d: lookbehind is not supported", pos)
		}
		return Token{}, errors.Errorf("at offset %d: unsupported group syntax '(?<'", pos)
	case 'P':
		l.advance() // consume 'P'
		kind2, ok := l.peekRune()
		if !ok {
			return Token{}, errors.Errorf("at offset %d: truncated named group", pos)
		}
		switch kind2 {
		case '<':
			l.advance()
			name, err := l.scanName('>')
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: LParenNamed, Name: name, Pos: pos}, nil
		case '=':
			l.advance()
			name, err := l.scanName(')')
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: GroupRefName, Name: name, Pos: pos}, nil
		default:
			return Token{}, errors.Errorf("at offset %d: unsupported group syntax '(?P%c'", pos, kind2)
		}
	case '(':
		return Token{}, errors.Errorf("at offset %d: conditional backreferences are not supported", pos)
	case '>':
		return Token{}, errors.Errorf("at offset %d: atomic groups are not supported", pos)
	case '#':
		return Token{}, errors.Errorf("at offset %d: comment groups are not supported", pos)
	default:
		return Token{}, errors.Errorf("at offset %d: unsupported group syntax '(?%c'", pos, kind)
	}
}

func (l *Lexer) scanName(terminator rune) (string, error) {
	start := l.pos
	for {
		r, ok := l.peekRune()
		if !ok {
			return "", errors.Errorf("at offset %d: unterminated group name", start)
		}
		if r == terminator {
			name := string(l.src[start:l.pos])
			l.advance()
			if name == "" {
				return "", errors.Errorf("at offset %d: empty group name", start)
			}
			return name, nil
		}
		l.advance()
	}
}

func (l *Lexer) lexEscape(inClass bool) (Token, error) {
	pos := l.pos
	l.advance() // consume '\'
	r, ok := l.peekRune()
	if !ok {
		return Token{}, errors.Errorf("at offset %d: trailing backslash", pos)
	}

	switch r {
	case 'd':
		l.advance()
		return Token{Kind: CategoryTok, Cat: alphabet.Digit, Pos: pos}, nil
	case 'D':
		l.advance()
		return Token{Kind: CategoryTok, Cat: alphabet.NotDigit, Pos: pos}, nil
	case 'w':
		l.advance()
		return Token{Kind: CategoryTok, Cat: alphabet.Word, Pos: pos}, nil
	case 'W':
		l.advance()
		return Token{Kind: CategoryTok, Cat: alphabet.NotWord, Pos: pos}, nil
	case 's':
		l.advance()
		return Token{Kind: CategoryTok, Cat: alphabet.Space, Pos: pos}, nil
	case 'S':
		l.advance()
		return Token{Kind: CategoryTok, Cat: alphabet.NotSpace, Pos: pos}, nil
	case 'b':
		if inClass {
			l.advance()
			return Token{Kind: Char, Ch: '\b', Pos: pos}, nil
		}
		l.advance()
		return Token{Kind: AtTok, At: ast.AtWordBoundary, Pos: pos}, nil
	case 'B':
		l.advance()
		return Token{Kind: AtTok, At: ast.AtNonWordBoundary, Pos: pos}, nil
	case 'n':
		l.advance()
		return Token{Kind: Char, Ch: '\n', Pos: pos}, nil
	case 't':
		l.advance()
		return Token{Kind: Char, Ch: '\t', Pos: pos}, nil
	case 'r':
		l.advance()
		return Token{Kind: Char, Ch: '\r', Pos: pos}, nil
	case 'f':
		l.advance()
		return Token{Kind: Char, Ch: '\f', Pos: pos}, nil
	case 'v':
		l.advance()
		return Token{Kind: Char, Ch: '\v', Pos: pos}, nil
	case 'a':
		l.advance()
		return Token{Kind: Char, Ch: '\a', Pos: pos}, nil
	case 'x':
		l.advance()
		return l.lexHexEscape(pos, 2)
	case 'u':
		l.advance()
		return l.lexHexEscape(pos, 4)
	case 'A', 'Z', 'p', 'P':
		return Token{}, errors.Errorf("at offset %d: unsupported escape '\\%c'", pos, r)
	default:
		if r >= '1' && r <= '9' && !inClass {
			return l.lexBackRef(pos)
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return Token{}, errors.Errorf("at offset %d: unsupported escape '\\%c'", pos, r)
		}
		l.advance()
		return Token{Kind: Char, Ch: r, Pos: pos}, nil
	}
}

func (l *Lexer) lexHexEscape(pos, digits int) (Token, error) {
	start := l.pos
	for i := 0; i < digits; i++ {
		r, ok := l.peekRune()
		if !ok || !isHexDigit(r) {
			return Token{}, errors.Errorf("at offset %d: incomplete escape, want %d hex digits", pos, digits)
		}
		l.advance()
	}
	v, err := strconv.ParseInt(string(l.src[start:l.pos]), 16, 32)
	if err != nil {
		return Token{}, errors.Wrapf(err, "at offset %d: invalid hex escape", pos)
	}
	return Token{Kind: Char, Ch: rune(v), Pos: pos}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// lexBackRef greedily consumes up to two digits after the backslash
// and yields a single numeric backreference, \1 through \99. This
// lexer does not attempt the octal-escape disambiguation real regex
// engines perform for \10 and above.
func (l *Lexer) lexBackRef(pos int) (Token, error) {
	first := l.advance()
	num := int(first - '0')
	if second, ok := l.peekRune(); ok && second >= '0' && second <= '9' {
		candidate := num*10 + int(second-'0')
		if candidate <= 99 {
			l.advance()
			num = candidate
		}
	}
	return Token{Kind: BackRef, Num: num, Pos: pos}, nil
}

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Char:
		return "char"
	case Any:
		return "'.'"
	case LParen:
		return "'('"
	case LParenNonCapturing:
		return "'(?:'"
	case LParenNamed:
		return "'(?P<name>'"
	case GroupRefName:
		return "'(?P=name)'"
	case Lookahead:
		return "'(?='"
	case LookaheadNeg:
		return "'(?!'"
	case RParen:
		return "')'"
	case Star:
		return "'*'"
	case Plus:
		return "'+'"
	case QMark:
		return "'?'"
	case Union:
		return "'|'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Dash:
		return "'-'"
	case Caret:
		return "'^'"
	case Dollar:
		return "'$'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Comma:
		return "','"
	case CategoryTok:
		return "shorthand class"
	case AtTok:
		return "anchor"
	case BackRef:
		return "backreference"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
