package regexlib

import (
	"unicode/utf8"
)

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune (plain or escaped)
	tLParen           // (
	tRParen           // )
	tStar             // *
	tPlus             // +
	tUnion            // |
)

type token struct {
	typ tokenType
	ch  rune // for tChar
	pos int  // byte offset of the token start
}

type lexer struct {
	input string
	pos   int
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) next() (token, error) {
	if l.pos >= len(l.input) {
		return token{typ: tEOF, pos: l.pos}, nil
	}
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	switch r {
	case '(':
		return token{typ: tLParen, pos: start}, nil
	case ')':
		return token{typ: tRParen, pos: start}, nil
	case '*':
		return token{typ: tStar, pos: start}, nil
	case '+':
		return token{typ: tPlus, pos: start}, nil
	case '|':
		return token{typ: tUnion, pos: start}, nil
	case '\\':
		if l.pos >= len(l.input) {
			return token{}, syntaxErr(start, "dangling escape")
		}
		// permissive escaping: \x is the literal x for any x,
		// special or not
		r2, s2 := utf8.DecodeRuneInString(l.input[l.pos:])
		l.pos += s2
		return token{typ: tChar, ch: r2, pos: start}, nil
	default:
		return token{typ: tChar, ch: r, pos: start}, nil
	}
}
