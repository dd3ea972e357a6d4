// Package lex turns a pattern string into a flat stream of tagged tokens.
package lex

import (
	"fmt"

	"github.com/dekarrin/barbel/internal/rgxerr"
)

// Kind distinguishes a literal character token from a metacharacter token.
type Kind int

const (
	// Literal is a character to be matched verbatim, including an escaped
	// metacharacter.
	Literal Kind = iota
	// Meta is one of the metacharacters '(', ')', '|', '*', '+', '?', '.'.
	Meta
)

func (k Kind) String() string {
	if k == Meta {
		return "Meta"
	}
	return "Literal"
}

// Token is a single lexed unit of a pattern.
type Token struct {
	Kind Kind
	Char byte

	// Pos is the 0-based byte offset in the original pattern this token
	// started at.
	Pos int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%c)@%d", t.Kind, t.Char, t.Pos)
}

// IsMeta reports whether t is a Meta token carrying the given character.
func (t Token) IsMeta(c byte) bool {
	return t.Kind == Meta && t.Char == c
}

// metaSet is the fixed set of metacharacters named by the grammar.
var metaSet = map[byte]bool{
	'(': true,
	')': true,
	'|': true,
	'*': true,
	'+': true,
	'?': true,
	'.': true,
}

// Lex scans pattern left to right and returns its token stream.
//
// A backslash escapes the following byte regardless of its identity,
// producing a Literal; a trailing unescaped backslash at end of input is a
// TrailingEscape error.
func Lex(pattern string) ([]Token, error) {
	tokens := make([]Token, 0, len(pattern))

	i := 0
	for i < len(pattern) {
		start := i
		c := pattern[i]

		if c == '\\' {
			if i+1 >= len(pattern) {
				return nil, rgxerr.At(rgxerr.KindTrailingEscape, start, "trailing escape at end of pattern")
			}
			tokens = append(tokens, Token{Kind: Literal, Char: pattern[i+1], Pos: start})
			i += 2
			continue
		}

		if metaSet[c] {
			tokens = append(tokens, Token{Kind: Meta, Char: c, Pos: start})
		} else {
			tokens = append(tokens, Token{Kind: Literal, Char: c, Pos: start})
		}
		i++
	}

	return tokens, nil
}
