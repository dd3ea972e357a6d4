package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/barbel/internal/lex"
	"github.com/dekarrin/barbel/internal/rgxerr"
)

func mustLex(t *testing.T, pattern string) []lex.Token {
	t.Helper()
	toks, err := lex.Lex(pattern)
	if err != nil {
		t.Fatalf("lexing %q: %v", pattern, err)
	}
	return toks
}

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		expect  *Node
	}{
		{
			name:    "empty pattern",
			pattern: "",
			expect:  Empty(),
		},
		{
			name:    "single literal",
			pattern: "a",
			expect:  Literal('a'),
		},
		{
			name:    "concatenation",
			pattern: "ab",
			expect:  Concat(Literal('a'), Literal('b')),
		},
		{
			name:    "three-way concatenation",
			pattern: "abc",
			expect:  Concat(Literal('a'), Literal('b'), Literal('c')),
		},
		{
			name:    "star binds tighter than concat",
			pattern: "ab*",
			expect:  Concat(Literal('a'), Star(Literal('b'))),
		},
		{
			name:    "union is lowest precedence",
			pattern: "a|bc",
			expect:  Alt(Literal('a'), Concat(Literal('b'), Literal('c'))),
		},
		{
			name:    "redundant grouping is transparent",
			pattern: "(((a)))",
			expect:  Literal('a'),
		},
		{
			name:    "question",
			pattern: "a(b|c)?d",
			expect: Concat(
				Literal('a'),
				Question(Alt(Literal('b'), Literal('c'))),
				Literal('d'),
			),
		},
		{
			name:    "plus",
			pattern: "(ab)+",
			expect:  Plus(Concat(Literal('a'), Literal('b'))),
		},
		{
			name:    "leading union synthesizes empty left operand",
			pattern: "|a",
			expect:  Alt(Empty(), Literal('a')),
		},
		{
			name:    "dot survives as Any leaf",
			pattern: ".",
			expect:  Any(),
		},
		{
			name:    "empty group union",
			pattern: "(a|)*b",
			expect:  Concat(Star(Alt(Literal('a'), Empty())), Literal('b')),
		},
		{
			name:    "empty group is elided from concatenation, not synthesized as Empty",
			pattern: "()ab",
			expect:  Concat(Literal('a'), Literal('b')),
		},
		{
			name:    "leading empty group vanishes entirely around redundant grouping",
			pattern: `()(((a)))((((b|c))))?`,
			expect: Concat(
				Literal('a'),
				Question(Alt(Literal('b'), Literal('c'))),
			),
		},
		{
			name:    "lone empty group parses the same as an empty pattern",
			pattern: "()",
			expect:  Empty(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Parse(mustLex(t, tc.pattern))
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Parse_errors(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		expect  rgxerr.Kind
	}{
		{
			name:    "unmatched open paren",
			pattern: "(a",
			expect:  rgxerr.KindUnmatchedOpenParen,
		},
		{
			name:    "unmatched close paren",
			pattern: "a)",
			expect:  rgxerr.KindUnmatchedCloseParen,
		},
		{
			name:    "dangling unary at start",
			pattern: "*a",
			expect:  rgxerr.KindDanglingUnary,
		},
		{
			name:    "dangling unary after union",
			pattern: "a|*",
			expect:  rgxerr.KindDanglingUnary,
		},
		{
			name:    "dangling unary after elided empty group",
			pattern: "()*",
			expect:  rgxerr.KindDanglingUnary,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Parse(mustLex(t, tc.pattern))
			if !assert.Error(err) {
				return
			}
			kind, ok := rgxerr.GetKind(err)
			assert.True(ok)
			assert.Equal(tc.expect, kind)
		})
	}
}
