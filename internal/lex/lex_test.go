package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/barbel/internal/rgxerr"
)

func Test_Lex(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Token
	}{
		{
			name:   "empty pattern",
			input:  "",
			expect: []Token{},
		},
		{
			name:  "plain literals",
			input: "ab",
			expect: []Token{
				{Kind: Literal, Char: 'a', Pos: 0},
				{Kind: Literal, Char: 'b', Pos: 1},
			},
		},
		{
			name:  "metacharacters",
			input: "a(b|c)*",
			expect: []Token{
				{Kind: Literal, Char: 'a', Pos: 0},
				{Kind: Meta, Char: '(', Pos: 1},
				{Kind: Literal, Char: 'b', Pos: 2},
				{Kind: Meta, Char: '|', Pos: 3},
				{Kind: Literal, Char: 'c', Pos: 4},
				{Kind: Meta, Char: ')', Pos: 5},
				{Kind: Meta, Char: '*', Pos: 6},
			},
		},
		{
			name:  "escaped metacharacter is a literal",
			input: `\*`,
			expect: []Token{
				{Kind: Literal, Char: '*', Pos: 0},
			},
		},
		{
			name:  "escaped ordinary character is still a literal",
			input: `\a`,
			expect: []Token{
				{Kind: Literal, Char: 'a', Pos: 0},
			},
		},
		{
			name:  "dot",
			input: ".",
			expect: []Token{
				{Kind: Meta, Char: '.', Pos: 0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Lex(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Lex_trailingEscape(t *testing.T) {
	assert := assert.New(t)

	_, err := Lex(`a\`)
	if !assert.Error(err) {
		return
	}

	kind, ok := rgxerr.GetKind(err)
	assert.True(ok)
	assert.Equal(rgxerr.KindTrailingEscape, kind)
}
