package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatParseTree(t *testing.T) {
	tree := Concat(
		Concat(Literal('1'), Literal('2')),
		Alt(Literal('3'), Literal('4')),
	)

	expect := "cNN---cNN---NN1\n" +
		"|     |\n" +
		"|     +-----NN2\n" +
		"|\n" +
		"+-----|NN---NN3\n" +
		"      |\n" +
		"      +-----NN4"

	assert.Equal(t, expect, FormatParseTree(tree))
}

func Test_FormatParseTree_leaves(t *testing.T) {
	testCases := []struct {
		name   string
		node   *Node
		expect string
	}{
		{name: "literal", node: Literal('x'), expect: "NNx"},
		{name: "any", node: Any(), expect: "N.N"},
		{name: "empty", node: Empty(), expect: "NN_"},
		{name: "star", node: Star(Literal('a')), expect: "*NN---NNa"},
		{name: "plus", node: Plus(Literal('a')), expect: "+NN---NNa"},
		{name: "question", node: Question(Literal('a')), expect: "?NN---NNa"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, FormatParseTree(tc.node))
		})
	}
}
