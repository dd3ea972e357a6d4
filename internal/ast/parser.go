package ast

import (
	"github.com/dekarrin/barbel/internal/lex"
	"github.com/dekarrin/barbel/internal/rgxerr"
)

// item is one element of a bracket-free span during grouping: either an
// already-built operand, a '|' separator, or a pending unary operator
// waiting to bind to the operand before it.
type item struct {
	node  *Node
	bar   bool
	unary byte // '*', '+', '?', or 0 if not a unary marker
	pos   int
}

// Parse turns a token stream into a parse tree. An empty token list parses
// to a distinguished Empty leaf; an empty group nested inside a larger
// pattern (e.g. the "()" in "()a") contributes no node at all rather than an
// explicit Empty operand, so it vanishes from the surrounding concatenation
// instead of appearing as a child of it.
func Parse(tokens []lex.Token) (*Node, error) {
	stack := [][]item{{}}
	openPos := []int{}

	for _, tok := range tokens {
		switch {
		case tok.IsMeta('('):
			stack = append(stack, []item{})
			openPos = append(openPos, tok.Pos)

		case tok.IsMeta(')'):
			if len(stack) == 1 {
				return nil, rgxerr.Atf(rgxerr.KindUnmatchedCloseParen, tok.Pos, "unmatched ')' at position %d", tok.Pos)
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			openPos = openPos[:len(openPos)-1]

			node, err := bracketFreeParse(group)
			if err != nil {
				return nil, err
			}
			if node != nil {
				top := stack[len(stack)-1]
				stack[len(stack)-1] = append(top, item{node: node, pos: tok.Pos})
			}

		case tok.IsMeta('*'), tok.IsMeta('+'), tok.IsMeta('?'):
			top := stack[len(stack)-1]
			stack[len(stack)-1] = append(top, item{unary: tok.Char, pos: tok.Pos})

		case tok.IsMeta('|'):
			top := stack[len(stack)-1]
			stack[len(stack)-1] = append(top, item{bar: true, pos: tok.Pos})

		case tok.IsMeta('.'):
			top := stack[len(stack)-1]
			stack[len(stack)-1] = append(top, item{node: Any(), pos: tok.Pos})

		default: // Literal
			top := stack[len(stack)-1]
			stack[len(stack)-1] = append(top, item{node: Literal(tok.Char), pos: tok.Pos})
		}
	}

	if len(stack) != 1 {
		pos := openPos[len(openPos)-1]
		return nil, rgxerr.Atf(rgxerr.KindUnmatchedOpenParen, pos, "unmatched '(' at position %d", pos)
	}

	node, err := bracketFreeParse(stack[0])
	if err != nil {
		return nil, err
	}
	if node == nil {
		// The whole pattern was empty (or reduced to nothing but elided
		// groups); the public tree still needs a node to hand to the NFA
		// builder, so the root is the one place an absent span becomes an
		// explicit Empty leaf rather than vanishing.
		return Empty(), nil
	}
	return node, nil
}

// bracketFreeParse applies the unary, concatenation, and union passes to a
// flat span of items with no grouping parentheses remaining. It returns a
// nil Node (not an error) for an empty span: an empty group has no operand
// to contribute, so its caller elides it instead of splicing in an Empty
// child.
func bracketFreeParse(items []item) (*Node, error) {
	if len(items) == 0 {
		return nil, nil
	}

	unaryFolded, err := foldUnary(items)
	if err != nil {
		return nil, err
	}

	concatFolded := foldConcat(unaryFolded)

	return foldUnion(concatFolded), nil
}

// foldUnary binds '*', '+', '?' to the operand immediately preceding them.
func foldUnary(items []item) ([]item, error) {
	out := make([]item, 0, len(items))

	for _, it := range items {
		if it.unary == 0 {
			out = append(out, it)
			continue
		}

		if len(out) == 0 || out[len(out)-1].bar {
			return nil, rgxerr.Atf(rgxerr.KindDanglingUnary, it.pos, "dangling unary operator %q at position %d", it.unary, it.pos)
		}

		last := out[len(out)-1]
		var wrapped *Node
		switch it.unary {
		case '*':
			wrapped = Star(last.node)
		case '+':
			wrapped = Plus(last.node)
		case '?':
			wrapped = Question(last.node)
		}
		out[len(out)-1] = item{node: wrapped, pos: last.pos}
	}

	return out, nil
}

// foldConcat merges every run of adjacent operands (with no '|' between
// them) into a single left-associative Concat node.
func foldConcat(items []item) []item {
	out := make([]item, 0, len(items))

	for _, it := range items {
		if it.bar {
			out = append(out, it)
			continue
		}

		if len(out) > 0 && !out[len(out)-1].bar {
			prev := out[len(out)-1]
			var merged *Node
			if prev.node.Kind == KindConcat {
				children := make([]*Node, len(prev.node.Children), len(prev.node.Children)+1)
				copy(children, prev.node.Children)
				children = append(children, it.node)
				merged = &Node{Kind: KindConcat, Children: children}
			} else {
				merged = Concat(prev.node, it.node)
			}
			out[len(out)-1] = item{node: merged, pos: prev.pos}
			continue
		}

		out = append(out, it)
	}

	return out
}

// foldUnion folds left-associatively over '|' separators, synthesizing an
// Empty leaf for any absent operand.
func foldUnion(items []item) *Node {
	operands := make([]*Node, 0, len(items)/2+1)
	var cur *Node

	for _, it := range items {
		if it.bar {
			operands = append(operands, cur)
			cur = nil
			continue
		}
		cur = it.node
	}
	operands = append(operands, cur)

	for i, o := range operands {
		if o == nil {
			operands[i] = Empty()
		}
	}

	result := operands[0]
	for i := 1; i < len(operands); i++ {
		result = Alt(result, operands[i])
	}
	return result
}
