package nfa

import (
	"github.com/dekarrin/barbel/internal/ast"
	"github.com/dekarrin/barbel/internal/rgxerr"
)

// Build recursively translates a parse tree into a Fragment by Thompson
// composition, one combinator per node kind.
func Build(node *ast.Node) Fragment {
	switch node.Kind {
	case ast.KindLiteral:
		return Literal(node.Char)
	case ast.KindAny:
		return Any()
	case ast.KindEmpty:
		return Empty()
	case ast.KindConcat:
		if len(node.Children) < 2 {
			panic(rgxerr.Newf(rgxerr.KindInternalInvariantViolation, "Concat node with %d children", len(node.Children)))
		}
		f := Build(node.Children[0])
		for _, child := range node.Children[1:] {
			f = Concat(f, Build(child))
		}
		return f
	case ast.KindAlt:
		if len(node.Children) != 2 {
			panic(rgxerr.Newf(rgxerr.KindInternalInvariantViolation, "Alt node with %d children", len(node.Children)))
		}
		return Union(Build(node.Children[0]), Build(node.Children[1]))
	case ast.KindStar:
		return Star(Build(node.Children[0]))
	case ast.KindPlus:
		return Plus(Build(node.Children[0]))
	case ast.KindQuestion:
		return Question(Build(node.Children[0]))
	default:
		panic(rgxerr.Newf(rgxerr.KindInternalInvariantViolation, "unrecognized parse node kind %v", node.Kind))
	}
}
