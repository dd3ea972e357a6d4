// Package barbel compiles small regular expressions into Thompson NFAs and
// simulates them against candidate input strings.
//
// The surface is deliberately three operations: Compile, Evaluate, and the
// debug-only FormatParseTree. CompileCached layers a memoizing cache on top
// of Compile for callers who can't easily hang onto the compiled NFA
// themselves.
package barbel

import (
	"sync"

	"github.com/cnf/structhash"

	"github.com/dekarrin/barbel/internal/ast"
	"github.com/dekarrin/barbel/internal/lex"
	"github.com/dekarrin/barbel/internal/nfa"
)

// NFA is a compiled pattern, immutable and safe to evaluate concurrently
// from multiple goroutines.
type NFA = nfa.NFA

// Compile lexes, parses, and builds pattern into an NFA. It returns a
// *rgxerr.PatternError on any lex or parse failure.
func Compile(pattern string) (*NFA, error) {
	tokens, err := lex.Lex(pattern)
	if err != nil {
		return nil, err
	}

	tree, err := ast.Parse(tokens)
	if err != nil {
		return nil, err
	}

	fragment := nfa.Build(tree)
	return nfa.Finalize(fragment), nil
}

// Evaluate reports whether input, taken as a whole, is a member of the
// language n describes. There is no anchoring or substring search: the
// entire string must be consumed and land on an accepting state.
func Evaluate(n *NFA, input string) bool {
	return n.Evaluate([]byte(input))
}

// FormatParseTree renders pattern's parse tree in the debug ASCII-art
// format, for tests and diagnostics only. It is not part of the compile
// pipeline.
func FormatParseTree(pattern string) (string, error) {
	tokens, err := lex.Lex(pattern)
	if err != nil {
		return "", err
	}
	tree, err := ast.Parse(tokens)
	if err != nil {
		return "", err
	}
	return ast.FormatParseTree(tree), nil
}

var compileCache sync.Map // string (structhash key) -> *NFA

// CompileCached is Compile with a process-wide memoization cache keyed by
// the pattern's structural hash, for callers that compile the same pattern
// repeatedly and don't want to manage their own cache of NFAs.
func CompileCached(pattern string) (*NFA, error) {
	key, err := structhash.Hash(struct{ Pattern string }{Pattern: pattern}, 1)
	if err != nil {
		// structhash.Hash only fails on unhashable input; a string field
		// never triggers that, but fall back to a fresh compile rather than
		// panic on an API guarantee we can't fully trust.
		return Compile(pattern)
	}

	if cached, ok := compileCache.Load(key); ok {
		return cached.(*NFA), nil
	}

	compiled, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := compileCache.LoadOrStore(key, compiled)
	return actual.(*NFA), nil
}
