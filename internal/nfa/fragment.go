// Package nfa builds and simulates Thompson-construction NFAs from a parse
// tree.
//
// A Fragment is the "plan" representation used while composing: a flat
// transition list plus bookkeeping for the start state and accepting set,
// cheap to renumber via Offset. Finalize turns a completed Fragment into the
// adjacency-keyed NFA used for simulation.
package nfa

import "github.com/dekarrin/barbel/internal/rgxerr"

// Symbol is a transition label: either a literal byte (0-255), Epsilon, or
// Wildcard (matches the '.' leaf).
type Symbol int32

const (
	// Epsilon consumes no input.
	Epsilon Symbol = -1
	// Wildcard matches any single input byte.
	Wildcard Symbol = -2
)

// Lit returns the Symbol for the literal byte c.
func Lit(c byte) Symbol {
	return Symbol(c)
}

// Transition is one edge (from, to, symbol) in a Fragment's flat plan.
type Transition struct {
	From   int
	To     int
	Symbol Symbol
}

// Fragment is the composition-friendly "plan" representation of an NFA: N
// states numbered 0..N-1, a single start state, an accepting set, and a flat
// transition list. Combinators return new Fragments and leave their inputs
// unchanged.
type Fragment struct {
	N      int
	Start  int
	Accept []int
	Trans  []Transition
}

// Offset returns a copy of f with every state ID (start, accepting set, and
// every transition endpoint) shifted by +k. k must be non-negative.
func Offset(f Fragment, k int) Fragment {
	if k < 0 {
		panic(rgxerr.Newf(rgxerr.KindInternalInvariantViolation, "negative offset %d", k))
	}
	if k == 0 {
		return f
	}

	accept := make([]int, len(f.Accept))
	for i, a := range f.Accept {
		accept[i] = a + k
	}

	trans := make([]Transition, len(f.Trans))
	for i, t := range f.Trans {
		trans[i] = Transition{From: t.From + k, To: t.To + k, Symbol: t.Symbol}
	}

	return Fragment{
		N:      f.N,
		Start:  f.Start + k,
		Accept: accept,
		Trans:  trans,
	}
}

// Literal builds the two-state fragment matching a single literal byte c.
func Literal(c byte) Fragment {
	return Fragment{
		N:      2,
		Start:  0,
		Accept: []int{1},
		Trans:  []Transition{{From: 0, To: 1, Symbol: Lit(c)}},
	}
}

// Any builds the two-state fragment matching any single byte (the '.'
// leaf), as a dedicated wildcard transition rather than a fanned-out
// per-byte transition table.
func Any() Fragment {
	return Fragment{
		N:      2,
		Start:  0,
		Accept: []int{1},
		Trans:  []Transition{{From: 0, To: 1, Symbol: Wildcard}},
	}
}

// Empty builds the two-state fragment matching the empty string via a
// single ε transition.
func Empty() Fragment {
	return Fragment{
		N:      2,
		Start:  0,
		Accept: []int{1},
		Trans:  []Transition{{From: 0, To: 1, Symbol: Epsilon}},
	}
}

// Concat builds the concatenation of a followed by b: b's states are
// offset past a's, every accepting state of a gets an ε edge to b's start,
// and the result accepts wherever b accepts.
func Concat(a, b Fragment) Fragment {
	bOff := Offset(b, a.N)

	trans := make([]Transition, 0, len(a.Trans)+len(bOff.Trans)+len(a.Accept))
	trans = append(trans, a.Trans...)
	trans = append(trans, bOff.Trans...)
	for _, acc := range a.Accept {
		trans = append(trans, Transition{From: acc, To: bOff.Start, Symbol: Epsilon})
	}

	return Fragment{
		N:      a.N + b.N,
		Start:  a.Start,
		Accept: bOff.Accept,
		Trans:  trans,
	}
}

// Union builds the union of a and b behind a fresh start state with ε edges
// to each.
func Union(a, b Fragment) Fragment {
	bOff := Offset(b, a.N)
	newStart := a.N + b.N

	trans := make([]Transition, 0, len(a.Trans)+len(bOff.Trans)+2)
	trans = append(trans, a.Trans...)
	trans = append(trans, bOff.Trans...)
	trans = append(trans,
		Transition{From: newStart, To: a.Start, Symbol: Epsilon},
		Transition{From: newStart, To: bOff.Start, Symbol: Epsilon},
	)

	accept := make([]int, 0, len(a.Accept)+len(bOff.Accept))
	accept = append(accept, a.Accept...)
	accept = append(accept, bOff.Accept...)

	return Fragment{
		N:      a.N + b.N + 1,
		Start:  newStart,
		Accept: accept,
		Trans:  trans,
	}
}

// Star builds the Kleene closure of a: zero or more repetitions.
func Star(a Fragment) Fragment {
	newStart := a.N

	trans := make([]Transition, 0, len(a.Trans)+len(a.Accept)+1)
	trans = append(trans, a.Trans...)
	trans = append(trans, Transition{From: newStart, To: a.Start, Symbol: Epsilon})
	for _, acc := range a.Accept {
		trans = append(trans, Transition{From: acc, To: a.Start, Symbol: Epsilon})
	}

	accept := make([]int, 0, len(a.Accept)+1)
	accept = append(accept, newStart)
	accept = append(accept, a.Accept...)

	return Fragment{
		N:      a.N + 1,
		Start:  newStart,
		Accept: accept,
		Trans:  trans,
	}
}

// Plus builds one-or-more repetitions of a, equivalent to Concat(a,
// Star(a)). Concat's own offsetting gives the inner Star(a) a state range
// disjoint from a's, so the two copies of a never share IDs.
func Plus(a Fragment) Fragment {
	return Concat(a, Star(a))
}

// Question builds zero-or-one of a, equivalent to Union(a, Empty()).
func Question(a Fragment) Fragment {
	return Union(a, Empty())
}
