package nfa

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Evaluate decides membership of input in the language the NFA describes,
// by classic subset simulation: track the ε-closure of the active state
// set, advance it on each input byte, and accept if any active state is
// accepting once input is exhausted. Matching is full-string; there is no
// anchoring or substring search.
func (n *NFA) Evaluate(input []byte) bool {
	active := n.epsilonClosure(newIntSet(n.Start))

	for _, c := range input {
		advanced := newIntSet()
		active.Each(func(_ int, v interface{}) {
			state := v.(int)
			for _, t := range n.Targets(state, Lit(c)) {
				advanced.Add(t)
			}
			for _, t := range n.Targets(state, Wildcard) {
				advanced.Add(t)
			}
		})
		active = n.epsilonClosure(advanced)
	}

	accept := false
	active.Each(func(_ int, v interface{}) {
		if n.IsAccepting(v.(int)) {
			accept = true
		}
	})
	return accept
}

// epsilonClosure returns the smallest state set containing every state in
// seed and closed under ε-transitions, computed by worklist over a
// presence-tracking ordered set so no state is processed twice.
func (n *NFA) epsilonClosure(seed *treeset.Set) *treeset.Set {
	closure := newIntSet()
	worklist := seed.Values()

	for len(worklist) > 0 {
		v := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		state := v.(int)

		if closure.Contains(state) {
			continue
		}
		closure.Add(state)

		for _, next := range n.Targets(state, Epsilon) {
			if !closure.Contains(next) {
				worklist = append(worklist, next)
			}
		}
	}

	return closure
}

func newIntSet(states ...int) *treeset.Set {
	s := treeset.NewWith(utils.IntComparator)
	for _, st := range states {
		s.Add(st)
	}
	return s
}
