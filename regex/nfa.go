package regex

import (
	"maps"
	"slices"
)

// StateID identifies a state within one automaton. Ids are assigned
// sequentially from 0.
type StateID int

type Transition struct {
	From   StateID
	Symbol Symbol
	To     StateID
}

type nfaState struct {
	trans map[Symbol][]StateID
}

// NFA is a Thompson automaton with a single start and a single accept state.
// States are stored in one arena indexed by StateID. An NFA is never modified
// after BuildNFA returns it.
type NFA struct {
	states []nfaState
	start  StateID
	accept StateID
}

func (n *NFA) newState() StateID {
	n.states = append(n.states, nfaState{trans: map[Symbol][]StateID{}})
	return StateID(len(n.states) - 1)
}

func (n *NFA) addTransition(from StateID, sym Symbol, to StateID) {
	n.states[from].trans[sym] = append(n.states[from].trans[sym], to)
}

func (n *NFA) NumStates() int {
	return len(n.states)
}

func (n *NFA) Start() StateID {
	return n.start
}

func (n *NFA) Accept() StateID {
	return n.accept
}

// Targets returns the states reachable from `from` by one transition labeled
// sym, in the order the transitions were added.
func (n *NFA) Targets(from StateID, sym Symbol) []StateID {
	return slices.Clone(n.states[from].trans[sym])
}

// Transitions lists the outgoing transitions of a state ordered by symbol,
// with Epsilon first.
func (n *NFA) Transitions(from StateID) []Transition {
	var ts []Transition
	trans := n.states[from].trans
	for _, sym := range slices.Sorted(maps.Keys(trans)) {
		for _, to := range trans[sym] {
			ts = append(ts, Transition{From: from, Symbol: sym, To: to})
		}
	}
	return ts
}

// Alphabet returns the sorted set of non-epsilon symbols used by any
// transition.
func (n *NFA) Alphabet() []Symbol {
	seen := map[Symbol]struct{}{}
	for _, s := range n.states {
		for sym := range s.trans {
			if sym != Epsilon {
				seen[sym] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
