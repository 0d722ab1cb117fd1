package regex

import (
	"maps"
	"slices"
	"unicode/utf8"
)

type dfaState struct {
	// the NFA states this state stands for
	subset StateSet
	accept bool
	trans  map[Symbol]StateID
}

// DFA is a deterministic automaton produced by BuildDFA. Its transition table
// is partial: a missing entry rejects. A DFA is never modified after
// BuildDFA returns it.
type DFA struct {
	states   []dfaState
	alphabet []Symbol
	start    StateID
}

func (d *DFA) NumStates() int {
	return len(d.states)
}

func (d *DFA) Start() StateID {
	return d.start
}

func (d *DFA) IsAccepting(id StateID) bool {
	return d.states[id].accept
}

func (d *DFA) Accepting() []StateID {
	var ids []StateID
	for id, s := range d.states {
		if s.accept {
			ids = append(ids, StateID(id))
		}
	}
	return ids
}

// Subset returns the set of NFA states the DFA state was built from.
func (d *DFA) Subset(id StateID) StateSet {
	return slices.Clone(d.states[id].subset)
}

func (d *DFA) Next(from StateID, sym Symbol) (StateID, bool) {
	to, ok := d.states[from].trans[sym]
	return to, ok
}

// Transitions lists the outgoing transitions of a state ordered by symbol.
func (d *DFA) Transitions(from StateID) []Transition {
	trans := d.states[from].trans
	ts := make([]Transition, 0, len(trans))
	for _, sym := range slices.Sorted(maps.Keys(trans)) {
		ts = append(ts, Transition{From: from, Symbol: sym, To: trans[sym]})
	}
	return ts
}

// Alphabet returns the sorted symbols of the NFA the DFA was built from.
func (d *DFA) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

// Accepts walks the transition table over input and reports whether it ends
// in an accepting state. It stops at the first symbol without a transition.
func (d *DFA) Accepts(input string) bool {
	cur := d.start
	for _, r := range input {
		next, ok := d.states[cur].trans[Symbol(r)]
		if !ok {
			return false
		}
		cur = next
	}
	return d.states[cur].accept
}

// longestPrefix returns the byte length of the longest prefix of s the DFA
// accepts, or false if there is none.
func (d *DFA) longestPrefix(s string) (int, bool) {
	cur := d.start
	end, found := 0, d.states[cur].accept
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		next, ok := d.states[cur].trans[Symbol(r)]
		if !ok {
			break
		}
		cur = next
		i += size
		if d.states[cur].accept {
			end = i
			found = true
		}
	}
	return end, found
}
