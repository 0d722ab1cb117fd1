package regex

import (
	"slices"
	"strconv"
	"strings"
)

// StateSet is a set of NFA states kept sorted and free of duplicates, so two
// equal sets always have the same representation.
type StateSet []StateID

func NewStateSet(ids ...StateID) StateSet {
	s := slices.Clone(ids)
	slices.Sort(s)
	return slices.Compact(s)
}

func (s StateSet) Contains(id StateID) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

// Key is the canonical textual form of the set, e.g. "0,3,7".
func (s StateSet) Key() string {
	out := strings.Builder{}
	for i, id := range s {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteString(strconv.Itoa(int(id)))
	}
	return out.String()
}

func (s StateSet) String() string {
	return "{" + s.Key() + "}"
}

// collect returns the marked states in ascending order.
func collect(marked []bool) StateSet {
	var s StateSet
	for id, ok := range marked {
		if ok {
			s = append(s, StateID(id))
		}
	}
	return s
}

func (n *NFA) valid(id StateID) bool {
	return id >= 0 && int(id) < len(n.states)
}

// EpsilonClosure returns every state reachable from set through epsilon
// transitions only, including set itself. Ids in set that are not states of
// n are ignored.
func (n *NFA) EpsilonClosure(set StateSet) StateSet {
	visited := make([]bool, len(n.states))
	work := make([]StateID, 0, len(set))
	for _, id := range set {
		if n.valid(id) && !visited[id] {
			visited[id] = true
			work = append(work, id)
		}
	}

	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		for _, to := range n.states[id].trans[Epsilon] {
			if !visited[to] {
				visited[to] = true
				work = append(work, to)
			}
		}
	}
	return collect(visited)
}

// Move returns the states reachable from set by exactly one transition
// labeled sym. sym must not be Epsilon. Ids in set that are not states of n
// are ignored.
func (n *NFA) Move(set StateSet, sym Symbol) StateSet {
	reached := make([]bool, len(n.states))
	for _, id := range set {
		if !n.valid(id) {
			continue
		}
		for _, to := range n.states[id].trans[sym] {
			reached[to] = true
		}
	}
	return collect(reached)
}

// Accepts simulates the NFA on input directly, tracking the set of active
// states.
func (n *NFA) Accepts(input string) bool {
	cur := n.EpsilonClosure(StateSet{n.start})
	for _, r := range input {
		cur = n.EpsilonClosure(n.Move(cur, Symbol(r)))
		if len(cur) == 0 {
			return false
		}
	}
	return cur.Contains(n.accept)
}
