package regex

// BuildDFA determinizes nfa with the subset construction. Every reachable
// epsilon-closed set of NFA states becomes exactly one DFA state; states are
// numbered in breadth-first discovery order starting with the closure of the
// NFA start as state 0.
func BuildDFA(nfa *NFA) *DFA {
	dfa := &DFA{alphabet: nfa.Alphabet()}

	// canonical subset key -> DFA state
	seen := map[string]StateID{}
	var queue []StateID

	add := func(subset StateSet) StateID {
		id := StateID(len(dfa.states))
		dfa.states = append(dfa.states, dfaState{
			subset: subset,
			accept: subset.Contains(nfa.accept),
			trans:  map[Symbol]StateID{},
		})
		seen[subset.Key()] = id
		queue = append(queue, id)
		return id
	}

	dfa.start = add(nfa.EpsilonClosure(StateSet{nfa.start}))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, sym := range dfa.alphabet {
			closure := nfa.EpsilonClosure(nfa.Move(dfa.states[cur].subset, sym))
			if len(closure) == 0 {
				continue
			}

			to, ok := seen[closure.Key()]
			if !ok {
				to = add(closure)
			}
			dfa.states[cur].trans[sym] = to
		}
	}

	return dfa
}
