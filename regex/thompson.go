package regex

// fragment is a partially built automaton with one entry and one exit state.
// Fragments only exist while BuildNFA runs.
type fragment struct {
	start  StateID
	accept StateID
}

// BuildNFA assembles a Thompson NFA from a postfix pattern as produced by
// ToPostfix. It fails with a *PatternError (matching ErrMalformedPattern) if
// an operator is missing operands, if operands are left over, or if the
// postfix contains a stray parenthesis.
func BuildNFA(postfix string) (*NFA, error) {
	nfa := &NFA{}
	var stack []fragment

	pop := func() fragment {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for i, tok := range []rune(postfix) {
		switch tok {
		case opConcat:
			if len(stack) < 2 {
				return nil, newPatternError(postfix, i, "'.' needs two operands")
			}
			b := pop()
			a := pop()
			nfa.addTransition(a.accept, Epsilon, b.start)
			stack = append(stack, fragment{start: a.start, accept: b.accept})
		case opUnion:
			if len(stack) < 2 {
				return nil, newPatternError(postfix, i, "'|' needs two operands")
			}
			b := pop()
			a := pop()
			s := nfa.newState()
			t := nfa.newState()
			nfa.addTransition(s, Epsilon, a.start)
			nfa.addTransition(s, Epsilon, b.start)
			nfa.addTransition(a.accept, Epsilon, t)
			nfa.addTransition(b.accept, Epsilon, t)
			stack = append(stack, fragment{start: s, accept: t})
		case opStar:
			if len(stack) < 1 {
				return nil, newPatternError(postfix, i, "'*' needs an operand")
			}
			a := pop()
			s := nfa.newState()
			t := nfa.newState()
			nfa.addTransition(s, Epsilon, a.start)
			// zero repetitions
			nfa.addTransition(s, Epsilon, t)
			nfa.addTransition(a.accept, Epsilon, a.start)
			nfa.addTransition(a.accept, Epsilon, t)
			stack = append(stack, fragment{start: s, accept: t})
		case lParen, rParen:
			return nil, newPatternError(postfix, i, "unbalanced parenthesis")
		default:
			s := nfa.newState()
			t := nfa.newState()
			nfa.addTransition(s, Symbol(tok), t)
			stack = append(stack, fragment{start: s, accept: t})
		}
	}

	switch {
	case len(stack) == 0:
		return nil, newPatternError(postfix, -1, "empty pattern")
	case len(stack) > 1:
		return nil, newPatternError(postfix, -1, "missing operator between operands")
	}

	f := pop()
	nfa.start = f.start
	nfa.accept = f.accept
	return nfa, nil
}
