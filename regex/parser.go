package regex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPattern is matched by every error BuildNFA returns.
var ErrMalformedPattern = errors.New("malformed pattern")

type PatternError struct {
	Postfix string
	// Pos is the rune index of the offending token in Postfix, or -1 if the
	// problem was only detected after the last token.
	Pos     int
	message string
}

func (p *PatternError) Error() string {
	if p.Pos < 0 {
		return fmt.Sprintf("malformed pattern %q: %s", p.Postfix, p.message)
	}
	return fmt.Sprintf("malformed pattern %q at %d: %s", p.Postfix, p.Pos, p.message)
}

func (p *PatternError) Unwrap() error {
	return ErrMalformedPattern
}

func newPatternError(postfix string, pos int, msg string) *PatternError {
	return &PatternError{Postfix: postfix, Pos: pos, message: msg}
}

// Normalize makes every concatenation in pattern explicit by inserting '.'
// between two adjacent characters when the first can end an atom and the
// second can begin one. It never fails; malformed input is left for BuildNFA.
func Normalize(pattern string) string {
	rs := []rune(pattern)
	out := strings.Builder{}
	for i, c1 := range rs {
		out.WriteRune(c1)
		if i+1 >= len(rs) {
			continue
		}

		c2 := rs[i+1]
		if endsAtom(c1) && beginsAtom(c2) {
			out.WriteRune(opConcat)
		}
	}
	return out.String()
}

// an explicit '.' is a binary operator just like '|', so it neither ends nor
// begins an atom
func endsAtom(c rune) bool {
	return c != opUnion && c != lParen && c != opConcat
}

func beginsAtom(c rune) bool {
	return c != opUnion && c != rParen && c != opStar && c != opConcat
}

// ToPostfix converts a normalized pattern to postfix with the shunting-yard
// algorithm. Precedence from high to low: '*', '.', '|'.
//
// Unbalanced parentheses are not reported here. An unmatched ')' is copied to
// the output and an unmatched '(' is flushed from the stack at the end, so the
// result is rejected by BuildNFA.
func ToPostfix(pattern string) string {
	out := strings.Builder{}
	var ops []rune

	pop := func() rune {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return op
	}

	for _, c := range pattern {
		switch c {
		case lParen:
			ops = append(ops, c)
		case rParen:
			for len(ops) > 0 && ops[len(ops)-1] != lParen {
				out.WriteRune(pop())
			}
			if len(ops) == 0 {
				out.WriteRune(rParen)
				continue
			}
			// discard '('
			pop()
		case opStar:
			// postfix unary, its operand has already been emitted
			ops = append(ops, c)
		case opConcat, opUnion:
			for len(ops) > 0 && precedence(ops[len(ops)-1]) > precedence(c) {
				out.WriteRune(pop())
			}
			ops = append(ops, c)
		default:
			out.WriteRune(c)
		}
	}

	for len(ops) > 0 {
		out.WriteRune(pop())
	}
	return out.String()
}
