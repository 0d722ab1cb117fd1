package regex

import "strconv"

// Symbol is a single input character. Epsilon is the only value that is not
// a valid rune, so it can never be produced by decoding an input string.
type Symbol rune

const Epsilon Symbol = -1

// metacharacters
const (
	opConcat = '.'
	opUnion  = '|'
	opStar   = '*'
	lParen   = '('
	rParen   = ')'
)

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

// Quoted is like String but makes whitespace and control characters visible.
func (s Symbol) Quoted() string {
	if s == Epsilon {
		return "ε"
	}
	return strconv.QuoteRune(rune(s))
}

func precedence(op rune) int {
	switch op {
	case opStar:
		return 3
	case opConcat:
		return 2
	case opUnion:
		return 1
	}
	return 0
}
