package regex

import (
	"fmt"
	"unicode/utf8"
)

// Recognizer holds every stage of a compiled pattern: the normalized and
// postfix forms, the Thompson NFA and the DFA built from it.
type Recognizer struct {
	pattern    string
	normalized string
	postfix    string
	nfa        *NFA
	dfa        *DFA
}

type Match struct {
	Offset int
	Str    string
}

func Compile(pattern string) (Recognizer, error) {
	normalized := Normalize(pattern)
	postfix := ToPostfix(normalized)

	nfa, err := BuildNFA(postfix)
	if err != nil {
		return Recognizer{}, fmt.Errorf("failed to construct NFA from %q: %w", pattern, err)
	}

	return Recognizer{
		pattern:    pattern,
		normalized: normalized,
		postfix:    postfix,
		nfa:        nfa,
		dfa:        BuildDFA(nfa),
	}, nil
}

func MustCompile(pattern string) Recognizer {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

func (re Recognizer) Pattern() string    { return re.pattern }
func (re Recognizer) Normalized() string { return re.normalized }
func (re Recognizer) Postfix() string    { return re.postfix }
func (re Recognizer) NFA() *NFA          { return re.nfa }
func (re Recognizer) DFA() *DFA          { return re.dfa }

// Match reports whether the whole of s is in the language of the pattern.
func (re Recognizer) Match(s string) bool {
	return re.dfa.Accepts(s)
}

// MatchNFA is like Match but simulates the NFA instead of walking the DFA.
func (re Recognizer) MatchNFA(s string) bool {
	return re.nfa.Accepts(s)
}

// FindAll finds up to maxCount non-overlapping, non-empty substrings of s
// that the pattern matches, scanning left to right and taking the longest
// match at each position.
// To return all matches pass a maxCount of -1
func (re Recognizer) FindAll(s string, maxCount int) []Match {
	var matches []Match
	for i := 0; i < len(s); {
		if maxCount != -1 && len(matches) >= maxCount {
			return matches
		}

		end, ok := re.dfa.longestPrefix(s[i:])
		if ok && end > 0 {
			matches = append(matches, Match{Offset: i, Str: s[i : i+end]})
			i += end
			continue
		}

		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return matches
}

func (re Recognizer) FindFirst(s string) (Match, bool) {
	matches := re.FindAll(s, 1)
	if len(matches) < 1 {
		return Match{}, false
	}
	return matches[0], true
}
