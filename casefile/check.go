package casefile

import (
	"fmt"

	"github.com/mfroeh/gofa/regex"
)

type Failure struct {
	Case Case
	// Input is empty for failures about the pattern itself
	Input  string
	Engine string
	Reason string
}

func (f Failure) String() string {
	if f.Engine == "" {
		return fmt.Sprintf("%s: pattern %q: %s", f.Case.Source, f.Case.Pattern, f.Reason)
	}
	return fmt.Sprintf("%s: pattern %q, input %q (%s): %s", f.Case.Source, f.Case.Pattern, f.Input, f.Engine, f.Reason)
}

// Check compiles the pattern and runs every expected input through both the
// DFA and the NFA simulation.
func (c Case) Check() []Failure {
	re, err := regex.Compile(c.Pattern)
	if c.Malformed {
		if err == nil {
			return []Failure{{Case: c, Reason: "expected a malformed pattern, but it compiled"}}
		}
		return nil
	}
	if err != nil {
		return []Failure{{Case: c, Reason: err.Error()}}
	}

	var failures []Failure
	verify := func(input string, want bool) {
		engines := []struct {
			name  string
			match func(string) bool
		}{
			{"DFA", re.Match},
			{"NFA", re.MatchNFA},
		}
		for _, e := range engines {
			if got := e.match(input); got != want {
				failures = append(failures, Failure{
					Case:   c,
					Input:  input,
					Engine: e.name,
					Reason: fmt.Sprintf("want %s, got %s", Verdict(want), Verdict(got)),
				})
			}
		}
	}

	for _, s := range c.Accept {
		verify(s, true)
	}
	for _, s := range c.Reject {
		verify(s, false)
	}
	return failures
}

func Verdict(accepted bool) string {
	if accepted {
		return "ACCEPTED"
	}
	return "REJECTED"
}
