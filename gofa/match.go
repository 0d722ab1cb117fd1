package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/mfroeh/gofa/casefile"
)

type matchCmd struct {
	PatternFlags
	Inputs []string `arg:"" optional:"" name:"input" help:"Strings to test. If omitted they are read from stdin, one per line, up to the first empty line."`
	Engine string   `enum:"dfa,nfa,both" default:"dfa" help:"Automaton to run (${enum})."`
}

func (c *matchCmd) Run(ctx *kong.Context, stdin io.Reader) error {
	re, err := c.compile()
	if err != nil {
		return err
	}

	inputs := c.Inputs
	if len(inputs) == 0 {
		inputs, err = readInputs(stdin)
		if err != nil {
			return err
		}
	}

	for _, s := range inputs {
		fmt.Fprintf(ctx.Stdout, "'%s' -> ", s)
		switch c.Engine {
		case "nfa":
			printVerdict(ctx.Stdout, re.MatchNFA(s))
		case "both":
			fmt.Fprint(ctx.Stdout, "DFA: ")
			printVerdict(ctx.Stdout, re.Match(s))
			fmt.Fprint(ctx.Stdout, ", NFA: ")
			printVerdict(ctx.Stdout, re.MatchNFA(s))
		default:
			printVerdict(ctx.Stdout, re.Match(s))
		}
		fmt.Fprintln(ctx.Stdout)
	}
	return nil
}

func printVerdict(w io.Writer, accepted bool) {
	if accepted {
		acceptedColor.Fprint(w, casefile.Verdict(true))
	} else {
		rejectedColor.Fprint(w, casefile.Verdict(false))
	}
}

// readInputs reads lines until the first empty one or EOF
func readInputs(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
