package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mfroeh/gofa/regex"
	"github.com/mfroeh/gofa/render"
)

type showCmd struct {
	PatternFlags
	Format string `enum:"table,dot" default:"table" help:"Output format (${enum})."`
	Only   string `enum:"all,nfa,dfa" default:"all" help:"Automaton to print (${enum})."`
	Output string `short:"o" default:"-" help:"File to write to, '-' for stdout."`
}

func (c *showCmd) Run(ctx *kong.Context) error {
	re, err := c.compile()
	if err != nil {
		return err
	}

	if c.Output == "-" {
		return c.write(ctx.Stdout, re)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	if err := c.write(f, re); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *showCmd) write(w io.Writer, re regex.Recognizer) error {
	showNFA := c.Only == "all" || c.Only == "nfa"
	showDFA := c.Only == "all" || c.Only == "dfa"

	if c.Format == "dot" {
		if showNFA {
			if err := render.WriteNFADot(w, re.NFA(), re.Pattern()); err != nil {
				return err
			}
		}
		if showDFA {
			return render.WriteDFADot(w, re.DFA(), re.Pattern())
		}
		return nil
	}

	fmt.Fprintf(w, "pattern:                %s\n", re.Pattern())
	fmt.Fprintf(w, "explicit concatenation: %s\n", re.Normalized())
	fmt.Fprintf(w, "postfix:                %s\n", re.Postfix())

	if showNFA {
		if err := writeSection(w, "NFA", func() error { return render.WriteNFATable(w, re.NFA()) }); err != nil {
			return err
		}
	}
	if showDFA {
		return writeSection(w, "DFA", func() error { return render.WriteDFATable(w, re.DFA()) })
	}
	return nil
}

func writeSection(w io.Writer, title string, body func() error) error {
	headerColor.Fprintf(w, "\n=== %s ===\n", title)
	return body()
}
