package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mfroeh/gofa/regex"
)

var (
	acceptedColor = color.New(color.FgGreen)
	rejectedColor = color.New(color.FgRed)
	matchColor    = color.New(color.FgRed, color.Bold)
	headerColor   = color.New(color.Bold)
)

type cli struct {
	Show  showCmd  `cmd:"" help:"Print the rewritten pattern and the NFA and DFA built from it."`
	Match matchCmd `cmd:"" help:"Test whole strings against a pattern."`
	Check checkCmd `cmd:"" help:"Run the cases in one or more case files."`
	Grep  grepCmd  `cmd:"" help:"Recursively search files for lines containing a match."`
}

type PatternFlags struct {
	Pattern   string `arg:"" name:"pattern" help:"Regex over literals, '.', '|', '*' and '()'" type:"string"`
	KeepSpace bool   `help:"Keep whitespace in the pattern instead of stripping it."`
}

func (p PatternFlags) compile() (regex.Recognizer, error) {
	pattern := p.Pattern
	if !p.KeepSpace {
		pattern = stripSpace(pattern)
	}
	return regex.Compile(pattern)
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func newParser(c *cli, stdin io.Reader, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("gofa"),
		kong.Description("Builds a Thompson NFA and a subset construction DFA from a regular expression and runs them."),
		kong.UsageOnError(),
		kong.BindTo(stdin, (*io.Reader)(nil)),
	}, options...)
	return kong.New(c, options...)
}

func main() {
	var c cli
	parser, err := newParser(&c, os.Stdin)
	if err != nil {
		log.Fatalf("failed to build command line parser: %v", err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
