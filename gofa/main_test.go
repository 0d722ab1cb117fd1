package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/mfroeh/gofa/regex"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var c cli
	out := strings.Builder{}
	parser, err := newParser(&c, strings.NewReader(stdin), kong.Writers(&out, &out), kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	err = ctx.Run()
	return out.String(), err
}

func TestShow(t *testing.T) {
	// when
	got, err := run(t, "", "show", "--only=nfa", "a")
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	// then
	want := "pattern:                a\n" +
		"explicit concatenation: a\n" +
		"postfix:                a\n" +
		"\n=== NFA ===\n" +
		"NFA states (total 2)\n" +
		"Start: 0, Accept: 1\n" +
		"\n" +
		"State  ε  a\n" +
		"-> 0   -  1\n" +
		"  *1   -  -\n"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}

func TestShowDot(t *testing.T) {
	got, err := run(t, "", "show", "--format=dot", "a|b")
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	if !strings.HasPrefix(got, "digraph NFA {\n") {
		t.Errorf("want the NFA graph first, got %q", got)
	}
	if !strings.Contains(got, "digraph DFA {\n") {
		t.Errorf("want a DFA graph, got %q", got)
	}
}

func TestShowToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfa.dot")

	got, err := run(t, "", "show", "--format=dot", "--only=dfa", "-o", path, "a*")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if got != "" {
		t.Errorf("want nothing on stdout, got %q", got)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), "digraph DFA {\n") {
		t.Errorf("want a DFA graph, got %q", content)
	}
}

func TestShowReportsWriteErrors(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("needs /dev/full")
	}

	_, err := run(t, "", "show", "-o", "/dev/full", "a")
	if err == nil {
		t.Fatalf("want an error")
	}
}

func TestShowToMissingDir(t *testing.T) {
	_, err := run(t, "", "show", "-o", filepath.Join(t.TempDir(), "missing", "out.txt"), "a")
	if err == nil {
		t.Fatalf("want an error")
	}
}

func TestShowMalformed(t *testing.T) {
	_, err := run(t, "", "show", "a||b")
	if err == nil {
		t.Fatalf("want an error")
	}
}

func TestMatch(t *testing.T) {
	tests := map[string]struct {
		givenStdin string
		givenArgs  []string
		want       string
	}{
		"inputs as arguments": {
			givenArgs: []string{"match", "(a|b)*abb", "abb", "ab"},
			want:      "'abb' -> ACCEPTED\n'ab' -> REJECTED\n",
		},
		"inputs from stdin": {
			givenStdin: "abb\naabb\n\nabb\n",
			givenArgs:  []string{"match", "(a|b)*abb"},
			want:       "'abb' -> ACCEPTED\n'aabb' -> ACCEPTED\n",
		},
		"spaces are stripped from the pattern": {
			givenArgs: []string{"match", "a | b", "b"},
			want:      "'b' -> ACCEPTED\n",
		},
		"spaces are kept": {
			givenArgs: []string{"match", "--keep-space", "a b", "a b", "ab"},
			want:      "'a b' -> ACCEPTED\n'ab' -> REJECTED\n",
		},
		"both engines": {
			givenArgs: []string{"match", "--engine=both", "a*", "aa", "b"},
			want:      "'aa' -> DFA: ACCEPTED, NFA: ACCEPTED\n'b' -> DFA: REJECTED, NFA: REJECTED\n",
		},
		"nfa engine": {
			givenArgs: []string{"match", "--engine=nfa", "ab", "ab"},
			want:      "'ab' -> ACCEPTED\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			got, err := run(t, tt.givenStdin, tt.givenArgs...)
			if err != nil {
				t.Fatalf("match: %v", err)
			}

			// then
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	passing := filepath.Join(dir, "pass.txt")
	failing := filepath.Join(dir, "fail.yaml")
	if err := os.WriteFile(passing, []byte("pattern \"a*\" {\n\taccept \"\" \"aaa\"\n\treject \"b\"\n}\npattern \"(\" { malformed }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(failing, []byte("- pattern: \"a\"\n  accept: [\"b\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := run(t, "", "check", passing)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if d := cmp.Diff("ok: 2 cases\n", got); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}

	got, err = run(t, "", "check", passing, failing)
	if err == nil {
		t.Fatalf("want an error")
	}
	wantOut := "FAIL " + failing + `[0]: pattern "a", input "b" (DFA): want ACCEPTED, got REJECTED` + "\n" +
		"FAIL " + failing + `[0]: pattern "a", input "b" (NFA): want ACCEPTED, got REJECTED` + "\n"
	if d := cmp.Diff(wantOut, got); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
	if d := cmp.Diff("1 of 3 cases failed", err.Error()); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}

func TestGrep(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("xx ab yy ab\nnothing here\nab\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("no match\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// when
	got, err := run(t, "", "grep", "ab", dir)
	if err != nil {
		t.Fatalf("grep: %v", err)
	}

	// then
	want := path + " :\n" +
		"1:xx ab yy ab\n" +
		"3:ab\n" +
		"\n"
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}

func TestGrepMissingPath(t *testing.T) {
	_, err := run(t, "", "grep", "ab", filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatalf("want an error")
	}
}

func TestHighlight(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	re := regex.MustCompile("ab")
	line := "xabyab"

	// when
	got := highlight(line, re.FindAll(line, -1))

	// then
	want := strings.Builder{}
	want.WriteString("x")
	matchColor.Fprint(&want, "ab")
	want.WriteString("y")
	matchColor.Fprint(&want, "ab")
	if d := cmp.Diff(want.String(), got); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
}

func TestStripSpace(t *testing.T) {
	tests := map[string]struct {
		given string
		want  string
	}{
		"no space":   {given: "(a|b)*", want: "(a|b)*"},
		"spaces":     {given: " ( a | b ) * ", want: "(a|b)*"},
		"tabs":       {given: "a\tb\n", want: "ab"},
		"only space": {given: "  ", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, stripSpace(tt.given)); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestReadInputs(t *testing.T) {
	tests := map[string]struct {
		given string
		want  []string
	}{
		"stops at empty line": {given: "a\nb\n\nc\n", want: []string{"a", "b"}},
		"until eof":           {given: "a\nb", want: []string{"a", "b"}},
		"empty":               {given: "", want: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := readInputs(strings.NewReader(tt.given))
			if err != nil {
				t.Fatalf("readInputs: %v", err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}
