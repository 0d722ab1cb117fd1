package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mfroeh/gofa/regex"
)

type graphviz struct {
	nodes []string
	edges []string
}

func (g *graphviz) addNode(id regex.StateID, start, accept bool) {
	shape := "circle"
	if accept {
		shape = "doublecircle"
	}
	g.nodes = append(g.nodes, fmt.Sprintf("\ts%d [shape=%s];\n", id, shape))
	if start {
		g.nodes = append(g.nodes, fmt.Sprintf("\t_start [shape=point]; _start -> s%d;\n", id))
	}
}

func (g *graphviz) addEdge(t regex.Transition) {
	g.edges = append(g.edges, fmt.Sprintf("\ts%d -> s%d [label=\"%s\"];\n", t.From, t.To, dotEscape(symbolLabel(t.Symbol))))
}

func (g *graphviz) write(w io.Writer, name, title string) error {
	_, err := fmt.Fprintf(w, "digraph %s {\n\trankdir=LR;\n", name)
	if err != nil {
		return err
	}
	slices.Sort(g.nodes)
	for _, s := range g.nodes {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	slices.Sort(g.edges)
	for _, s := range g.edges {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "\tlabelloc=\"t\";\n\tlabel=\"%s: %s\";\n}\n", name, dotEscape(title))
	return err
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// WriteNFADot writes the NFA as a Graphviz digraph titled title.
func WriteNFADot(w io.Writer, n *regex.NFA, title string) error {
	g := &graphviz{}
	for i := range n.NumStates() {
		id := regex.StateID(i)
		g.addNode(id, id == n.Start(), id == n.Accept())
		for _, t := range n.Transitions(id) {
			g.addEdge(t)
		}
	}
	return g.write(w, "NFA", title)
}

// WriteDFADot writes the DFA as a Graphviz digraph titled title.
func WriteDFADot(w io.Writer, d *regex.DFA, title string) error {
	g := &graphviz{}
	for i := range d.NumStates() {
		id := regex.StateID(i)
		g.addNode(id, id == d.Start(), d.IsAccepting(id))
		for _, t := range d.Transitions(id) {
			g.addEdge(t)
		}
	}
	return g.write(w, "DFA", title)
}
