// Package render prints automata as text tables and Graphviz graphs using only
// their public accessors.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/mfroeh/gofa/regex"
)

const noTransition = "-"

func symbolLabel(sym regex.Symbol) string {
	if sym == regex.Epsilon || unicode.IsGraphic(rune(sym)) && !unicode.IsSpace(rune(sym)) {
		return sym.String()
	}
	return sym.Quoted()
}

func joinStates(ids []regex.StateID) string {
	if len(ids) == 0 {
		return noTransition
	}
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(int(id))
	}
	return strings.Join(strs, ",")
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteNFATable writes one row per NFA state with one column for epsilon and
// one per alphabet symbol. A cell lists every target state.
func WriteNFATable(w io.Writer, n *regex.NFA) error {
	fmt.Fprintf(w, "NFA states (total %d)\n", n.NumStates())
	fmt.Fprintf(w, "Start: %d, Accept: %d\n\n", n.Start(), n.Accept())

	columns := append([]regex.Symbol{regex.Epsilon}, n.Alphabet()...)

	tw := newTabWriter(w)
	fmt.Fprint(tw, "State")
	for _, sym := range columns {
		fmt.Fprintf(tw, "\t%s", symbolLabel(sym))
	}
	fmt.Fprintln(tw)

	for i := range n.NumStates() {
		id := regex.StateID(i)
		fmt.Fprint(tw, stateMarker(id == n.Start(), id == n.Accept())+strconv.Itoa(i))
		for _, sym := range columns {
			fmt.Fprintf(tw, "\t%s", joinStates(n.Targets(id, sym)))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteDFATable writes one row per DFA state with the NFA subset it was built
// from, one column per alphabet symbol and whether it accepts.
func WriteDFATable(w io.Writer, d *regex.DFA) error {
	fmt.Fprintf(w, "DFA states (total %d)\n", d.NumStates())
	fmt.Fprintf(w, "Start: %d, Accept: %s\n\n", d.Start(), joinStates(d.Accepting()))

	alphabet := d.Alphabet()

	tw := newTabWriter(w)
	fmt.Fprint(tw, "State\tNFA subset")
	for _, sym := range alphabet {
		fmt.Fprintf(tw, "\t%s", symbolLabel(sym))
	}
	fmt.Fprintln(tw, "\tAccept")

	for i := range d.NumStates() {
		id := regex.StateID(i)
		fmt.Fprintf(tw, "%s%d\t%s", stateMarker(id == d.Start(), d.IsAccepting(id)), i, d.Subset(id))
		for _, sym := range alphabet {
			cell := noTransition
			if to, ok := d.Next(id, sym); ok {
				cell = strconv.Itoa(int(to))
			}
			fmt.Fprintf(tw, "\t%s", cell)
		}
		accept := "NO"
		if d.IsAccepting(id) {
			accept = "YES"
		}
		fmt.Fprintf(tw, "\t%s\n", accept)
	}
	return tw.Flush()
}

// "->" marks the start state, "*" accepting ones
func stateMarker(start, accept bool) string {
	marker := "  "
	if start {
		marker = "->"
	}
	if accept {
		return marker + "*"
	}
	return marker + " "
}
