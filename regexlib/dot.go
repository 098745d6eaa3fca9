package regexlib

import (
	"fmt"
	"io"
)

// ExportDOT печатает Graphviz-представление НКА в w.
func ExportDOT(w io.Writer, a *Automaton) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, id := range a.StateOrder() {
		shape := "circle"
		if a.IsFinal(id) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)

		for _, sym := range a.SymbolsAt(id) {
			for _, to := range a.Targets(id, sym) {
				fmt.Fprintf(w, "    n%d -> n%d [label=\"%c\"];\n", id, to, sym)
			}
		}
		for _, to := range a.EpsilonTargets(id) {
			fmt.Fprintf(w, "    n%d -> n%d [label=\"ε\"];\n", id, to)
		}
	}

	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", a.Start)
	fmt.Fprintln(w, "}")
}
