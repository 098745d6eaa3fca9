package regexlib

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Epsilon labels the ε row of exported tables.
const Epsilon = 'ε'

// Format selects the transition-table serialization convention.
type Format int

const (
	// FormatTable is the semicolon-delimited table: row 1 marks final
	// states with 1/0, row 2 holds state identifiers, then one row per
	// symbol (ε included) with comma-joined target identifiers.
	FormatTable Format = iota
	// FormatCSV is the same grid as CSV, with the final state marked
	// "F" and non-final cells left empty in the first row.
	FormatCSV
)

// Export writes the automaton's transition table to w. The traversal is
// deterministic, so exporting the same automaton twice yields identical
// bytes. States are columns, the start state first; symbols are rows.
func Export(w io.Writer, a *Automaton, f Format) error {
	switch f {
	case FormatTable:
		for _, row := range tableRows(a, "1", "0") {
			if _, err := fmt.Fprintln(w, strings.Join(row, ";")); err != nil {
				return err
			}
		}
		return nil
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(tableRows(a, "F", "")); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("regexlib: unknown export format %d", f)
	}
}

// WriteFile serializes the automaton into path using format f.
func WriteFile(path string, a *Automaton, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(file, a, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// tableRows lays out the export grid: the final-marker row, the id row,
// then one row per symbol with comma-joined sorted target ids per state.
func tableRows(a *Automaton, finalMark, plainMark string) [][]string {
	order := a.StateOrder()
	ids := make(map[StateID]string, len(order))
	for i, s := range order {
		ids[s] = "S" + strconv.Itoa(i)
	}

	markers := []string{""}
	header := []string{""}
	for _, s := range order {
		mark := plainMark
		if a.IsFinal(s) {
			mark = finalMark
		}
		markers = append(markers, mark)
		header = append(header, ids[s])
	}
	rows := [][]string{markers, header}

	symbols := a.Symbols()
	hasEps := false
	for _, s := range order {
		if len(a.EpsilonTargets(s)) > 0 {
			hasEps = true
			break
		}
	}
	if hasEps {
		symbols = append(symbols, Epsilon)
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	}

	for _, sym := range symbols {
		row := []string{string(sym)}
		for _, s := range order {
			var targets []StateID
			if sym == Epsilon {
				targets = a.EpsilonTargets(s)
			} else {
				targets = a.Targets(s, sym)
			}
			names := make([]string, len(targets))
			for i, t := range targets {
				names[i] = ids[t]
			}
			sort.Strings(names)
			row = append(row, strings.Join(names, ","))
		}
		rows = append(rows, row)
	}
	return rows
}
