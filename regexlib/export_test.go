package regexlib

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"testing"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func export(t *testing.T, a *Automaton, f Format) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Export(&buf, a, f); err != nil {
		t.Fatalf("export: %v", err)
	}
	return buf.String()
}

func TestExportTableLiteral(t *testing.T) {
	a := newNFA(t, "a")
	want := ";0;1\n;S0;S1\na;S1;\n"
	if got := export(t, a, FormatTable); got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestExportTableConcat(t *testing.T) {
	a := newNFA(t, "ab")
	want := ";0;0;0;1\n" +
		";S0;S1;S2;S3\n" +
		"a;S1;;;\n" +
		"b;;;S3;\n" +
		"ε;;S2;;\n"
	if got := export(t, a, FormatTable); got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestExportCSVLiteral(t *testing.T) {
	a := newNFA(t, "a")
	want := ",,F\n,S0,S1\na,S1,\n"
	if got := export(t, a, FormatCSV); got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestExportIdempotent(t *testing.T) {
	a := newNFA(t, "(a|b)*c")
	for _, f := range []Format{FormatTable, FormatCSV} {
		first := export(t, a, f)
		second := export(t, a, f)
		if first != second {
			t.Fatalf("format %v: re-export differs:\n%q\n%q", f, first, second)
		}
	}
}

func TestExportGridShapeAgrees(t *testing.T) {
	// both conventions serialize the same grid
	a := newNFA(t, "a+|b")
	table := strings.Split(strings.TrimSuffix(export(t, a, FormatTable), "\n"), "\n")
	records, err := csv.NewReader(strings.NewReader(export(t, a, FormatCSV))).ReadAll()
	if err != nil {
		t.Fatalf("read csv back: %v", err)
	}
	if len(table) != len(records) {
		t.Fatalf("row count differs: %d vs %d", len(table), len(records))
	}
	for i, row := range table {
		if got, want := len(records[i]), strings.Count(row, ";")+1; got != want {
			t.Fatalf("row %d: cell count differs (%d vs %d)", i, got, want)
		}
	}
}

func TestExportStartStateFirst(t *testing.T) {
	a := newNFA(t, "(x|y)z")
	out := export(t, a, FormatTable)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], ";S0;") {
		t.Fatalf("id row must start with S0: %q", lines[1])
	}
}

func TestExportEpsilonRowPresent(t *testing.T) {
	a := newNFA(t, "ab")
	out := export(t, a, FormatTable)
	if !strings.Contains(out, "\nε;") {
		t.Fatalf("concatenation table must contain an ε row: %q", out)
	}
	// bare literal has no ε transitions at all
	out = export(t, newNFA(t, "a"), FormatTable)
	if strings.Contains(out, "ε") {
		t.Fatalf("literal table must not contain an ε row: %q", out)
	}
}

func TestExportDOT(t *testing.T) {
	a := newNFA(t, "a|b")
	var buf bytes.Buffer
	ExportDOT(&buf, a)
	out := buf.String()
	if !strings.HasPrefix(out, "digraph NFA {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("malformed dot output: %q", out)
	}
	for _, want := range []string{`[label="a"]`, `[label="b"]`, `[label="ε"]`, "doublecircle", "_start"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dot output missing %q: %q", want, out)
		}
	}
	var again bytes.Buffer
	ExportDOT(&again, a)
	if again.String() != out {
		t.Fatal("dot export must be deterministic")
	}
}

func TestWriteFile(t *testing.T) {
	path := t.TempDir() + "/nfa.tbl"
	a := newNFA(t, "ab")
	if err := WriteFile(path, a, FormatTable); err != nil {
		t.Fatalf("write: %v", err)
	}
	var buf bytes.Buffer
	if err := Export(&buf, a, FormatTable); err != nil {
		t.Fatalf("export: %v", err)
	}
	got := readFile(t, path)
	if got != buf.String() {
		t.Fatalf("file content differs from direct export")
	}
}
