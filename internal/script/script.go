// Package script runs batch build jobs: a small statement language that
// compiles patterns and writes their automata to files.
//
// Example script:
//
//	build "a(b|c)*" to "out.tbl" as table;
//	build "x+|y" to "out.csv" as csv;
//	build "(0|1)*" to "bits.dot" as dot;
//	build "ab+" to "matcher.go" as go;
package script

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/Daniilkaaaa/taifya-lab5/internal/codegen"
	"github.com/Daniilkaaaa/taifya-lab5/regexlib"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Build *Build `parser:"@@ ';'"`
}

type Build struct {
	Pattern string `parser:"'build' @String"`
	Out     string `parser:"'to' @String"`
	Format  string `parser:"'as' @('table'|'csv'|'dot'|'go')"`
}

var parser = participle.MustBuild[Program](participle.Unquote("String"))

func Parse(data string) (*Program, error) {
	return parser.ParseString("script", data)
}

// Context carries the execution environment for a script run.
type Context struct {
	Dir string // output root; empty means paths are taken as written
	Log *slog.Logger
}

func (p *Program) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error { return s.Build.Exec(ctx) }

func (b *Build) Exec(ctx *Context) error {
	a, err := regexlib.Compile(b.Pattern)
	if err != nil {
		return fmt.Errorf("pattern %q: %w", b.Pattern, err)
	}

	out := b.Out
	if ctx.Dir != "" {
		out = filepath.Join(ctx.Dir, b.Out)
	}

	switch b.Format {
	case "table":
		err = regexlib.WriteFile(out, a, regexlib.FormatTable)
	case "csv":
		err = regexlib.WriteFile(out, a, regexlib.FormatCSV)
	case "dot":
		var f *os.File
		if f, err = os.Create(out); err == nil {
			regexlib.ExportDOT(f, a)
			err = f.Close()
		}
	case "go":
		var src []byte
		src, err = codegen.Generate(codegen.Config{
			Name:    matcherName(out),
			Pattern: b.Pattern,
		}, a)
		if err == nil {
			err = os.WriteFile(out, src, 0o644)
		}
	default:
		err = fmt.Errorf("unknown format %q", b.Format)
	}
	if err != nil {
		return fmt.Errorf("pattern %q: %w", b.Pattern, err)
	}

	if ctx.Log != nil {
		ctx.Log.Info("automaton written",
			"pattern", b.Pattern, "file", out, "format", b.Format)
	}
	return nil
}

// matcherName derives a Go identifier suffix from the output file name:
// "token-ids.go" becomes "TokenIds".
func matcherName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if id := codegen.Identifier(base); id != "" {
		return id
	}
	return "Pattern"
}
