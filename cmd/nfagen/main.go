// ===== cmd/nfagen/main.go =====
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Daniilkaaaa/taifya-lab5/internal/codegen"
	"github.com/Daniilkaaaa/taifya-lab5/regexlib"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("nfagen", flag.ExitOnError)
	pattern := fs.String("re", "", "pattern (обязателен)")
	outFile := fs.String("o", "nfa.tbl", "output file, - for stdout")
	format := fs.String("format", "table", "output format: table, csv, dot or go")
	name := fs.String("name", "Pattern", "matcher name for -format go")
	pkg := fs.String("pkg", "main", "package clause for -format go")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: nfagen -re <pattern> [-format table|csv|dot|go] [-o file]")
		fs.PrintDefaults()
		os.Exit(2)
	}

	a, err := regexlib.Compile(*pattern)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch *format {
	case "table":
		err = regexlib.Export(&buf, a, regexlib.FormatTable)
	case "csv":
		err = regexlib.Export(&buf, a, regexlib.FormatCSV)
	case "dot":
		regexlib.ExportDOT(&buf, a)
	case "go":
		var src []byte
		src, err = codegen.Generate(codegen.Config{
			Package: *pkg,
			Name:    *name,
			Pattern: *pattern,
		}, a)
		buf.Write(src)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		return err
	}

	if *outFile == "-" {
		_, err = io.Copy(stdout, &buf)
		return err
	}

	f, err := os.Create(*outFile)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", *outFile, err)
	}
	if _, err := io.Copy(f, &buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("automaton written",
		"pattern", *pattern, "states", a.NumStates(), "file", *outFile, "format", *format)
	return nil
}
