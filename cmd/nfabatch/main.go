package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/Daniilkaaaa/taifya-lab5/internal/script"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	dir := flag.String("dir", "", "directory for output files")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [-dir out] <script file>", os.Args[0])
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	prog, err := script.Parse(string(data))
	if err != nil {
		log.Fatal(err)
	}

	ctx := &script.Context{Dir: *dir, Log: slog.Default()}
	if err := prog.Exec(ctx); err != nil {
		log.Fatal(err)
	}
}
