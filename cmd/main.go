package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kirinokirino/xxd/pkg/chunk"
	"github.com/kirinokirino/xxd/pkg/config"
	"github.com/kirinokirino/xxd/pkg/hextext"
	"github.com/kirinokirino/xxd/pkg/hexview"
	"github.com/kirinokirino/xxd/pkg/sink"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 1. configuration: nothing is read before it is valid
	cfg, err := config.Load(args)
	if err != nil {
		if !errors.Is(err, config.ErrUsage) {
			fmt.Fprintf(stderr, "xxd: %v\n\n", err)
		}
		fmt.Fprint(stderr, config.Usage)
		return exitUsage
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if cfg.File != "" {
		log.Debug("config file loaded", "path", cfg.File)
	}

	// 2. whole file in one read
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		fmt.Fprintf(stderr, "xxd: %v\n", err)
		return exitFailed
	}
	log.Debug("input read", "path", cfg.Input, "size", len(data), "mode", cfg.Mode)

	// 3. render or reverse
	if err := process(stdout, data, cfg.Mode, cfg.Color, log); err != nil {
		fmt.Fprintf(stderr, "xxd: %v\n", err)
		return exitFailed
	}
	return exitOK
}

func process(w io.Writer, data []byte, mode hexview.Mode, colored bool, log *slog.Logger) error {
	if mode == hexview.Reverse {
		return reverse(w, data, log)
	}

	p, err := hexview.NewPrinter(mode, colored)
	if err != nil {
		return err
	}

	out := sink.New(w, sink.Strict, log)
	r := chunk.NewReader(data)
	for g, ok := r.Next(); ok; g, ok = r.Next() {
		if err := out.Emit(g.Index, []byte(p.Render(g))); err != nil {
			return err
		}
	}
	log.Debug("dump done", "groups", out.Groups(), "written", out.Written())
	return nil
}

// reverse decodes the whole input and writes it back one group at a time.
// A failed group is logged and skipped so the rest of the output survives.
func reverse(w io.Writer, data []byte, log *slog.Logger) error {
	decoded := hextext.Parse(data)

	out := sink.New(w, sink.Lenient, log)
	r := chunk.NewReader(decoded)
	for g, ok := r.Next(); ok; g, ok = r.Next() {
		// lenient: never returns an error
		_ = out.Emit(g.Index, g.Bytes)
	}
	log.Debug("reverse done", "decoded", len(decoded), "written", out.Written())

	if n := out.Failures(); n > 0 {
		return fmt.Errorf("%d of %d groups could not be written", n, out.Groups())
	}
	return nil
}
