// Command fieldreport renders a report document (JSON or YAML) to a PDF.
//
// # Usage
//
//	fieldreport -in walkdown.yaml -out walkdown.pdf [-config fieldreport.yaml] [-watch] [-v]
//
// Without -out the PDF is written to standard output, unless standard output
// is a terminal. Relative image paths in the document are resolved against the
// document's directory. With -watch the report is regenerated whenever the
// document or the config file changes.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lvillar/fieldreport/config"
	"github.com/lvillar/fieldreport/report"
	"github.com/lvillar/fieldreport/reportdoc"
)

type options struct {
	in, out, config string
	watch, verbose  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("fieldreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.in, "in", "", "report document (JSON or YAML)")
	fs.StringVar(&o.out, "out", "", "output PDF path (default standard output)")
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.BoolVar(&o.watch, "watch", false, "regenerate when the document or config changes")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if o.in == "" {
		fmt.Fprintln(stderr, "fieldreport: -in is required")
		fs.Usage()
		return 2
	}
	if o.out == "" && isTerminal(stdout) {
		fmt.Fprintln(stderr, "fieldreport: refusing to write PDF to a terminal; use -out")
		return 2
	}
	if o.watch && o.out == "" {
		fmt.Fprintln(stderr, "fieldreport: -watch requires -out")
		return 2
	}

	if err := generate(o, stdout, logger); err != nil {
		logger.Error("generation failed", "error", err)
		if !o.watch {
			return 1
		}
	}
	if !o.watch {
		return 0
	}

	if err := watch(ctx, o, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watch failed", "error", err)
		return 1
	}
	return 0
}

// generate renders the document once.
func generate(o options, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := config.LoadOrDefault(o.config)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if cfg.Document.ID == "" {
		opts = append(opts, report.WithDocumentID(uuid.NewString()))
	}

	data, err := os.ReadFile(o.in)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	loader := &reportdoc.Loader{BaseDir: filepath.Dir(o.in), Logger: logger}

	// Render into memory so a failed run leaves the previous output intact.
	var buf bytes.Buffer
	sum, err := reportdoc.Render(&buf, data, loader, opts...)
	if err != nil {
		return err
	}

	if o.out == "" {
		_, err = stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(o.out, buf.Bytes(), 0644)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("report written",
		"kind", sum.Kind,
		"pages", sum.Pages,
		"tasks", sum.Tasks,
		"bytes", buf.Len(),
		"out", o.out,
	)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
