// Package main provides the entry point for the decycle CLI: a thin
// wrapper that wires a JSONC edge-list fixture to Configuration.Check and
// renders the violation report, or runs the diagnostics-only LSP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/decycle-go/decycle/constraint"
	"github.com/decycle-go/decycle/decycle"
	"github.com/decycle-go/decycle/ingest"
	"github.com/decycle-go/decycle/ingest/jsonedges"
	"github.com/decycle-go/decycle/lspdiag"
	"github.com/decycle-go/decycle/report"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "decycle: %v\n", err)
		os.Exit(1)
	}
}

// repeatedFlag collects every occurrence of a flag passed more than once on
// the command line, e.g. -slicing module=... -slicing layer=....
type repeatedFlag []string

func (r *repeatedFlag) String() string { return strings.Join(*r, ",") }
func (r *repeatedFlag) Set(v string) error {
	*r = append(*r, v)
	return nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("decycle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		edgesPath = fs.String("edges", "", "path to a JSONC edge-list fixture ({class, references[]} per entry)")
		logLevel  = fs.String("log-level", "info", "log level: error|warn|info|debug")
		dotSlice  = fs.String("dot", "", "emit the named slicing's projection as Graphviz DOT instead of a report")
		lsp       = fs.Bool("lsp", false, "run the diagnostics-only LSP server on stdio instead of checking once")
		reportURI = fs.String("report-uri", "decycle:///report", "synthetic document URI diagnostics are published against, with -lsp")
		showVer   = fs.Bool("version", false, "print version and exit")
		including repeatedFlag
		excluding repeatedFlag
		slicings  repeatedFlag
		cycleFree repeatedFlag
	)
	fs.Var(&including, "including", "class-name pattern to include (repeatable)")
	fs.Var(&excluding, "excluding", "class-name pattern to exclude (repeatable)")
	fs.Var(&slicings, "slicing", "name=pattern[,pattern...] (repeatable)")
	fs.Var(&cycleFree, "cycle-free", "id=slicingName cycle-free constraint (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: decycle -edges <file> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		fs.Usage()
		return fmt.Errorf("parse flags: %w", err)
	}

	if *showVer {
		fmt.Printf("decycle %s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))

	opts, err := buildOptions(logger, including, excluding, slicings, cycleFree)
	if err != nil {
		return err
	}

	var source ingest.Source
	if *edgesPath != "" {
		adapter, err := jsonedges.NewFileSource(*edgesPath)
		if err != nil {
			return fmt.Errorf("load edges: %w", err)
		}
		source = adapter
	}

	cfg, diagResult, err := decycle.New(source, opts...)
	if err != nil {
		return fmt.Errorf("build configuration: %w", err)
	}
	if !diagResult.OK() {
		for _, msg := range diagResult.Messages() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("invalid configuration (%d issue(s))", diagResult.Len())
	}

	if *lsp {
		return runLSP(logger, *reportURI, cfg)
	}

	ctx := context.Background()

	if *dotSlice != "" {
		if _, err := cfg.Check(ctx); err != nil {
			return fmt.Errorf("check: %w", err)
		}
		fmt.Print(cfg.Slice(*dotSlice).ToDOT())
		return nil
	}

	violations, err := cfg.Check(ctx)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	if len(violations) == 0 {
		fmt.Println("no violations found")
		return nil
	}

	fmt.Println(report.FormatAll(violations))
	return fmt.Errorf("%d violation(s) found", len(violations))
}

func runLSP(logger *slog.Logger, reportURI string, cfg *decycle.Configuration) error {
	srv := lspdiag.NewServer(logger, reportURI, cfg)
	logger.Info("running on stdio")
	return srv.RunStdio()
}

func buildOptions(logger *slog.Logger, including, excluding, slicings, cycleFree repeatedFlag) ([]decycle.Option, error) {
	opts := []decycle.Option{decycle.WithLogger(logger)}

	if len(including) > 0 {
		opts = append(opts, decycle.WithIncluding([]string(including)...))
	}
	if len(excluding) > 0 {
		opts = append(opts, decycle.WithExcluding([]string(excluding)...))
	}

	for _, spec := range slicings {
		name, patterns, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid -slicing %q: expected name=pattern[,pattern...]", spec)
		}
		opts = append(opts, decycle.WithSlicing(name, strings.Split(patterns, ",")...))
	}

	for _, spec := range cycleFree {
		id, slicingName, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid -cycle-free %q: expected id=slicingName", spec)
		}
		opts = append(opts, decycle.WithConstraint(constraint.NewCycleFree(id, slicingName)))
	}

	return opts, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
