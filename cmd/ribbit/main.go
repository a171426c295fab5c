// Package main is the ribbit command line solver. It reads a puzzle file,
// loads a ranked dictionary and prints every word that can be traced through
// the puzzle graph.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ribbit/core/internal/config"
	"github.com/ribbit/core/internal/dictionary"
	"github.com/ribbit/core/internal/models"
	"github.com/ribbit/core/internal/parser"
	"github.com/ribbit/core/internal/report"
	"github.com/ribbit/core/internal/search"
	"github.com/ribbit/core/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath string
	jsonOut    bool
	pretty     bool
	paths      bool
	quiet      bool
	puzzlePath string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if opts.quiet || opts.jsonOut {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := solve(ctx, cfg, opts, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs layers explicitly set flags over the file and environment
// configuration.
func parseArgs(args []string, stderr io.Writer) (config.Config, options, error) {
	var opts options

	fs := flag.NewFlagSet("ribbit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: ribbit [flags] puzzle.txt")
		fs.PrintDefaults()
	}

	def := config.Default()
	dict := fs.String("dict", def.Dictionary, "path to the ranked word list")
	dictSize := fs.Int("dict-size", def.DictSize, "number of dictionary entries to load")
	minLength := fs.Int("min-length", def.MinLength, "shortest word to report")
	maxSteps := fs.Int("max-steps", def.MaxSteps, "abort the search after this many steps (0 for no limit)")
	autoEdges := fs.String("auto-edges", def.AutoEdges, "also link grid neighbours: 4 or 8")
	metricsFile := fs.String("metrics-file", def.MetricsFile, "write prometheus metrics to this textfile")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	fs.BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	fs.BoolVar(&opts.paths, "paths", false, "include word paths in JSON output")
	fs.BoolVar(&opts.quiet, "quiet", false, "only log warnings and errors")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config.Config{}, opts, fmt.Errorf("expected one puzzle file, got %d arguments", fs.NArg())
	}
	opts.puzzlePath = fs.Arg(0)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			cfg.Dictionary = *dict
		case "dict-size":
			cfg.DictSize = *dictSize
		case "min-length":
			cfg.MinLength = *minLength
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		case "auto-edges":
			cfg.AutoEdges = *autoEdges
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		}
	})

	return cfg, opts, cfg.Validate()
}

func loadPuzzle(path, autoEdges string) (*models.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}

	puzzle, err := parser.ParsePuzzle(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if autoEdges == "" {
		return puzzle, nil
	}
	conn, err := parser.ParseConnectivity(autoEdges)
	if err != nil {
		return nil, err
	}
	return parser.WithGridEdges(puzzle, conn)
}

func solve(ctx context.Context, cfg config.Config, opts options, stdout io.Writer, logger *slog.Logger) error {
	metrics := telemetry.NewMetrics()

	puzzle, err := loadPuzzle(opts.puzzlePath, cfg.AutoEdges)
	if err != nil {
		return err
	}
	stats := puzzle.Graph.Stats()
	metrics.ObserveGraph(stats.TotalNodes, stats.TotalEdges)

	if !opts.jsonOut {
		if err := report.WriteSummary(stdout, opts.puzzlePath, puzzle); err != nil {
			return err
		}
		if err := report.WritePuzzle(stdout, puzzle); err != nil {
			return err
		}
	}

	start := time.Now()
	dictionary.SetDefaultPath(cfg.Dictionary)
	idx, err := dictionary.LoadDefault(ctx, cfg.DictSize)
	if err != nil {
		return err
	}
	metrics.ObserveDictionary(idx.Len(), time.Since(start).Seconds())
	logger.Info("dictionary ready", slog.String("path", cfg.Dictionary), slog.Int("words", idx.Len()))

	ctx, span := telemetry.Start(ctx, "ribbit.solve",
		attribute.Int("graph.nodes", stats.TotalNodes),
		attribute.Int("graph.edges", stats.TotalEdges),
	)
	col, searchStats, solveErr := search.Solve(puzzle.Graph, idx,
		search.WithContext(ctx),
		search.WithMinLength(cfg.MinLength),
		search.WithMaxSteps(cfg.MaxSteps),
	)
	telemetry.End(span, solveErr)
	metrics.ObserveSolve(searchStats, col.Len(), solveErr)

	logger.Info("search finished",
		slog.Int("words", col.Len()),
		slog.Int("steps", searchStats.Steps),
		slog.Int("pruned", searchStats.Pruned),
		slog.Duration("duration", searchStats.Duration),
	)
	if errors.Is(solveErr, search.ErrDeadlineExceeded) {
		logger.Warn("search stopped early, results are partial", slog.Int("max_steps", cfg.MaxSteps))
	}

	if opts.jsonOut {
		err = report.WriteJSON(stdout, report.NewResponse(puzzle, col, searchStats, opts.paths), opts.pretty)
	} else {
		err = report.WriteResults(stdout, col)
	}
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	return solveErr
}
