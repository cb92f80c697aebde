package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/miraflynn/textcompare"
	"github.com/miraflynn/textcompare/jsonl"
	"golang.org/x/sync/errgroup"
)

// ErrNoPairs is returned when the input file contains no pairs.
var ErrNoPairs = errors.New("no pairs to compare")

// BatchRunner compares many pairs concurrently and emits results in input
// order.
type BatchRunner struct {
	Output   io.Writer
	Loader   textcompare.PairLoader
	InPath   string
	Comparer *textcompare.Comparer
	Workers  int

	// When Saver is set results are appended to OutPath instead of Output.
	Saver   textcompare.PairResultSaver
	OutPath string
}

// Run loads the pairs and compares every one. The first comparison failure
// cancels the remaining work and nothing is written. Results are only written
// once every comparison has succeeded; a save failure stops at the failing
// result and leaves the earlier ones appended to OutPath.
func (b *BatchRunner) Run(ctx context.Context) error {
	pairs, err := b.Loader.Load(b.InPath)
	if err != nil {
		return fmt.Errorf("load pairs: %w", err)
	}
	if len(pairs) == 0 {
		return ErrNoPairs
	}

	results := make([]textcompare.PairResult, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.Workers, 1))

	for i := range pairs {
		pair := pairs[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := b.Comparer.Compare(pair.Text1, pair.Text2, nil)
			if err != nil {
				return fmt.Errorf("pair %s: %w", pair.ID, err)
			}
			results[i] = textcompare.PairResult{ID: pair.ID, Side1: result.Side1, Side2: result.Side2}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if b.Saver != nil {
		for _, r := range results {
			if err := b.Saver.Save(b.OutPath, r); err != nil {
				return fmt.Errorf("save pair %s: %w", r.ID, err)
			}
		}
		return nil
	}

	encoder := json.NewEncoder(b.Output)
	encoder.SetEscapeHTML(false)
	for _, r := range results {
		if err := encoder.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func runBatch(ctx context.Context, args []string, logger *slog.Logger) error {
	flags := flag.NewFlagSet("batch", flag.ExitOnError)
	workers := flags.Int("workers", 4, "Number of parallel workers (1 = sequential)")
	algorithm := flags.String("algorithm", AlgorithmLookahead, "Alignment algorithm: lookahead, lcs or dmp")
	out := flags.String("out", "", "Append results to `path` instead of stdout")

	if err := flags.Parse(args); err != nil {
		return err
	}

	rest := flags.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: textcompare batch [-workers N] [-algorithm NAME] [-out PATH] <pairs.jsonl>")
	}

	comparer, err := NewComparer(*algorithm, false, logger)
	if err != nil {
		return err
	}

	runner := &BatchRunner{
		Output:   os.Stdout,
		Loader:   jsonl.NewLoader(),
		InPath:   rest[0],
		Comparer: comparer,
		Workers:  *workers,
	}
	if *out != "" {
		runner.Saver = jsonl.NewSaver()
		runner.OutPath = *out
	}

	logger.Info("comparing pairs", "input", rest[0], "workers", *workers)
	return runner.Run(ctx)
}
