package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	thttp "github.com/miraflynn/textcompare/http"
)

func runServe(ctx context.Context, args []string, logger *slog.Logger) error {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := flags.String("addr", defaultAddr(), "Listen address")
	algorithm := flags.String("algorithm", AlgorithmLookahead, "Alignment algorithm: lookahead, lcs or dmp")

	if err := flags.Parse(args); err != nil {
		return err
	}

	comparer, err := NewComparer(*algorithm, true, logger)
	if err != nil {
		return err
	}

	server := thttp.NewServer(comparer, logger)
	if err := server.ListenAndServe(ctx, *addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// defaultAddr returns TEXTCOMPARE_ADDR or the server default.
func defaultAddr() string {
	if addr := os.Getenv("TEXTCOMPARE_ADDR"); addr != "" {
		return addr
	}
	return thttp.DefaultAddr
}
