// mockfish-perft counts the legal move paths of a position, for checking
// move generation against published node counts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/mockfish-go/internal/config"
	"github.com/lgbarn/mockfish-go/internal/engine"
	"github.com/lgbarn/mockfish-go/internal/hashing"
	"github.com/lgbarn/mockfish-go/internal/output"
	"github.com/lgbarn/mockfish-go/internal/perft"
)

var (
	depth     = flag.Int("depth", 4, "Number of plies to count")
	fen       = flag.String("fen", engine.InitialFEN, "Position to count from")
	workers   = flag.Int("workers", 1, "Worker goroutines splitting the root moves")
	tableSize = flag.Int("hashsize", 1<<20, "Node cache entries (0 = no cache)")
	maxNodes  = flag.Uint64("maxnodes", 0, "Abort once this many nodes are counted (0 = no limit)")
	divide    = flag.Bool("divide", false, "Print the count below each root move")
	strict    = flag.Bool("strict-castling", false, "Refuse castling through an attacked square")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summaries, 2=commentary")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mockfish-perft [options]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.NewConfigBuilder().
		WithPerftWorkers(*workers).
		WithPerftHashTable(*tableSize > 0).
		WithStrictCastling(*strict).
		WithPerftMaxDepth(*depth).
		WithPerftMaxNodes(*maxNodes).
		WithVerbosity(*verbosity).
		Build()

	if err := run(cfg, *fen, *depth, *tableSize, *divide); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run counts the position described by fenText and writes the report.
func run(cfg *config.Config, fenText string, depth, tableSize int, divide bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g, toMove, err := engine.NewGameFromFEN(fenText)
	if err != nil {
		return err
	}
	g.Rules.StrictCastling = cfg.Rules.StrictCastling

	opts := []perft.Option{
		perft.WithWorkers(cfg.Perft.Workers),
		perft.WithNodeLimit(cfg.Perft.MaxNodes),
	}
	var table *hashing.ThreadSafePerftTable
	if cfg.Perft.UseHashTable {
		table = hashing.NewThreadSafePerftTable(tableSize)
		opts = append(opts, perft.WithTable(table))
	}

	start := time.Now()
	result, err := perft.Divide(g, toMove, depth, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if divide {
		output.PrintDivide(cfg.OutputFile, result)
	} else {
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, result.Nodes)
	}
	report(cfg.LogFile, cfg.Verbosity, table, result, elapsed)
	return nil
}

// report writes timing and cache statistics to the log stream.
func report(w io.Writer, verbosity int, table *hashing.ThreadSafePerftTable, result *perft.Result, elapsed time.Duration) {
	if verbosity < 1 {
		return
	}
	fmt.Fprintf(w, "%d node(s) in %v\n", result.Nodes, elapsed.Round(time.Millisecond))
	if verbosity > 1 && table != nil {
		fmt.Fprintf(w, "Cache: %d entries, %d hit(s), %d miss(es)\n", table.Len(), table.Hits(), table.Misses())
	}
}
