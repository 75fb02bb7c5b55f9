// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/mockfish-go/internal/config"
)

var (
	// Rules and rendering
	strictCastling = flag.Bool("strict-castling", false, "Refuse castling through an attacked square")
	asciiBoard     = flag.Bool("ascii", false, "Draw pieces as letters instead of Unicode figurines")
	movesPerLine   = flag.Int("w", 4, "Moves per line in move listings")

	// Play
	seed = flag.Uint64("seed", 0, "Seed for computer players (0 = time-based)")

	// Perft
	workers   = flag.Int("workers", 1, "Worker goroutines for the perft command")
	maxDepth  = flag.Int("maxdepth", 6, "Largest depth accepted by the perft command")
	maxNodes  = flag.Uint64("maxnodes", 0, "Abort a perft count past this many nodes (0 = no limit)")
	noPerftTT = flag.Bool("nohash", false, "Disable the perft node cache")

	// Results store
	dbDir = flag.String("db", "", "Directory of the match results database (empty = don't record)")

	// Diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summaries, 2=commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Rules.StrictCastling = *strictCastling
	cfg.Output.ASCII = *asciiBoard
	cfg.Output.MovesPerLine = *movesPerLine
	cfg.Play.Seed = *seed
	cfg.Perft.Workers = *workers
	cfg.Perft.MaxDepth = *maxDepth
	cfg.Perft.MaxNodes = *maxNodes
	cfg.Perft.UseHashTable = !*noPerftTT
	cfg.Storage.Dir = *dbDir
	cfg.Verbosity = *verbosity

	if *quiet {
		cfg.Verbosity = 0
	}
}
