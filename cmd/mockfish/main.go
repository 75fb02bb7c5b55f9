// mockfish is an interactive chess rules shell for setting up positions and
// playing against simple computer opponents.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/mockfish-go/internal/config"
	"github.com/lgbarn/mockfish-go/internal/storage"
)

const programVersion = "0.1"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("mockfish version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Play.Seed == 0 {
		cfg.Play.Seed = uint64(time.Now().UnixNano())
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	sh := NewShell(cfg, os.Stdin, store)
	sh.Banner()
	sh.Run()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// openStore opens the results database when one is configured.
func openStore(cfg *config.Config) *storage.Storage {
	if !cfg.Storage.Enabled() {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Recording results in %s\n", cfg.Storage.Dir)
	}
	return store
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: mockfish [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive chess rules shell. Commands are read from stdin;\n")
	fmt.Fprintf(os.Stderr, "type 'help' at the prompt for a list.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
