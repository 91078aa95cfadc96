package main

import (
	"fmt"
	"os"

	"github.com/creativeyann17/go-xzip/internal/cli"
	"github.com/creativeyann17/go-xzip/internal/pipeline"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	parser := &cli.Parser{DefaultMemory: defaultMemoryBudget()}

	cfg, err := parser.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goxzip: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try 'goxzip --help' for more information.")
		os.Exit(1)
	}

	if cfg.ShowHelp {
		cli.Usage(os.Stdout)
		return
	}
	if cfg.ShowVersion {
		fmt.Printf("goxzip %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if _, err := pipeline.Run(cfg); err != nil {
		if cfg.Verbosity >= cli.VerbosityError {
			fmt.Fprintf(os.Stderr, "goxzip: %v\n", err)
		}
		os.Exit(1)
	}
}

// defaultMemoryBudget derives the memory usage limit from the machine:
// a third of total RAM, or a fixed fallback when the probe fails.
func defaultMemoryBudget() uint64 {
	total, err := getTotalSystemMemory()
	if err != nil || total == 0 {
		return 512 << 20
	}
	return total / 3
}
