// Package pipeline processes the filename operands (or the --files list)
// with the resolved run configuration: compress, decompress, test or list
// each file, spreading the work over the budgeted worker count.
package pipeline

import (
	"fmt"
	"os"
	"sync"

	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-xzip/internal/cli"
	"github.com/creativeyann17/go-xzip/internal/engine"
)

// Result contains statistics about the pipeline run.
type Result struct {
	// Total number of files requested.
	FilesTotal int

	// Number of files successfully processed.
	FilesProcessed int

	// Per-file errors; the run continues past them.
	Errors []error
}

type runner struct {
	cfg      *cli.Config
	params   engine.Params
	progress *mpb.Progress
}

// Run processes every input named by the configuration. Per-file failures
// are collected in the result; the returned error summarizes them.
func Run(cfg *cli.Config) (*Result, error) {
	names := cfg.Files
	if cfg.FileList != nil {
		defer cfg.FileList.Close()
		var err error
		names, err = cfg.FileList.Names()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.FileList.Name, err)
		}
	}

	result := &Result{FilesTotal: len(names)}
	if len(names) == 0 {
		return result, nil
	}

	r := &runner{
		cfg:    cfg,
		params: engine.Params{Format: cfg.Format, Check: cfg.Check, Chain: cfg.Chain},
	}
	if cfg.Verbosity >= cli.VerbosityVerbose && !cfg.Stdout && cfg.Mode != cli.ModeList {
		r.progress = mpb.New(mpb.WithOutput(os.Stderr), mpb.WithWidth(64))
	}

	// The thread count is a memory budget, not an ordering license: modes
	// that share a single output stream stay sequential.
	workers := cfg.ThreadsEffective
	if workers < 1 {
		workers = 1
	}
	if cfg.Stdout || cfg.Mode == cli.ModeList {
		workers = 1
	}
	if workers > len(names) {
		workers = len(names)
	}

	tasks := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range tasks {
				err := r.processFile(name)
				mu.Lock()
				if err != nil {
					result.Errors = append(result.Errors, err)
				} else {
					result.FilesProcessed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, name := range names {
		tasks <- name
	}
	close(tasks)
	wg.Wait()

	if r.progress != nil {
		r.progress.Wait()
	}

	for _, err := range result.Errors {
		r.logf(cli.VerbosityError, "%v", err)
	}
	if len(result.Errors) > 0 {
		return result, fmt.Errorf("completed with %d errors", len(result.Errors))
	}
	return result, nil
}

func (r *runner) processFile(name string) error {
	switch r.cfg.Mode {
	case cli.ModeCompress:
		return r.compressFile(name)
	case cli.ModeDecompress:
		return r.decompressFile(name)
	case cli.ModeTest:
		return r.testFile(name)
	case cli.ModeList:
		return r.listFile(name)
	}
	return fmt.Errorf("internal error: unknown mode %v", r.cfg.Mode)
}

// logf writes a diagnostic to stderr when the verbosity level admits it.
// Stdout stays reserved for stream data and list output.
func (r *runner) logf(level cli.Verbosity, format string, args ...any) {
	if r.cfg.Verbosity >= level {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
