// internal/cli/parse.go
package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/creativeyann17/go-xzip/pkg/filter"
)

// EnvVar names the environment variable whose value is whitespace-tokenized
// into extra arguments, consumed before the real command line.
const EnvVar = "GOXZIP_OPT"

// maxEnvArgs bounds the number of tokens accepted from EnvVar, matching the
// largest argument vector a process could have received directly.
const maxEnvArgs = math.MaxInt32

// fallbackMemoryBudget is used when the caller provides no default budget.
const fallbackMemoryBudget = 512 << 20

// Parser turns an argument vector into a resolved Config. The zero value is
// ready to use; the fields exist so tests can substitute the process
// environment, the system-derived defaults and the codec cost model.
type Parser struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// DefaultMemory is the memory budget used when --memory is absent.
	// Zero selects fallbackMemoryBudget.
	DefaultMemory uint64

	// DefaultThreads is the thread count used when --threads is absent.
	// Zero selects runtime.NumCPU().
	DefaultThreads int

	// Cost estimates filter-chain memory usage. Nil selects
	// filter.DefaultCostModel().
	Cost filter.CostModel
}

// Parse processes argv (including the program name at argv[0]) and returns
// the finalized configuration. When ShowHelp or ShowVersion is set on the
// result, parsing stopped early and the caller should emit the requested
// text and exit successfully; no other field is meaningful then.
func (p *Parser) Parse(argv []string) (*Config, error) {
	lookupEnv := p.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	budget := p.DefaultMemory
	if budget == 0 {
		budget = fallbackMemoryBudget
	}
	threads := p.DefaultThreads
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	cost := p.Cost
	if cost == nil {
		cost = filter.DefaultCostModel()
	}

	cfg := &Config{
		Mode:               ModeCompress,
		Format:             FormatAuto,
		Check:              CheckCRC64,
		Verbosity:          VerbosityWarning,
		MemoryBudget:       budget,
		ThreadsRequested:   threads,
		Preset:             filter.DefaultPreset,
		Chain:              &filter.Chain{},
		formatCompressAuto: FormatXZ,
	}

	// Check how we were called before reading any flags; the invocation
	// name only sets defaults, never overrides an explicit flag.
	if len(argv) > 0 {
		applyInvocationName(cfg, argv[0])
	}

	// First the flags from the environment.
	if value, ok := lookupEnv(EnvVar); ok {
		args, err := splitEnvArgs(value)
		if err != nil {
			return nil, err
		}
		err = newFlagSet(cfg).Parse(args)
		if cfg.ShowHelp || cfg.ShowVersion {
			return cfg, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvVar, err)
		}
	}

	// Then from the command line; anything set by the environment pass can
	// be overridden here.
	fs := newFlagSet(cfg)
	err := fs.Parse(argv[1:])
	if cfg.ShowHelp || cfg.ShowVersion {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	cfg.Files = fs.Args()

	// Never remove the source file when the destination is not on disk.
	// Test mode writes nowhere, but setting Stdout keeps the rest of the
	// pipeline on the no-output path.
	if cfg.Stdout || cfg.Mode == ModeTest {
		cfg.KeepOriginal = true
		cfg.Stdout = true
	}

	if cfg.Mode == ModeCompress && cfg.Format == FormatAuto {
		cfg.Format = cfg.formatCompressAuto
	}

	if cfg.Mode == ModeCompress || cfg.Format == FormatRaw {
		if err := cfg.resolveSettings(cost); err != nil {
			return nil, err
		}
	} else {
		cfg.ThreadsEffective = cfg.ThreadsRequested
	}

	if cfg.FileList != nil {
		if len(cfg.Files) > 0 {
			return nil, ErrFilesWithOperands
		}
	} else if len(cfg.Files) == 0 {
		cfg.Files = []string{"-"}
	}

	return cfg, nil
}

// applyInvocationName adjusts the default format and mode from the base name
// the tool was invoked under: "lz" selects the legacy container for
// compression, "cat" means decompress to stdout, "un" means decompress.
func applyInvocationName(cfg *Config, arg0 string) {
	if arg0 == "" {
		return
	}
	name := filepath.Base(arg0)

	if strings.Contains(name, "lz") {
		cfg.formatCompressAuto = FormatAlone
	}

	if strings.Contains(name, "cat") {
		cfg.Mode = ModeDecompress
		cfg.Stdout = true
	} else if strings.Contains(name, "un") {
		cfg.Mode = ModeDecompress
	}
}

// splitEnvArgs tokenizes an environment value on whitespace runs into a
// synthetic argument list.
func splitEnvArgs(value string) ([]string, error) {
	args := strings.Fields(value)
	if len(args) > maxEnvArgs {
		return nil, ErrTooManyEnvArgs
	}
	return args, nil
}
