// internal/cli/flags.go
//
// The flag interpreter. Every flag is a pflag.Value bound to the shared
// Config, so pflag's left-to-right processing gives us exactly the semantics
// the configuration needs: later flags override earlier ones, filter flags
// accumulate in argument order, and repeated -q/-v saturate instead of
// counting.
package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/creativeyann17/go-xzip/pkg/filter"
)

// noValueMarker is the NoOptDefVal used for optional-argument flags. It can
// never collide with a real argument: argv strings cannot contain NUL.
const noValueMarker = "\x00"

// newFlagSet builds a FlagSet whose flags mutate cfg directly. A fresh set
// is built for each pass (environment, then command line) so the second pass
// overrides the first.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("goxzip", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	action := func(name, shorthand, usage string, fn func()) *pflag.Flag {
		fs.VarP(actionValue{fn}, name, shorthand, usage)
		f := fs.Lookup(name)
		f.NoOptDefVal = "true"
		return f
	}

	// gzip-like options
	action("fast", "1", "compress faster", func() { cfg.Preset = 1 })
	for level := 2; level <= 8; level++ {
		level := level
		digit := strconv.Itoa(level)
		action(digit, digit, "", func() { cfg.Preset = level }).Hidden = true
	}
	action("best", "9", "compress better", func() { cfg.Preset = 9 })
	fs.VarP(&memoryValue{cfg}, "memory", "M", "set memory usage limit in bytes")
	action("name", "", "save or restore the original filename", func() { cfg.PreserveName = true })
	action("no-name", "", "do not save or restore the original filename", func() { cfg.PreserveName = false })
	fs.VarP(&suffixValue{cfg}, "suffix", "S", "use `.suf' on compressed files")
	fs.VarP(&threadsValue{cfg}, "threads", "T", "use at most this many threads")
	fs.BoolVarP(&cfg.ShowVersion, "version", "V", cfg.ShowVersion, "display version and exit")
	action("stdout", "c", "write to standard output", func() { cfg.Stdout = true })
	action("to-stdout", "", "", func() { cfg.Stdout = true }).Hidden = true
	action("decompress", "d", "decompress", func() { cfg.Mode = ModeDecompress })
	action("uncompress", "", "", func() { cfg.Mode = ModeDecompress }).Hidden = true
	action("force", "f", "force overwrite of output file", func() { cfg.Force = true })
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", cfg.ShowHelp, "display this help and exit")
	action("list", "l", "list compressed file contents", func() { cfg.Mode = ModeList })
	action("info", "", "", func() { cfg.Mode = ModeList }).Hidden = true
	action("keep", "k", "keep (don't delete) input files", func() { cfg.KeepOriginal = true })
	action("quiet", "q", "suppress messages", cfg.quieter)
	action("test", "t", "test compressed file integrity", func() { cfg.Mode = ModeTest })
	action("verbose", "v", "be verbose", cfg.louder)
	action("compress", "z", "force compression", func() { cfg.Mode = ModeCompress })

	// Filters
	filterFlag := func(name string, id filter.ID, aliases ...string) {
		fs.Var(&filterValue{cfg: cfg, id: id}, name, "")
		fs.Lookup(name).NoOptDefVal = noValueMarker
		for _, alias := range aliases {
			fs.Var(&filterValue{cfg: cfg, id: id}, alias, "")
			f := fs.Lookup(alias)
			f.NoOptDefVal = noValueMarker
			f.Hidden = true
		}
	}
	filterFlag("subblock", filter.IDSubblock)
	filterFlag("x86", filter.IDX86, "bcj")
	filterFlag("powerpc", filter.IDPowerPC, "ppc")
	filterFlag("ia64", filter.IDIA64, "itanium")
	filterFlag("arm", filter.IDARM)
	filterFlag("armthumb", filter.IDARMThumb)
	filterFlag("sparc", filter.IDSPARC)
	filterFlag("delta", filter.IDDelta)
	filterFlag("lzma1", filter.IDLZMA1)
	filterFlag("lzma2", filter.IDLZMA2)

	// Other
	fs.VarP(&formatValue{cfg}, "format", "F", "file format to encode or decode")
	fs.VarP(&checkValue{cfg}, "check", "C", "integrity check type")
	fs.Var(&filesValue{cfg: cfg, sep: '\n'}, "files", "read filenames to process from a file")
	fs.Lookup("files").NoOptDefVal = noValueMarker
	fs.Var(&filesValue{cfg: cfg, sep: 0}, "files0", "like --files but use the NUL byte as separator")
	fs.Lookup("files0").NoOptDefVal = noValueMarker

	return fs
}

// actionValue runs a function when the flag is seen; the value is ignored.
type actionValue struct{ fn func() }

func (v actionValue) String() string   { return "" }
func (v actionValue) Type() string     { return "" }
func (v actionValue) Set(string) error { v.fn(); return nil }

type memoryValue struct{ cfg *Config }

func (v *memoryValue) String() string { return "" }
func (v *memoryValue) Type() string   { return "bytes" }

func (v *memoryValue) Set(s string) error {
	n, err := filter.ParseSize(s, 1, math.MaxUint64)
	if err != nil {
		return err
	}
	v.cfg.MemoryBudget = n
	return nil
}

type threadsValue struct{ cfg *Config }

func (v *threadsValue) String() string { return "" }
func (v *threadsValue) Type() string   { return "num" }

func (v *threadsValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid thread count %q", s)
	}
	v.cfg.ThreadsRequested = n
	return nil
}

type suffixValue struct{ cfg *Config }

func (v *suffixValue) String() string { return "" }
func (v *suffixValue) Type() string   { return "suffix" }

// Set rejects an empty suffix and suffixes containing a slash. Such
// suffixes would break the output naming later.
func (v *suffixValue) Set(s string) error {
	if s == "" {
		return ErrInvalidSuffix
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return fmt.Errorf("%q: %w", s, ErrInvalidSuffix)
		}
	}
	v.cfg.Suffix = s
	return nil
}

type formatValue struct{ cfg *Config }

func (v *formatValue) String() string { return "" }
func (v *formatValue) Type() string   { return "format" }

func (v *formatValue) Set(s string) error {
	// "alone" is accepted as an alias for "lzma"; it was used for forward
	// compatibility by old releases of the original tools.
	switch s {
	case "auto":
		v.cfg.Format = FormatAuto
	case "xz":
		v.cfg.Format = FormatXZ
	case "lzma", "alone":
		v.cfg.Format = FormatAlone
	case "raw":
		v.cfg.Format = FormatRaw
	default:
		return fmt.Errorf("unknown file format type %q", s)
	}
	return nil
}

type checkValue struct{ cfg *Config }

func (v *checkValue) String() string { return "" }
func (v *checkValue) Type() string   { return "check" }

func (v *checkValue) Set(s string) error {
	switch s {
	case "none":
		v.cfg.Check = CheckNone
	case "crc32":
		v.cfg.Check = CheckCRC32
	case "crc64":
		v.cfg.Check = CheckCRC64
	case "sha256":
		v.cfg.Check = CheckSHA256
	default:
		return fmt.Errorf("unknown integrity check type %q", s)
	}
	return nil
}

type filterValue struct {
	cfg *Config
	id  filter.ID
}

func (v *filterValue) String() string { return "" }
func (v *filterValue) Type() string   { return "opts" }

func (v *filterValue) Set(s string) error {
	if s == noValueMarker {
		s = ""
	}
	if err := v.cfg.Chain.Add(v.id, s); err != nil {
		return err
	}
	v.cfg.chainExplicit = true
	return nil
}

type filesValue struct {
	cfg *Config
	sep byte
}

func (v *filesValue) String() string { return "" }
func (v *filesValue) Type() string   { return "file" }

func (v *filesValue) Set(s string) error {
	if v.cfg.FileList != nil {
		return ErrFilesTwice
	}
	if s == noValueMarker {
		s = ""
	}
	src, err := newFileListSource(s, v.sep)
	if err != nil {
		return err
	}
	v.cfg.FileList = src
	return nil
}
