// Package cli resolves raw process arguments (plus the optional GOXZIP_OPT
// environment source) into a fully resolved run configuration: operating
// mode, container format, filter chain, integrity check and a feasible
// thread count under a memory budget.
package cli

import "github.com/creativeyann17/go-xzip/pkg/filter"

// Mode is the operating mode of the tool.
type Mode int

const (
	ModeCompress Mode = iota
	ModeDecompress
	ModeList
	ModeTest
)

func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "compress"
	case ModeDecompress:
		return "decompress"
	case ModeList:
		return "list"
	case ModeTest:
		return "test"
	}
	return "unknown"
}

// Format is the container format.
type Format int

const (
	FormatAuto Format = iota
	FormatXZ
	// FormatAlone is the legacy single-filter .lzma container.
	FormatAlone
	// FormatRaw is a headerless stream; the filter chain travels out of band.
	FormatRaw
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatXZ:
		return "xz"
	case FormatAlone:
		return "lzma"
	case FormatRaw:
		return "raw"
	}
	return "unknown"
}

// Check is the integrity check stored in the container.
type Check int

const (
	CheckNone Check = iota
	CheckCRC32
	CheckCRC64
	CheckSHA256
)

func (c Check) String() string {
	switch c {
	case CheckNone:
		return "none"
	case CheckCRC32:
		return "crc32"
	case CheckCRC64:
		return "crc64"
	case CheckSHA256:
		return "sha256"
	}
	return "unknown"
}

// Verbosity is the bounded message level. Repeated --quiet and --verbose
// flags saturate at the silent floor and debug ceiling.
type Verbosity int

const (
	VerbositySilent Verbosity = iota
	VerbosityError
	VerbosityWarning
	VerbosityVerbose
	VerbosityDebug
)

// Config is the run configuration. It is built up incrementally by the flag
// interpreter, finalized once by the settings resolver, and read-only after
// that.
type Config struct {
	Mode   Mode
	Format Format

	// Suffix overrides the format-derived filename suffix. Empty means
	// "not set"; a set value is never empty and never contains a path
	// separator.
	Suffix string

	Check     Check
	Verbosity Verbosity

	Stdout       bool
	Force        bool
	KeepOriginal bool
	PreserveName bool

	// MemoryBudget bounds the estimated memory usage of the resolved
	// settings, in bytes.
	MemoryBudget uint64

	// ThreadsRequested is the worker count asked for on the command line;
	// ThreadsEffective is the count after capping against the budget.
	ThreadsRequested int
	ThreadsEffective int

	// Preset is the numeric compression level, 1..9. It backs the
	// synthesized chain only when no filter flags were given.
	Preset int

	Chain *filter.Chain

	// FileList is the --files/--files0 source, nil when not requested.
	// Mutually exclusive with Files.
	FileList *FileListSource

	// Files are the filename operands. After parsing it is never empty
	// unless FileList is set; with no operands it holds the single name
	// "-" for standard input.
	Files []string

	ShowHelp    bool
	ShowVersion bool

	// formatCompressAuto is the container used when compressing with
	// --format=auto. The invocation name decides it: names containing
	// "lz" select the legacy format.
	formatCompressAuto Format

	// chainExplicit is set by any filter flag. An explicit chain is a hard
	// contract: it disables preset synthesis and automatic degradation.
	chainExplicit bool
}

func (c *Config) quieter() {
	if c.Verbosity > VerbositySilent {
		c.Verbosity--
	}
}

func (c *Config) louder() {
	if c.Verbosity < VerbosityDebug {
		c.Verbosity++
	}
}
