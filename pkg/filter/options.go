// pkg/filter/options.go
package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Options is the filter-specific payload of a chain entry. Each filter kind
// that takes options has its own record type; the transform-only filters
// carry nil.
type Options interface {
	filterOptions()
}

// Mode selects the LZMA match-evaluation strategy.
type Mode int

const (
	ModeFast Mode = iota
	ModeNormal
)

func (m Mode) String() string {
	if m == ModeFast {
		return "fast"
	}
	return "normal"
}

// MatchFinder selects the LZMA match-finder data structure.
type MatchFinder int

const (
	MFHC3 MatchFinder = iota
	MFHC4
	MFBT2
	MFBT3
	MFBT4
)

var matchFinderNames = map[string]MatchFinder{
	"hc3": MFHC3,
	"hc4": MFHC4,
	"bt2": MFBT2,
	"bt3": MFBT3,
	"bt4": MFBT4,
}

func (mf MatchFinder) String() string {
	for name, v := range matchFinderNames {
		if v == mf {
			return name
		}
	}
	return "unknown"
}

// BinaryTree reports whether the match finder is one of the binary-tree
// variants, which cost roughly half again as much memory as the hash chains.
func (mf MatchFinder) BinaryTree() bool {
	return mf == MFBT2 || mf == MFBT3 || mf == MFBT4
}

// LZMAOptions configures the LZMA1 and LZMA2 filters.
type LZMAOptions struct {
	// DictSize is the dictionary size in bytes, 4 KiB .. 1 GiB.
	DictSize uint32

	// Literal context bits, literal position bits and position bits.
	// LC+LP must not exceed 4.
	LC, LP, PB int

	Mode        Mode
	MatchFinder MatchFinder

	// NiceLen is the match length at which the encoder stops searching,
	// 2..273.
	NiceLen int

	// Depth bounds the match-finder search, 0 = codec default.
	Depth int
}

func (*LZMAOptions) filterOptions() {}

// DeltaOptions configures the byte-delta filter.
type DeltaOptions struct {
	// Dist is the delta distance in bytes, 1..256.
	Dist int
}

func (*DeltaOptions) filterOptions() {}

// SubblockOptions configures the subblock filter.
type SubblockOptions struct {
	// Size is the subblock data size in bytes.
	Size uint32

	// RLE is the run-length-encoder chunk size, 0 = disabled.
	RLE uint32
}

func (*SubblockOptions) filterOptions() {}

const (
	minDictSize = 1 << 12
	maxDictSize = 1 << 30

	minSubblockSize = 8
	maxSubblockSize = 1 << 28
	maxSubblockRLE  = 256

	defaultSubblockSize = 4096
)

// parseLZMAOptions parses "dict=8MiB,lc=3,lp=0,pb=2,mode=normal,nice=64,
// mf=bt4,depth=0". An empty string yields the default-preset options.
func parseLZMAOptions(s string) (Options, error) {
	opts, err := Preset(DefaultPreset)
	if err != nil {
		return nil, err
	}

	err = eachOption(s, func(key, value string) error {
		switch key {
		case "dict":
			n, err := ParseSize(value, minDictSize, maxDictSize)
			if err != nil {
				return fmt.Errorf("dict: %w", err)
			}
			opts.DictSize = uint32(n)
		case "lc":
			n, err := parseInt(value, 0, 4)
			if err != nil {
				return fmt.Errorf("lc: %w", err)
			}
			opts.LC = n
		case "lp":
			n, err := parseInt(value, 0, 4)
			if err != nil {
				return fmt.Errorf("lp: %w", err)
			}
			opts.LP = n
		case "pb":
			n, err := parseInt(value, 0, 4)
			if err != nil {
				return fmt.Errorf("pb: %w", err)
			}
			opts.PB = n
		case "mode":
			switch value {
			case "fast":
				opts.Mode = ModeFast
			case "normal":
				opts.Mode = ModeNormal
			default:
				return fmt.Errorf("mode: unknown mode %q", value)
			}
		case "nice":
			n, err := parseInt(value, 2, 273)
			if err != nil {
				return fmt.Errorf("nice: %w", err)
			}
			opts.NiceLen = n
		case "mf":
			mf, ok := matchFinderNames[value]
			if !ok {
				return fmt.Errorf("mf: unknown match finder %q", value)
			}
			opts.MatchFinder = mf
		case "depth":
			n, err := parseInt(value, 0, 1<<30)
			if err != nil {
				return fmt.Errorf("depth: %w", err)
			}
			opts.Depth = n
		default:
			return fmt.Errorf("unknown option %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.LC+opts.LP > 4 {
		return nil, fmt.Errorf("sum of lc and lp must not exceed 4")
	}
	return opts, nil
}

// parseDeltaOptions parses "dist=N". An empty string yields distance 1.
func parseDeltaOptions(s string) (Options, error) {
	opts := &DeltaOptions{Dist: 1}
	err := eachOption(s, func(key, value string) error {
		switch key {
		case "dist":
			n, err := parseInt(value, 1, 256)
			if err != nil {
				return fmt.Errorf("dist: %w", err)
			}
			opts.Dist = n
		default:
			return fmt.Errorf("unknown option %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// parseSubblockOptions parses "size=N,rle=N".
func parseSubblockOptions(s string) (Options, error) {
	opts := &SubblockOptions{Size: defaultSubblockSize}
	err := eachOption(s, func(key, value string) error {
		switch key {
		case "size":
			n, err := ParseSize(value, minSubblockSize, maxSubblockSize)
			if err != nil {
				return fmt.Errorf("size: %w", err)
			}
			opts.Size = uint32(n)
		case "rle":
			n, err := parseInt(value, 0, maxSubblockRLE)
			if err != nil {
				return fmt.Errorf("rle: %w", err)
			}
			opts.RLE = uint32(n)
		default:
			return fmt.Errorf("unknown option %q", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// eachOption splits a comma-separated key=value list and calls fn for each
// pair. An empty input is a valid empty list.
func eachOption(s string, fn func(key, value string) error) error {
	if s == "" {
		return nil
	}
	for _, pair := range strings.Split(s, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return fmt.Errorf("malformed option %q (want key=value)", pair)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

func parseInt(s string, min, max int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%d is outside %d..%d", n, min, max)
	}
	return n, nil
}

// ParseSize parses an unsigned byte count with an optional binary multiplier
// suffix (k/kib, m/mib, g/gib, case-insensitive) and checks it against the
// given bounds.
func ParseSize(s string, min, max uint64) (uint64, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	var mult uint64 = 1
	switch strings.ToLower(s[i:]) {
	case "":
	case "k", "kb", "ki", "kib":
		mult = 1 << 10
	case "m", "mb", "mi", "mib":
		mult = 1 << 20
	case "g", "gb", "gi", "gib":
		mult = 1 << 30
	default:
		return 0, fmt.Errorf("invalid size suffix %q", s[i:])
	}

	if n > max/mult {
		return 0, fmt.Errorf("size %q is too large", s)
	}
	n *= mult
	if n < min || n > max {
		return 0, fmt.Errorf("size %q is outside %d..%d", s, min, max)
	}
	return n, nil
}
