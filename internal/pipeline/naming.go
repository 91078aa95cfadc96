// internal/pipeline/naming.go
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creativeyann17/go-xzip/internal/cli"
)

var (
	// ErrUnknownSuffix is returned when a file to decompress carries no
	// recognizable suffix and none was configured.
	ErrUnknownSuffix = errors.New("filename has an unknown suffix")

	// ErrRawNeedsSuffix is returned when raw output would need a filename
	// but no suffix is configured; raw streams have no standard one.
	ErrRawNeedsSuffix = errors.New("--format=raw requires --suffix or --stdout")
)

// knownSuffixes maps compressed-name suffixes to their replacement when
// decompressing.
var knownSuffixes = []struct{ from, to string }{
	{".xz", ""},
	{".txz", ".tar"},
	{".lzma", ""},
	{".tlz", ".tar"},
}

// compressedName returns the output filename for compressing name.
func compressedName(cfg *cli.Config, name string) (string, error) {
	if cfg.Suffix != "" {
		return name + cfg.Suffix, nil
	}
	switch cfg.Format {
	case cli.FormatXZ:
		return name + ".xz", nil
	case cli.FormatAlone:
		return name + ".lzma", nil
	default:
		return "", ErrRawNeedsSuffix
	}
}

// uncompressedName returns the output filename for decompressing name. A
// configured suffix is tried first, then the standard ones.
func uncompressedName(cfg *cli.Config, name string) (string, error) {
	if cfg.Suffix != "" && len(name) > len(cfg.Suffix) && strings.HasSuffix(name, cfg.Suffix) {
		return name[:len(name)-len(cfg.Suffix)], nil
	}
	for _, s := range knownSuffixes {
		if len(name) > len(s.from) && strings.HasSuffix(name, s.from) {
			return name[:len(name)-len(s.from)] + s.to, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrUnknownSuffix)
}
