// internal/engine/writer.go
package engine

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"github.com/creativeyann17/go-xzip/internal/cli"
	"github.com/creativeyann17/go-xzip/pkg/filter"
)

// NewWriter returns a stream encoder for the given parameters. Closing it
// flushes the codec but not the underlying writer.
func NewWriter(w io.Writer, p Params) (io.WriteCloser, error) {
	switch p.Format {
	case cli.FormatXZ:
		opts, err := soleLZMA(p.Chain, filter.IDLZMA2)
		if err != nil {
			return nil, err
		}
		sum, none := checkSum(p.Check)
		cfg := xz.WriterConfig{
			Properties: &lzma.Properties{LC: opts.LC, LP: opts.LP, PB: opts.PB},
			DictCap:    int(opts.DictSize),
			CheckSum:   sum,
			NoCheckSum: none,
			Matcher:    matcher(opts.MatchFinder),
		}
		return cfg.NewWriter(w)

	case cli.FormatAlone:
		opts, err := soleLZMA(p.Chain, filter.IDLZMA1)
		if err != nil {
			return nil, err
		}
		cfg := lzma.WriterConfig{
			Properties: &lzma.Properties{LC: opts.LC, LP: opts.LP, PB: opts.PB},
			DictCap:    int(opts.DictSize),
			Matcher:    matcher(opts.MatchFinder),
			EOSMarker:  true,
		}
		return cfg.NewWriter(w)

	case cli.FormatRaw:
		deltas, opts, err := splitRawChain(p.Chain)
		if err != nil {
			return nil, err
		}
		cfg := lzma.Writer2Config{
			Properties: &lzma.Properties{LC: opts.LC, LP: opts.LP, PB: opts.PB},
			DictCap:    int(opts.DictSize),
			Matcher:    matcher(opts.MatchFinder),
		}
		lw, err := cfg.NewWriter2(w)
		if err != nil {
			return nil, err
		}
		// The first chain entry is the transform closest to the
		// application data, so it wraps outermost.
		var out io.Writer = lw
		for i := len(deltas) - 1; i >= 0; i-- {
			out = newDeltaWriter(out, deltas[i].Dist)
		}
		return &chainWriter{Writer: out, codec: lw}, nil

	default:
		return nil, fmt.Errorf("cannot encode format %s", p.Format)
	}
}

func matcher(mf filter.MatchFinder) lzma.MatchAlgorithm {
	if mf.BinaryTree() {
		return lzma.BinaryTree
	}
	return lzma.HashTable4
}

// chainWriter is a filter pipeline with a codec at the bottom; Close only
// needs to reach the codec since the transforms are stateless across Close.
type chainWriter struct {
	io.Writer
	codec io.Closer
}

func (c *chainWriter) Close() error { return c.codec.Close() }
