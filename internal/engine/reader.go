// internal/engine/reader.go
package engine

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"github.com/creativeyann17/go-xzip/internal/cli"
)

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// NewReader returns a stream decoder for the given parameters. With
// FormatAuto the container is sniffed from the stream header: the xz magic
// selects the xz decoder, anything else is treated as a legacy .lzma stream.
func NewReader(r io.Reader, p Params) (io.Reader, error) {
	switch p.Format {
	case cli.FormatXZ:
		return xz.NewReader(r)

	case cli.FormatAlone:
		return lzma.NewReader(r)

	case cli.FormatRaw:
		deltas, opts, err := splitRawChain(p.Chain)
		if err != nil {
			return nil, err
		}
		cfg := lzma.Reader2Config{DictCap: int(opts.DictSize)}
		lr, err := cfg.NewReader2(r)
		if err != nil {
			return nil, err
		}
		var out io.Reader = lr
		for i := len(deltas) - 1; i >= 0; i-- {
			out = newDeltaReader(out, deltas[i].Dist)
		}
		return out, nil

	case cli.FormatAuto:
		br := bufio.NewReader(r)
		magic, err := br.Peek(len(xzMagic))
		if err == nil && bytes.Equal(magic, xzMagic) {
			return xz.NewReader(br)
		}
		return lzma.NewReader(br)

	default:
		return nil, fmt.Errorf("cannot decode format %s", p.Format)
	}
}

// Sniff reports the container format detected from the first bytes of a
// stream. Used by the list operation.
func Sniff(br *bufio.Reader) cli.Format {
	magic, err := br.Peek(len(xzMagic))
	if err == nil && bytes.Equal(magic, xzMagic) {
		return cli.FormatXZ
	}
	return cli.FormatAlone
}
