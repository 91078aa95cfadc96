// Package engine adapts the resolved run configuration to the linked codec:
// xz and legacy .lzma containers plus raw LZMA2 streams, with the delta
// filter applied in front of raw chains. The configuration layer treats this
// package as an opaque collaborator.
package engine

import (
	"errors"
	"fmt"

	"github.com/ulikunitz/xz"

	"github.com/creativeyann17/go-xzip/internal/cli"
	"github.com/creativeyann17/go-xzip/pkg/filter"
)

// Params carries the slice of the run configuration the codec needs.
type Params struct {
	Format cli.Format
	Check  cli.Check
	Chain  *filter.Chain
}

var (
	// ErrUnsupportedChain is returned for a filter chain the linked codec
	// cannot realize, e.g. branch filters in front of an xz stream.
	ErrUnsupportedChain = errors.New("filter chain not supported by the linked codec")

	// ErrChainRequired is returned when a raw stream is requested without
	// a filter chain.
	ErrChainRequired = errors.New("raw streams require a filter chain")
)

// checkSum maps the configured integrity check to the codec constant. The
// second result is true when the check is disabled.
func checkSum(c cli.Check) (byte, bool) {
	switch c {
	case cli.CheckCRC32:
		return xz.CRC32, false
	case cli.CheckSHA256:
		return xz.SHA256, false
	case cli.CheckNone:
		return 0, true
	default:
		return xz.CRC64, false
	}
}

// soleLZMA returns the LZMA options of a single-entry chain with the given
// filter id.
func soleLZMA(c *filter.Chain, id filter.ID) (*filter.LZMAOptions, error) {
	filters := c.Filters()
	if len(filters) != 1 || filters[0].ID != id {
		return nil, fmt.Errorf("%w: want a single %s filter", ErrUnsupportedChain, id)
	}
	return filters[0].Options.(*filter.LZMAOptions), nil
}

// splitRawChain validates a raw chain: zero or more delta filters followed
// by a final LZMA2. It returns the delta prefix and the LZMA options.
func splitRawChain(c *filter.Chain) ([]*filter.DeltaOptions, *filter.LZMAOptions, error) {
	if c == nil || c.Len() == 0 {
		return nil, nil, ErrChainRequired
	}
	filters := c.Filters()
	last := filters[len(filters)-1]
	if last.ID != filter.IDLZMA2 {
		return nil, nil, fmt.Errorf("%w: raw streams must end in the lzma2 filter", ErrUnsupportedChain)
	}
	var deltas []*filter.DeltaOptions
	for _, f := range filters[:len(filters)-1] {
		if f.ID != filter.IDDelta {
			return nil, nil, fmt.Errorf("%w: %s cannot precede lzma2 in a raw stream", ErrUnsupportedChain, f.ID)
		}
		deltas = append(deltas, f.Options.(*filter.DeltaOptions))
	}
	return deltas, last.Options.(*filter.LZMAOptions), nil
}
