// Package filter models the transform chain handed to the stream codec:
// filter identifiers, per-filter option records, the ordered chain with its
// capacity limit, and the preset table used when no chain is given.
package filter

import "fmt"

// ID identifies a filter kind.
type ID int

const (
	// IDUnknown marks an unset filter slot. It is never part of a valid chain.
	IDUnknown ID = iota
	IDX86
	IDPowerPC
	IDIA64
	IDARM
	IDARMThumb
	IDSPARC
	IDDelta
	IDSubblock
	IDLZMA1
	IDLZMA2
)

// String returns the canonical flag-style name of the filter.
func (id ID) String() string {
	if s, ok := registry[id]; ok {
		return s.name
	}
	return "unknown"
}

// MaxChainLength is the maximum number of filters in a chain. The block
// header format allows no more.
const MaxChainLength = 7

// Filter is a single chain entry: a filter kind plus its options payload.
// Options is nil for the branch/call/jump transform filters, which take none.
type Filter struct {
	ID      ID
	Options Options
}

// Chain is an ordered filter sequence. Order is preserved exactly as added;
// duplicate or nonsensical combinations are the codec's concern, not ours.
type Chain struct {
	filters []Filter
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int { return len(c.filters) }

// Filters returns the chain entries in order.
func (c *Chain) Filters() []Filter { return c.filters }

// Append adds an already-built filter entry, enforcing the chain capacity.
func (c *Chain) Append(f Filter) error {
	if len(c.filters) == MaxChainLength {
		return ErrTooManyFilters
	}
	c.filters = append(c.filters, f)
	return nil
}

// Add parses optstr with the parser registered for id and appends the
// resulting entry. Filters without a registered parser reject a non-empty
// optstr.
func (c *Chain) Add(id ID, optstr string) error {
	spec, ok := registry[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownFilter, id)
	}

	var opts Options
	if spec.parse == nil {
		if optstr != "" {
			return fmt.Errorf("--%s: %w", spec.name, ErrOptionsNotAllowed)
		}
	} else {
		var err error
		opts, err = spec.parse(optstr)
		if err != nil {
			return fmt.Errorf("--%s: %w", spec.name, err)
		}
	}

	return c.Append(Filter{ID: id, Options: opts})
}

// registrySpec holds the static per-filter metadata: the canonical name and
// the option-string parser, nil when the filter takes no options.
type registrySpec struct {
	name  string
	parse func(string) (Options, error)
}

var registry = map[ID]registrySpec{
	IDX86:      {name: "x86"},
	IDPowerPC:  {name: "powerpc"},
	IDIA64:     {name: "ia64"},
	IDARM:      {name: "arm"},
	IDARMThumb: {name: "armthumb"},
	IDSPARC:    {name: "sparc"},
	IDDelta:    {name: "delta", parse: parseDeltaOptions},
	IDSubblock: {name: "subblock", parse: parseSubblockOptions},
	IDLZMA1:    {name: "lzma1", parse: parseLZMAOptions},
	IDLZMA2:    {name: "lzma2", parse: parseLZMAOptions},
}
