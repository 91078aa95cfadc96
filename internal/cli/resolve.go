// internal/cli/resolve.go
//
// The compression settings resolver. It runs once after all flags are
// interpreted, when compressing or whenever the raw format is in use (a raw
// stream needs a concrete chain even for decoding, since it has no
// self-describing header).
package cli

import (
	"errors"
	"fmt"

	"github.com/creativeyann17/go-xzip/pkg/filter"
)

func (c *Config) resolveSettings(cost filter.CostModel) error {
	// With no filter flags, derive a single-filter chain from the numeric
	// preset. Only this synthesized path is eligible for automatic
	// degradation below; an explicit chain is a hard contract.
	synthesized := false
	if c.Chain.Len() == 0 {
		if err := c.synthesizeChain(c.Preset); err != nil {
			return err
		}
		synthesized = true
	}

	// The legacy container supports exactly one filter and it has to be
	// LZMA1.
	if c.Format == FormatAlone {
		filters := c.Chain.Filters()
		if len(filters) != 1 || filters[0].ID != filter.IDLZMA1 {
			return ErrAloneChain
		}
	}

	usage := c.chainMemory(cost)
	if usage > c.MemoryBudget {
		if !synthesized {
			return ErrChainOverBudget
		}
		// Lower the preset one level at a time until the estimate fits.
		// Level 1 failing is fatal; the user must raise the budget.
		for usage > c.MemoryBudget {
			if c.Preset == filter.MinPreset {
				return ErrBudgetTooSmall
			}
			c.Preset--
			if err := c.synthesizeChain(c.Preset); err != nil {
				return err
			}
			usage = c.chainMemory(cost)
		}
	}

	if usage == 0 {
		return errors.New("internal error: zero memory usage estimate")
	}

	// Cap the worker count so that budget/usage instances fit. The floor
	// of one guarantees forward progress regardless of the budget.
	limit := c.MemoryBudget / usage
	if limit < 1 {
		limit = 1
	}
	threads := uint64(c.ThreadsRequested)
	if threads > limit {
		threads = limit
	}
	c.ThreadsEffective = int(threads)

	return nil
}

// synthesizeChain replaces the chain with the canonical single LZMA filter
// for the given preset level: LZMA1 for the legacy container, LZMA2
// otherwise.
func (c *Config) synthesizeChain(level int) error {
	opts, err := filter.Preset(level)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	id := filter.IDLZMA2
	if c.Format == FormatAlone {
		id = filter.IDLZMA1
	}
	chain := &filter.Chain{}
	if err := chain.Append(filter.Filter{ID: id, Options: opts}); err != nil {
		return err
	}
	c.Chain = chain
	return nil
}

// chainMemory estimates per-instance memory usage for the chosen direction:
// encoder cost when compressing, decoder cost when decoding or testing a raw
// stream.
func (c *Config) chainMemory(cost filter.CostModel) uint64 {
	if c.Mode == ModeCompress {
		return cost.EncoderMemory(c.Chain)
	}
	return cost.DecoderMemory(c.Chain)
}
