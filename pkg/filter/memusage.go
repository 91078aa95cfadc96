// pkg/filter/memusage.go
package filter

// CostModel estimates the peak memory usage of a filter chain for one
// codec instance. The configuration resolver consumes it to degrade presets
// and to cap the worker thread count under a memory budget.
type CostModel interface {
	EncoderMemory(c *Chain) uint64
	DecoderMemory(c *Chain) uint64
}

// DefaultCostModel returns the estimator matching the codecs this tool
// links against.
func DefaultCostModel() CostModel { return stdCost{} }

type stdCost struct{}

const (
	lzmaEncoderBase = 2 << 20
	lzmaDecoderBase = 64 << 10
	simpleFilterMem = 8 << 10
	deltaFilterMem  = 16 << 10
)

func (stdCost) EncoderMemory(c *Chain) uint64 {
	var total uint64
	for _, f := range c.Filters() {
		switch f.ID {
		case IDLZMA1, IDLZMA2:
			o := f.Options.(*LZMAOptions)
			dict := uint64(o.DictSize)
			// Hash chains keep roughly 7.5x the dictionary resident;
			// binary trees roughly 11.5x.
			if o.MatchFinder.BinaryTree() {
				total += dict*23/2 + lzmaEncoderBase
			} else {
				total += dict*15/2 + lzmaEncoderBase
			}
		case IDSubblock:
			o := f.Options.(*SubblockOptions)
			total += uint64(o.Size)*2 + simpleFilterMem
		case IDDelta:
			total += deltaFilterMem
		default:
			total += simpleFilterMem
		}
	}
	return total
}

func (stdCost) DecoderMemory(c *Chain) uint64 {
	var total uint64
	for _, f := range c.Filters() {
		switch f.ID {
		case IDLZMA1, IDLZMA2:
			o := f.Options.(*LZMAOptions)
			total += uint64(o.DictSize) + lzmaDecoderBase
		case IDSubblock:
			o := f.Options.(*SubblockOptions)
			total += uint64(o.Size) + simpleFilterMem
		case IDDelta:
			total += deltaFilterMem
		default:
			total += simpleFilterMem
		}
	}
	return total
}
