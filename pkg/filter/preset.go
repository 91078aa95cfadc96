// pkg/filter/preset.go
package filter

const (
	MinPreset = 1
	MaxPreset = 9

	// DefaultPreset is used when neither a preset level nor a filter chain
	// is given.
	DefaultPreset = 7
)

// presetTable maps preset levels to LZMA options. Lower levels use the fast
// mode with hash-chain match finders; level 4 and up switch to normal mode
// with the four-byte binary tree.
var presetTable = [MaxPreset + 1]LZMAOptions{
	1: {DictSize: 1 << 20, LC: 3, PB: 2, Mode: ModeFast, MatchFinder: MFHC4, NiceLen: 128},
	2: {DictSize: 1 << 21, LC: 3, PB: 2, Mode: ModeFast, MatchFinder: MFHC4, NiceLen: 273},
	3: {DictSize: 1 << 22, LC: 3, PB: 2, Mode: ModeFast, MatchFinder: MFHC4, NiceLen: 273},
	4: {DictSize: 1 << 22, LC: 3, PB: 2, Mode: ModeNormal, MatchFinder: MFBT4, NiceLen: 16},
	5: {DictSize: 1 << 23, LC: 3, PB: 2, Mode: ModeNormal, MatchFinder: MFBT4, NiceLen: 32},
	6: {DictSize: 1 << 23, LC: 3, PB: 2, Mode: ModeNormal, MatchFinder: MFBT4, NiceLen: 64},
	7: {DictSize: 1 << 24, LC: 3, PB: 2, Mode: ModeNormal, MatchFinder: MFBT4, NiceLen: 64},
	8: {DictSize: 1 << 25, LC: 3, PB: 2, Mode: ModeNormal, MatchFinder: MFBT4, NiceLen: 64},
	9: {DictSize: 1 << 26, LC: 3, PB: 2, Mode: ModeNormal, MatchFinder: MFBT4, NiceLen: 64},
}

// Preset returns a fresh copy of the canonical LZMA options for the given
// level.
func Preset(level int) (*LZMAOptions, error) {
	if level < MinPreset || level > MaxPreset {
		return nil, ErrBadPreset
	}
	opts := presetTable[level]
	return &opts, nil
}
