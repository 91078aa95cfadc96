package filter

import (
	"strings"
	"testing"
)

func TestParseLZMAOptions(t *testing.T) {
	opts, err := parseLZMAOptions("dict=4MiB,lc=2,lp=1,pb=0,mode=fast,nice=100,mf=hc3,depth=10")
	if err != nil {
		t.Fatal(err)
	}
	lzma := opts.(*LZMAOptions)
	if lzma.DictSize != 4<<20 {
		t.Errorf("Expected dict 4MiB, got %d", lzma.DictSize)
	}
	if lzma.LC != 2 || lzma.LP != 1 || lzma.PB != 0 {
		t.Errorf("Unexpected lc/lp/pb: %d/%d/%d", lzma.LC, lzma.LP, lzma.PB)
	}
	if lzma.Mode != ModeFast {
		t.Errorf("Expected fast mode, got %v", lzma.Mode)
	}
	if lzma.NiceLen != 100 {
		t.Errorf("Expected nice 100, got %d", lzma.NiceLen)
	}
	if lzma.MatchFinder != MFHC3 {
		t.Errorf("Expected hc3, got %v", lzma.MatchFinder)
	}
	if lzma.Depth != 10 {
		t.Errorf("Expected depth 10, got %d", lzma.Depth)
	}
}

func TestParseLZMAOptionsEmptyIsDefaultPreset(t *testing.T) {
	opts, err := parseLZMAOptions("")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Preset(DefaultPreset)
	if *opts.(*LZMAOptions) != *want {
		t.Errorf("Expected default preset options, got %+v", opts)
	}
}

func TestParseLZMAOptionsErrors(t *testing.T) {
	cases := []string{
		"dict=1",          // below minimum
		"dict=huge",       // not a size
		"lc=5",            // out of range
		"lc=3,lp=2",       // lc+lp > 4
		"mode=turbo",      // unknown mode
		"mf=bt5",          // unknown match finder
		"nice=1",          // below minimum
		"wat=1",           // unknown key
		"dict",            // missing value
		"=1",              // missing key
	}
	for _, s := range cases {
		if _, err := parseLZMAOptions(s); err == nil {
			t.Errorf("parseLZMAOptions(%q): expected error", s)
		}
	}
}

func TestParseDeltaOptions(t *testing.T) {
	opts, err := parseDeltaOptions("")
	if err != nil {
		t.Fatal(err)
	}
	if d := opts.(*DeltaOptions).Dist; d != 1 {
		t.Errorf("Expected default dist 1, got %d", d)
	}

	opts, err = parseDeltaOptions("dist=256")
	if err != nil {
		t.Fatal(err)
	}
	if d := opts.(*DeltaOptions).Dist; d != 256 {
		t.Errorf("Expected dist 256, got %d", d)
	}

	for _, s := range []string{"dist=0", "dist=257", "size=4"} {
		if _, err := parseDeltaOptions(s); err == nil {
			t.Errorf("parseDeltaOptions(%q): expected error", s)
		}
	}
}

func TestParseSubblockOptions(t *testing.T) {
	opts, err := parseSubblockOptions("size=8k,rle=4")
	if err != nil {
		t.Fatal(err)
	}
	sb := opts.(*SubblockOptions)
	if sb.Size != 8<<10 {
		t.Errorf("Expected size 8KiB, got %d", sb.Size)
	}
	if sb.RLE != 4 {
		t.Errorf("Expected rle 4, got %d", sb.RLE)
	}

	opts, err = parseSubblockOptions("")
	if err != nil {
		t.Fatal(err)
	}
	if opts.(*SubblockOptions).Size != defaultSubblockSize {
		t.Errorf("Expected default size, got %d", opts.(*SubblockOptions).Size)
	}
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"123", 123},
		{"8k", 8 << 10},
		{"8K", 8 << 10},
		{"8KiB", 8 << 10},
		{"4m", 4 << 20},
		{"4MiB", 4 << 20},
		{"1g", 1 << 30},
		{"1GiB", 1 << 30},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in, 1, 1<<40)
		if err != nil {
			t.Errorf("ParseSize(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSize(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}

	for _, s := range []string{"", "k", "-1", "10x", "10kk", "99999999999999999999"} {
		if _, err := ParseSize(s, 1, 1<<40); err == nil {
			t.Errorf("ParseSize(%q): expected error", s)
		}
	}

	if _, err := ParseSize("0", 1, 100); err == nil {
		t.Error("ParseSize below minimum: expected error")
	}
	if _, err := ParseSize("101", 1, 100); err == nil {
		t.Error("ParseSize above maximum: expected error")
	}
	if !strings.Contains(errString(ParseSize("2g", 1, 1<<30)), "too large") {
		t.Error("Expected bounds error for oversized value")
	}
}

func errString(_ uint64, err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
