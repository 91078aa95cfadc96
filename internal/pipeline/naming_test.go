package pipeline

import (
	"errors"
	"testing"

	"github.com/creativeyann17/go-xzip/internal/cli"
)

func TestCompressedName(t *testing.T) {
	cases := []struct {
		format cli.Format
		suffix string
		in     string
		want   string
	}{
		{cli.FormatXZ, "", "doc.txt", "doc.txt.xz"},
		{cli.FormatAlone, "", "doc.txt", "doc.txt.lzma"},
		{cli.FormatXZ, ".z", "doc.txt", "doc.txt.z"},
		{cli.FormatRaw, ".raw", "doc.txt", "doc.txt.raw"},
	}
	for _, tc := range cases {
		cfg := &cli.Config{Format: tc.format, Suffix: tc.suffix}
		got, err := compressedName(cfg, tc.in)
		if err != nil {
			t.Errorf("compressedName(%s, %q): %v", tc.format, tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("compressedName(%s, %q): expected %q, got %q", tc.format, tc.in, tc.want, got)
		}
	}
}

func TestCompressedNameRawNeedsSuffix(t *testing.T) {
	cfg := &cli.Config{Format: cli.FormatRaw}
	if _, err := compressedName(cfg, "doc.txt"); !errors.Is(err, ErrRawNeedsSuffix) {
		t.Errorf("Expected ErrRawNeedsSuffix, got %v", err)
	}
}

func TestUncompressedName(t *testing.T) {
	cases := []struct {
		suffix string
		in     string
		want   string
	}{
		{"", "doc.txt.xz", "doc.txt"},
		{"", "backup.txz", "backup.tar"},
		{"", "doc.txt.lzma", "doc.txt"},
		{"", "backup.tlz", "backup.tar"},
		{".z", "doc.txt.z", "doc.txt"},
		// A configured suffix wins over the standard table.
		{".txt.xz", "doc.txt.xz", "doc"},
	}
	for _, tc := range cases {
		cfg := &cli.Config{Suffix: tc.suffix}
		got, err := uncompressedName(cfg, tc.in)
		if err != nil {
			t.Errorf("uncompressedName(%q, %q): %v", tc.suffix, tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("uncompressedName(%q, %q): expected %q, got %q", tc.suffix, tc.in, tc.want, got)
		}
	}
}

func TestUncompressedNameErrors(t *testing.T) {
	cfg := &cli.Config{}
	for _, name := range []string{"doc.txt", ".xz", "doc.gz"} {
		if _, err := uncompressedName(cfg, name); !errors.Is(err, ErrUnknownSuffix) {
			t.Errorf("uncompressedName(%q): expected ErrUnknownSuffix, got %v", name, err)
		}
	}
}
