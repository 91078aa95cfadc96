package engine

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/creativeyann17/go-xzip/internal/cli"
	"github.com/creativeyann17/go-xzip/pkg/filter"
)

func lzmaChain(t *testing.T, id filter.ID) *filter.Chain {
	t.Helper()
	opts, err := filter.Preset(1)
	if err != nil {
		t.Fatal(err)
	}
	chain := &filter.Chain{}
	if err := chain.Append(filter.Filter{ID: id, Options: opts}); err != nil {
		t.Fatal(err)
	}
	return chain
}

func testData() []byte {
	data := make([]byte, 64<<10)
	for i := range data {
		data[i] = byte(i * 7 % 251)
	}
	return data
}

func roundtrip(t *testing.T, enc, dec Params) []byte {
	t.Helper()
	data := testData()

	var buf bytes.Buffer
	w, err := NewWriter(&buf, enc)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Encoder produced no output")
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), dec)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("Decoded data differs from input")
	}
	return buf.Bytes()
}

func TestXZRoundtrip(t *testing.T) {
	chain := lzmaChain(t, filter.IDLZMA2)
	stream := roundtrip(t,
		Params{Format: cli.FormatXZ, Check: cli.CheckCRC64, Chain: chain},
		Params{Format: cli.FormatXZ})

	if !bytes.HasPrefix(stream, xzMagic) {
		t.Error("xz stream does not start with the container magic")
	}
}

func TestXZRoundtripNoCheck(t *testing.T) {
	chain := lzmaChain(t, filter.IDLZMA2)
	roundtrip(t,
		Params{Format: cli.FormatXZ, Check: cli.CheckNone, Chain: chain},
		Params{Format: cli.FormatXZ})
}

func TestAloneRoundtrip(t *testing.T) {
	chain := lzmaChain(t, filter.IDLZMA1)
	stream := roundtrip(t,
		Params{Format: cli.FormatAlone, Chain: chain},
		Params{Format: cli.FormatAlone})

	if bytes.HasPrefix(stream, xzMagic) {
		t.Error("Legacy stream must not carry the xz magic")
	}
}

func TestRawRoundtrip(t *testing.T) {
	chain := lzmaChain(t, filter.IDLZMA2)
	p := Params{Format: cli.FormatRaw, Chain: chain}
	roundtrip(t, p, p)
}

func TestRawRoundtripWithDelta(t *testing.T) {
	opts, _ := filter.Preset(1)
	chain := &filter.Chain{}
	if err := chain.Add(filter.IDDelta, "dist=4"); err != nil {
		t.Fatal(err)
	}
	if err := chain.Append(filter.Filter{ID: filter.IDLZMA2, Options: opts}); err != nil {
		t.Fatal(err)
	}

	p := Params{Format: cli.FormatRaw, Chain: chain}
	roundtrip(t, p, p)
}

func TestAutoDetection(t *testing.T) {
	roundtrip(t,
		Params{Format: cli.FormatXZ, Check: cli.CheckCRC32, Chain: lzmaChain(t, filter.IDLZMA2)},
		Params{Format: cli.FormatAuto})

	roundtrip(t,
		Params{Format: cli.FormatAlone, Chain: lzmaChain(t, filter.IDLZMA1)},
		Params{Format: cli.FormatAuto})
}

func TestWriterRejectsWrongChain(t *testing.T) {
	cases := []Params{
		{Format: cli.FormatXZ, Chain: lzmaChain(t, filter.IDLZMA1)},
		{Format: cli.FormatAlone, Chain: lzmaChain(t, filter.IDLZMA2)},
		{Format: cli.FormatRaw, Chain: lzmaChain(t, filter.IDLZMA1)},
	}
	for _, p := range cases {
		if _, err := NewWriter(io.Discard, p); !errors.Is(err, ErrUnsupportedChain) {
			t.Errorf("Format %s: expected ErrUnsupportedChain, got %v", p.Format, err)
		}
	}

	if _, err := NewWriter(io.Discard, Params{Format: cli.FormatRaw, Chain: &filter.Chain{}}); !errors.Is(err, ErrChainRequired) {
		t.Errorf("Expected ErrChainRequired, got %v", err)
	}
}

func TestRawRejectsBranchFilterPrefix(t *testing.T) {
	opts, _ := filter.Preset(1)
	chain := &filter.Chain{}
	if err := chain.Add(filter.IDX86, ""); err != nil {
		t.Fatal(err)
	}
	if err := chain.Append(filter.Filter{ID: filter.IDLZMA2, Options: opts}); err != nil {
		t.Fatal(err)
	}

	_, err := NewWriter(io.Discard, Params{Format: cli.FormatRaw, Chain: chain})
	if !errors.Is(err, ErrUnsupportedChain) {
		t.Errorf("Expected ErrUnsupportedChain, got %v", err)
	}
}

func TestSniff(t *testing.T) {
	br := bufio.NewReader(bytes.NewReader(append(xzMagic, 0x01, 0x02)))
	if f := Sniff(br); f != cli.FormatXZ {
		t.Errorf("Expected xz, got %v", f)
	}

	br = bufio.NewReader(bytes.NewReader([]byte{0x5d, 0, 0, 0x80, 0}))
	if f := Sniff(br); f != cli.FormatAlone {
		t.Errorf("Expected the legacy format, got %v", f)
	}
}

func TestDeltaTransform(t *testing.T) {
	var buf bytes.Buffer
	w := newDeltaWriter(&buf, 1)
	if _, err := w.Write([]byte{10, 20, 30}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{10, 10, 10}) {
		t.Errorf("Expected constant deltas, got %v", buf.Bytes())
	}

	r := newDeltaReader(bytes.NewReader(buf.Bytes()), 1)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{10, 20, 30}) {
		t.Errorf("Decoder did not invert the transform: %v", out)
	}
}

func TestDeltaTransformLargeDistance(t *testing.T) {
	data := testData()
	for _, dist := range []int{1, 4, 255, 256} {
		var buf bytes.Buffer
		w := newDeltaWriter(&buf, dist)
		// Split writes to exercise history carried across calls.
		if _, err := w.Write(data[:100]); err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data[100:]); err != nil {
			t.Fatal(err)
		}

		out, err := io.ReadAll(newDeltaReader(&buf, dist))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out, data) {
			t.Errorf("dist=%d: decoder did not invert the transform", dist)
		}
	}
}
