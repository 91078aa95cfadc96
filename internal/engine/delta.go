// internal/engine/delta.go
//
// Byte-delta transform for raw chains: the encoder emits the difference to
// the byte dist positions back, the decoder adds it back up. History starts
// as zeroes on both sides.
package engine

import "io"

type deltaWriter struct {
	w    io.Writer
	hist []byte
	pos  int
	buf  []byte
}

func newDeltaWriter(w io.Writer, dist int) *deltaWriter {
	return &deltaWriter{w: w, hist: make([]byte, dist)}
}

func (d *deltaWriter) Write(p []byte) (int, error) {
	if cap(d.buf) < len(p) {
		d.buf = make([]byte, len(p))
	}
	buf := d.buf[:len(p)]
	for i, b := range p {
		buf[i] = b - d.hist[d.pos]
		d.hist[d.pos] = b
		d.pos++
		if d.pos == len(d.hist) {
			d.pos = 0
		}
	}
	return d.w.Write(buf)
}

type deltaReader struct {
	r    io.Reader
	hist []byte
	pos  int
}

func newDeltaReader(r io.Reader, dist int) *deltaReader {
	return &deltaReader{r: r, hist: make([]byte, dist)}
}

func (d *deltaReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	for i := 0; i < n; i++ {
		v := p[i] + d.hist[d.pos]
		p[i] = v
		d.hist[d.pos] = v
		d.pos++
		if d.pos == len(d.hist) {
			d.pos = 0
		}
	}
	return n, err
}
