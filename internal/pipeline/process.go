// internal/pipeline/process.go
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/creativeyann17/go-xzip/internal/cli"
	"github.com/creativeyann17/go-xzip/internal/engine"
)

// openInput opens a named input, treating "-" as standard input. The size
// is -1 when unknown.
func (r *runner) openInput(name string) (in io.ReadCloser, size int64, display string, err error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), -1, cli.StdinName, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, name, err
	}
	size = -1
	if stat, err := f.Stat(); err == nil {
		size = stat.Size()
	}
	return f, size, name, nil
}

// openOutput creates the output file, refusing to overwrite without --force.
func (r *runner) openOutput(name string) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if r.cfg.Force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	return os.OpenFile(name, flags, 0644)
}

// trackProgress wraps in with a progress bar when verbose display is on and
// the input size is known.
func (r *runner) trackProgress(in io.ReadCloser, size int64, display string) io.ReadCloser {
	if r.progress == nil || size <= 0 {
		return in
	}
	bar := r.progress.AddBar(size,
		mpb.PrependDecorators(decor.Name(display+" "), decor.CountersKibiByte("% .1f / % .1f")),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return bar.ProxyReader(in)
}

func (r *runner) compressFile(name string) error {
	in, size, display, err := r.openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()

	var out *os.File
	toStdout := r.cfg.Stdout || name == "-"
	if toStdout {
		out = os.Stdout
	} else {
		outName, err := compressedName(r.cfg, name)
		if err != nil {
			return err
		}
		if out, err = r.openOutput(outName); err != nil {
			return err
		}
	}

	in = r.trackProgress(in, size, display)
	enc, err := engine.NewWriter(out, r.params)
	if err == nil {
		_, err = io.Copy(enc, in)
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	}

	if !toStdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out.Name())
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", display, err)
	}

	r.logf(cli.VerbosityDebug, "%s: compressed", display)
	return r.removeOriginal(name, toStdout)
}

func (r *runner) decompressFile(name string) error {
	in, size, display, err := r.openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()

	var out *os.File
	toStdout := r.cfg.Stdout || name == "-"
	if toStdout {
		out = os.Stdout
	} else {
		outName, err := uncompressedName(r.cfg, name)
		if err != nil {
			return err
		}
		if out, err = r.openOutput(outName); err != nil {
			return err
		}
	}

	in = r.trackProgress(in, size, display)
	dec, err := engine.NewReader(in, r.params)
	if err == nil {
		_, err = io.Copy(out, dec)
	}

	if !toStdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out.Name())
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", display, err)
	}

	r.logf(cli.VerbosityDebug, "%s: decompressed", display)
	return r.removeOriginal(name, toStdout)
}

func (r *runner) testFile(name string) error {
	in, _, display, err := r.openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()

	dec, err := engine.NewReader(in, r.params)
	if err == nil {
		_, err = io.Copy(io.Discard, dec)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", display, err)
	}
	r.logf(cli.VerbosityVerbose, "%s: ok", display)
	return nil
}

func (r *runner) listFile(name string) error {
	in, size, display, err := r.openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()

	br := bufio.NewReader(in)
	format := r.cfg.Format
	if format == cli.FormatAuto {
		format = engine.Sniff(br)
	}

	counted := &countingReader{r: br}
	dec, err := engine.NewReader(counted, engine.Params{Format: format, Chain: r.cfg.Chain})
	var uncompressed int64
	if err == nil {
		uncompressed, err = io.Copy(io.Discard, dec)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", display, err)
	}

	compressed := counted.n
	if size >= 0 {
		compressed = size
	}
	fmt.Printf("%s: format=%s, compressed=%d B, uncompressed=%d B\n",
		display, format, compressed, uncompressed)
	return nil
}

// removeOriginal deletes the input file after a successful conversion unless
// the configuration keeps it.
func (r *runner) removeOriginal(name string, toStdout bool) error {
	if r.cfg.KeepOriginal || toStdout || name == "-" {
		return nil
	}
	if err := os.Remove(name); err != nil {
		return err
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
