// internal/cli/filelist.go
package cli

import (
	"io"
	"os"
	"strings"
)

// StdinName is the display name used when a stream comes from standard input.
const StdinName = "(stdin)"

// FileListSource is an open --files/--files0 stream: a named file or
// standard input, with newline or NUL record separators.
type FileListSource struct {
	// Name is the path given on the command line, or StdinName.
	Name string

	sep   byte
	file  *os.File
	stdin bool
}

// newFileListSource opens path, or wraps standard input when path is empty.
func newFileListSource(path string, sep byte) (*FileListSource, error) {
	if path == "" {
		return &FileListSource{Name: StdinName, sep: sep, file: os.Stdin, stdin: true}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileListSource{Name: path, sep: sep, file: f}, nil
}

// Names reads the whole list and returns the non-empty records in order.
func (s *FileListSource) Names() ([]string, error) {
	data, err := io.ReadAll(s.file)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range strings.Split(string(data), string(s.sep)) {
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Close releases the underlying file. Standard input is left open.
func (s *FileListSource) Close() error {
	if s.stdin {
		return nil
	}
	return s.file.Close()
}
