package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeList(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileListNewlineSeparated(t *testing.T) {
	path := writeList(t, []byte("a.txt\nb.txt\n\nc.txt"))

	src, err := newFileListSource(path, '\n')
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	names, err := src.Names()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.txt", "b.txt", "c.txt"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Expected %v, got %v", want, names)
	}
}

func TestFileListNulSeparated(t *testing.T) {
	// Names containing newlines are only expressible with the NUL
	// separator.
	path := writeList(t, []byte("odd\nname\x00plain.txt\x00"))

	src, err := newFileListSource(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	names, err := src.Names()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"odd\nname", "plain.txt"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Expected %v, got %v", want, names)
	}
}

func TestFileListEmpty(t *testing.T) {
	path := writeList(t, nil)

	src, err := newFileListSource(path, '\n')
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	names, err := src.Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no names, got %v", names)
	}
}
