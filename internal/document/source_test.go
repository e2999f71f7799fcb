package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSourceFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte("key: value\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := ReadSource(path, strings.NewReader("unused"))
	if err != nil {
		t.Fatalf("ReadSource() error = %v", err)
	}
	if got := string(data); got != "key: value\n" {
		t.Errorf("ReadSource() = %q, want %q", got, "key: value\n")
	}
}

func TestReadSourceStdin(t *testing.T) {
	t.Parallel()

	data, err := ReadSource(StdinName, strings.NewReader("key: value\n"))
	if err != nil {
		t.Fatalf("ReadSource() error = %v", err)
	}
	if got := string(data); got != "key: value\n" {
		t.Errorf("ReadSource() = %q, want %q", got, "key: value\n")
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := ReadSource(path, strings.NewReader(""))
	if err == nil {
		t.Fatal("ReadSource() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "failed to read file") {
		t.Errorf("ReadSource() error = %v, want failed to read file", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadSource() error = %v, want os.ErrNotExist", err)
	}
}

func TestReadSourceStdinFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("stream broke")

	_, err := ReadSource(StdinName, failingReader{err: boom})
	if err == nil {
		t.Fatal("ReadSource() error = nil, want error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("ReadSource() error = %v, want wrapped %v", err, boom)
	}
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
