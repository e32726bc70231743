package cli

import (
	"io"
	"os"

	"github.com/dobycrypt/doby"
)

// lazyFileWriter defers creating/truncating its underlying file until
// the first byte is written, so a decrypt invocation that fails
// before producing any plaintext never touches a pre-existing output
// file.
type lazyFileWriter struct {
	path string
	f    *os.File
}

func newLazyFileWriter(path string) *lazyFileWriter {
	return &lazyFileWriter{path: path}
}

func (w *lazyFileWriter) Write(p []byte) (int, error) {
	if w.f == nil {
		f, err := os.Create(w.path)
		if err != nil {
			return 0, &doby.IOError{Op: "write", Stream: w.path, Err: err}
		}
		w.f = f
	}
	return w.f.Write(p)
}

func (w *lazyFileWriter) Close() error {
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}

// OpenOutput returns the io.WriteCloser for the OUTPUT argument: "-"
// or an empty path means stdout (never lazily opened, since there is
// nothing to clobber); any other path is opened lazily via
// lazyFileWriter.
func OpenOutput(path string) io.WriteCloser {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}
	}
	return newLazyFileWriter(path)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenInput returns the io.ReadCloser for the INPUT argument: "-" or
// an empty path means stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &doby.IOError{Op: "read", Stream: path, Err: err}
	}
	return f, nil
}
