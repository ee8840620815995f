package fs

import (
	"bytes"
	"os"
	"unicode/utf8"

	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader reads module sources from the local file system.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the content of path decoded as UTF-8. A leading byte
// order mark is dropped.
func (r *Reader) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is resolved by the caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read source"), "path", path)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", zerr.With(zerr.New("source is not valid UTF-8"), "path", path)
	}
	return string(data), nil
}
