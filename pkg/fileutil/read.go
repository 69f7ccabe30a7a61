// Package fileutil provides size-bounded file reading for skill documents.
package fileutil

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// ErrTooLarge indicates that the input exceeded the caller's size limit.
var ErrTooLarge = errors.New("input exceeds size limit")

// ReadFileWithLimit reads a file of at most limit bytes. Larger files fail
// with ErrTooLarge; the size check uses the file's reported size first to
// fail fast, then re-checks the bytes actually read.
func ReadFileWithLimit(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > int64(limit) {
		return nil, errors.Wrapf(ErrTooLarge, "file is %d bytes, limit is %d", info.Size(), limit)
	}

	data, err := ReadAllWithLimit(f, limit)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	return data, nil
}

// ReadAllWithLimit reads r to the end, failing with ErrTooLarge once more
// than limit bytes have been consumed.
func ReadAllWithLimit(r io.Reader, limit int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > limit {
		return nil, errors.Wrapf(ErrTooLarge, "input exceeds %d byte limit", limit)
	}
	return data, nil
}
