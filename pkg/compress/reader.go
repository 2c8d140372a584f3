// Package compress provides transparent decompression of compressed data
// logs. Loggers on embedded targets commonly rotate captures through gzip,
// zstd, or lz4; the windowing run reads them the same way as plain text.
package compress

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/signalframe/signalframe/pkg/errors"
)

// Algorithm represents a compression algorithm.
type Algorithm string

const (
	// None represents an uncompressed file
	None Algorithm = "none"
	// Gzip represents gzip compression
	Gzip Algorithm = "gzip"
	// Zstd represents zstandard compression
	Zstd Algorithm = "zstd"
	// LZ4 represents lz4 compression
	LZ4 Algorithm = "lz4"
)

// ForPath returns the algorithm implied by the file extension.
func ForPath(path string) Algorithm {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// OpenFile opens path for reading, stacking the decompressor selected by
// the file extension. The returned ReadCloser closes both the decompressor
// and the underlying file.
func OpenFile(path string) (io.ReadCloser, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the CLI flag
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypePrecondition, "failed to open input file")
	}

	rc, err := wrapReader(file, ForPath(path))
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return rc, nil
}

func wrapReader(file *os.File, algorithm Algorithm) (io.ReadCloser, error) {
	switch algorithm {
	case None:
		return file, nil
	case Gzip:
		gr, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read gzip stream")
		}
		return &reader{Reader: gr, closers: []func() error{gr.Close, file.Close}}, nil
	case Zstd:
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read zstd stream")
		}
		return &reader{
			Reader: zr,
			closers: []func() error{
				func() error { zr.Close(); return nil },
				file.Close,
			},
		}, nil
	case LZ4:
		return &reader{Reader: lz4.NewReader(file), closers: []func() error{file.Close}}, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeInternal, "unsupported compression algorithm: %s", algorithm)
	}
}

// reader chains a decompressing reader with the close sequence for the
// resources behind it.
type reader struct {
	io.Reader
	closers []func() error
}

// Close closes the decompressor first, then the underlying file.
func (r *reader) Close() error {
	var firstErr error
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
