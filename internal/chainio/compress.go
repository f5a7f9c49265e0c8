// SPDX-License-Identifier: MIT

package chainio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Codec names the compression applied to a file.
type Codec int

const (
	CodecNone Codec = iota
	CodecGzip
	CodecZstd
)

// CodecFor picks the codec from the file extension.
func CodecFor(path string) Codec {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CodecGzip
	case strings.HasSuffix(path, ".zst"):
		return CodecZstd
	default:
		return CodecNone
	}
}

// readCloser closes the decompressor before the file underneath it.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error { return closeAll(r.closers) }

// writeCloser flushes the compressor before closing the file underneath it.
type writeCloser struct {
	io.Writer
	closers []func() error
}

func (w *writeCloser) Close() error { return closeAll(w.closers) }

// closeAll runs every closer in order and joins their errors.
func closeAll(closers []func() error) error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}

	return errors.Join(errs...)
}

// Open opens path for reading, decompressing by extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chainio: open %s: %w", path, err)
	}

	switch CodecFor(path) {
	case CodecGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()

			return nil, fmt.Errorf("chainio: gzip %s: %w", path, err)
		}

		return &readCloser{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case CodecZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()

			return nil, fmt.Errorf("chainio: zstd %s: %w", path, err)
		}

		return &readCloser{Reader: zr, closers: []func() error{
			func() error {
				zr.Close()

				return nil
			},
			f.Close,
		}}, nil
	default:
		return f, nil
	}
}

// Create creates path for writing, compressing by extension. The returned
// writer must be closed for compressed output to be complete.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("chainio: create %s: %w", path, err)
	}

	switch CodecFor(path) {
	case CodecGzip:
		zw := gzip.NewWriter(f)

		return &writeCloser{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	case CodecZstd:
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()

			return nil, fmt.Errorf("chainio: zstd %s: %w", path, err)
		}

		return &writeCloser{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	default:
		return f, nil
	}
}
