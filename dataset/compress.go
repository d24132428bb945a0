package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Supported content encodings.
const (
	EncodingIdentity = ""
	EncodingGzip     = "gzip"
	EncodingZstd     = "zstd"
	EncodingBzip2    = "bzip2"
)

// ErrUnsupportedEncoding is returned for a content encoding with no
// decompressor.
var ErrUnsupportedEncoding = errors.New("unsupported content encoding")

// EncodingOf returns the content encoding implied by a file name.
func EncodingOf(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz", ".gzip":
		return EncodingGzip
	case ".zst", ".zstd":
		return EncodingZstd
	case ".bz2":
		return EncodingBzip2
	default:
		return EncodingIdentity
	}
}

// Open opens a file and wraps it in a decompressor matching its extension.
func Open(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	rc, err := NewDecompressor(file, EncodingOf(filename))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}

	return &stackedCloser{ReadCloser: rc, under: file}, nil
}

// NewDecompressor wraps r in a reader for the given content encoding.
// The returned reader does not close r.
func NewDecompressor(r io.Reader, encoding string) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case EncodingIdentity, "identity":
		return io.NopCloser(r), nil
	case EncodingGzip, "x-gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case EncodingZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case EncodingBzip2, "x-bzip2":
		br, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, err
		}
		return br, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedEncoding, encoding)
	}
}

// stackedCloser closes the decompressor and then the underlying file.
type stackedCloser struct {
	io.ReadCloser
	under io.Closer
}

func (s *stackedCloser) Close() error {
	err := s.ReadCloser.Close()
	if uerr := s.under.Close(); err == nil {
		err = uerr
	}
	return err
}
