package u

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

var ErrUnsupportedCompression = errors.New("unsupported compression")

// implement io.ReadCloser over os.File wrapped with io.Reader.
// io.Closer goes to os.File, io.Reader goes to wrapping reader
type readerWrappedFile struct {
	f *os.File
	r io.Reader
}

func (rc *readerWrappedFile) Close() error {
	if c, ok := rc.r.(interface{ Close() }); ok {
		// zstd.Decoder.Close() doesn't return an error
		c.Close()
	}
	return rc.f.Close()
}

func (rc *readerWrappedFile) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

func wrapInReadCloser(f *os.File, r io.Reader, err error) (io.ReadCloser, error) {
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readerWrappedFile{
		f: f,
		r: r,
	}, nil
}

// CompressionExt returns lower-cased extension of path if it's one
// of the compression extensions we know about, "" otherwise
func CompressionExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".bz2", ".zst", ".zstd", ".br":
		return ext
	}
	return ""
}

// OpenFileMaybeCompressed opens a file that might be compressed with gzip
// or bzip2 or zstd or brotli, based on file extension
func OpenFileMaybeCompressed(path string) (io.ReadCloser, error) {
	ext := CompressionExt(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch ext {
	case ".gz":
		r, err := gzip.NewReader(f)
		return wrapInReadCloser(f, r, err)
	case ".bz2":
		return wrapInReadCloser(f, bzip2.NewReader(f), nil)
	case ".zst", ".zstd":
		r, err := zstd.NewReader(f)
		return wrapInReadCloser(f, r, err)
	case ".br":
		return wrapInReadCloser(f, brotli.NewReader(f), nil)
	}
	return f, nil
}

// ReadFileMaybeCompressed reads file, decompressing it if needed
func ReadFileMaybeCompressed(path string) ([]byte, error) {
	r, err := OpenFileMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func zstdNewWriter(dst io.Writer) (*zstd.Encoder, error) {
	// in my tests:
	// - zstd.SpeedBestCompression is much slower and not much better
	// - default concurrency is GONUMPROCS() but adding concurrency of any value
	//   doesn't consistently speed things up
	return zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedBetterCompression), zstd.WithEncoderConcurrency(1))
}

// CanCompress returns true if NewCompressWriter can write compression
// matching ext
func CanCompress(ext string) bool {
	switch ext {
	case ".gz", ".zst", ".zstd", ".br":
		return true
	}
	return false
}

// NewCompressWriter returns a writer that compresses into dst using
// compression matching ext (as returned by CompressionExt).
// Closing returned writer flushes compressed data but doesn't close dst
func NewCompressWriter(dst io.Writer, ext string) (io.WriteCloser, error) {
	switch ext {
	case ".gz":
		return gzip.NewWriterLevel(dst, gzip.BestCompression)
	case ".zst", ".zstd":
		return zstdNewWriter(dst)
	case ".br":
		return brotli.NewWriterLevel(dst, brotli.DefaultCompression), nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedCompression, ext)
}
