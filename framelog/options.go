package framelog

import (
	"fmt"

	"github.com/kjk/framelog/u"
)

// Compression selects how the output is compressed
type Compression int

const (
	// CompressAuto picks compression based on file extension:
	// .gz, .zst (or .zstd), .br. Other extensions are not compressed.
	// Output to io.Writer is not compressed
	CompressAuto Compression = iota
	CompressNone
	CompressGzip
	CompressZstd
	CompressBrotli
)

func (c Compression) String() string {
	switch c {
	case CompressAuto:
		return "auto"
	case CompressNone:
		return "none"
	case CompressGzip:
		return "gzip"
	case CompressZstd:
		return "zstd"
	case CompressBrotli:
		return "brotli"
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

// ext returns compression extension understood by u.NewCompressWriter
// or "" for no compression
func (c Compression) ext(path string) (string, error) {
	switch c {
	case CompressAuto:
		ext := u.CompressionExt(path)
		if ext != "" && !u.CanCompress(ext) {
			// fail before creating the file
			return "", fmt.Errorf("%w: '%s'", ErrUnsupportedCompression, ext)
		}
		return ext, nil
	case CompressNone:
		return "", nil
	case CompressGzip:
		return ".gz", nil
	case CompressZstd:
		return ".zst", nil
	case CompressBrotli:
		return ".br", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
}

const defaultBufferSize = 64 * 1024

// Options configures a Recorder. nil *Options means defaults
type Options struct {
	// if true, output is written to a temporary file which is renamed
	// to the destination on Close(). Readers never see a partial file.
	// Only applies to Create()
	Atomic bool
	// Compression of the output, CompressAuto by default
	Compression Compression
	// line terminator, defaults to platform's newline
	Newline string
	// size of write buffer, defaults to 64 kB
	BufferSize int
}

func (o *Options) newline() string {
	if o == nil || o.Newline == "" {
		return u.Newline()
	}
	return o.Newline
}

func (o *Options) bufferSize() int {
	if o == nil || o.BufferSize <= 0 {
		return defaultBufferSize
	}
	return o.BufferSize
}

func (o *Options) atomic() bool {
	return o != nil && o.Atomic
}

func (o *Options) compression() Compression {
	if o == nil {
		return CompressAuto
	}
	return o.Compression
}
