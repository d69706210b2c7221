package framelog

import (
	"bufio"
	"io"
	"os"

	"github.com/kjk/framelog/atomicfile"
	"github.com/kjk/framelog/u"
)

// sink is the only thing that writes to the destination.
// Layers, from the top: buffer -> compressor (optional) -> file.
// The first write error is remembered and returned by all later calls
type sink struct {
	path string
	bw   *bufio.Writer
	// nil if not compressing
	compressor io.WriteCloser
	// nil if we write to a caller provided io.Writer
	file io.WriteCloser
	err  error
}

// openSink creates (or truncates) the file at path
func openSink(path string, opts *Options) (*sink, error) {
	ext, err := opts.compression().ext(path)
	if err != nil {
		return nil, err
	}
	var f io.WriteCloser
	if opts.atomic() {
		f, err = atomicfile.New(path)
	} else {
		f, err = os.Create(path)
	}
	if err != nil {
		return nil, err
	}
	s, err := newSinkLayers(f, ext, opts)
	if err != nil {
		if af, ok := f.(*atomicfile.File); ok {
			af.RemoveIfNotClosed()
		} else {
			u.CloseNoError(f)
		}
		return nil, err
	}
	s.path = path
	s.file = f
	return s, nil
}

// newSink writes to w. w is not closed by the sink
func newSink(w io.Writer, opts *Options) (*sink, error) {
	ext, err := opts.compression().ext("")
	if err != nil {
		return nil, err
	}
	return newSinkLayers(w, ext, opts)
}

func newSinkLayers(w io.Writer, ext string, opts *Options) (*sink, error) {
	s := &sink{}
	if ext != "" {
		cw, err := u.NewCompressWriter(w, ext)
		if err != nil {
			return nil, err
		}
		s.compressor = cw
		w = cw
	}
	s.bw = bufio.NewWriterSize(w, opts.bufferSize())
	return s, nil
}

func (s *sink) setErr(err error) error {
	if err != nil && s.err == nil {
		s.err = err
	}
	return s.err
}

func (s *sink) write(d []byte) error {
	if s.err != nil {
		return s.err
	}
	_, err := s.bw.Write(d)
	return s.setErr(err)
}

// flush pushes buffered data to the destination and, for files, to disk
func (s *sink) flush() error {
	if s.err != nil {
		return s.err
	}
	if err := s.bw.Flush(); err != nil {
		return s.setErr(err)
	}
	if f, ok := s.file.(interface{ Sync() error }); ok && s.compressor == nil {
		// compressed data is only complete after close so syncing
		// a compressed file here wouldn't make it readable
		return s.setErr(f.Sync())
	}
	return nil
}

// close flushes everything and closes the file.
// In atomic mode, a failed sink never replaces the destination
func (s *sink) close() error {
	s.setErr(s.bw.Flush())
	if s.compressor != nil {
		s.setErr(s.compressor.Close())
	}
	if s.file == nil {
		return s.err
	}
	if af, ok := s.file.(*atomicfile.File); ok && s.err != nil {
		af.RemoveIfNotClosed()
		return s.err
	}
	if f, ok := s.file.(*os.File); ok {
		s.setErr(f.Sync())
	}
	s.setErr(s.file.Close())
	return s.err
}
