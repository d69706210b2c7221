package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrCancelled is returned by calls subsequent to RemoveIfNotClosed()
	ErrCancelled = errors.New("cancelled")

	_ io.WriteCloser = &File{}
)

// File is written to a temporary file in the destination directory
// and renamed to the destination path on successful Close().
// A reader never sees a partially written destination file.
type File struct {
	dstPath string
	dir     string
	tmpFile *os.File
	tmpPath string
	// first error we encountered, sticky
	err error
}

// New creates a temporary file next to path. The destination directory
// must exist, so that we fail early instead of after writing all the data
func New(path string) (*File, error) {
	dir, fName := filepath.Split(path)
	if fName == "" {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	tmpFile, err := os.CreateTemp(dir, fName+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &File{
		dstPath: path,
		dir:     dir,
		tmpFile: tmpFile,
		tmpPath: tmpFile.Name(),
	}, nil
}

// TempPath returns path of the temporary file data is written to
func (f *File) TempPath() string {
	return f.tmpPath
}

func (f *File) setErr(err error) error {
	if err == nil {
		return nil
	}
	if f.err == nil {
		f.err = err
	}
	// an error means the destination will never be created
	// so delete temporary file now
	_ = f.Close()
	return err
}

// Write writes data to a temporary file
func (f *File) Write(d []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmpFile.Write(d)
	return n, f.setErr(err)
}

// Sync flushes temporary file to disk
func (f *File) Sync() error {
	if f.err != nil {
		return f.err
	}
	return f.setErr(f.tmpFile.Sync())
}

func (f *File) closed() bool {
	return f.tmpFile == nil
}

// RemoveIfNotClosed deletes temporary file if Close() wasn't called yet.
// The destination is not created or over-written.
// Meant to be used with defer, to clean up on early exit or panic.
// It's a no-op after Close()
func (f *File) RemoveIfNotClosed() {
	if f == nil || f.closed() {
		return
	}
	f.err = ErrCancelled
	_ = f.Close()
}

// Close syncs and closes temporary file and renames it to the destination.
// On any error the temporary file is deleted and destination is left as is.
// Can be called multiple times, returns the first error
func (f *File) Close() error {
	if f.closed() {
		return f.err
	}
	tmpFile := f.tmpFile
	f.tmpFile = nil

	// https://www.joeshaw.org/dont-defer-close-on-writable-files/
	errSync := tmpFile.Sync()
	errClose := tmpFile.Close()

	didRename := false
	defer func() {
		if !didRename {
			_ = os.Remove(f.tmpPath)
		}
	}()

	if f.err != nil {
		return f.err
	}
	err := errSync
	if err == nil {
		err = errClose
	}
	if err == nil {
		// over-writes dstPath if it exists
		err = os.Rename(f.tmpPath, f.dstPath)
		didRename = err == nil
		// sync directory after rename so that rename survives a crash.
		// errors are ignored, it's a nice to have
		if fdir, _ := os.Open(f.dir); fdir != nil {
			_ = fdir.Sync()
			_ = fdir.Close()
		}
	}
	f.err = err
	return err
}
