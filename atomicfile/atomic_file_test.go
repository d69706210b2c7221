package atomicfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert"
)

func assertFileExists(t *testing.T, path string) {
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file '%s' doesn't exist, os.Stat() failed with '%s'", path, err)
	}
	if !st.Mode().IsRegular() {
		t.Fatalf("path '%s' exists but is not a file (mode: %d)", path, int(st.Mode()))
	}
}

func assertFileNotExists(t *testing.T, path string) {
	_, err := os.Stat(path)
	if err == nil {
		t.Fatalf("file '%s' exists, expected to not exist", path)
	}
}

func TestWrite(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "frames.txt")
	f, err := New(dst)
	assert.NoError(t, err)
	assertFileExists(t, f.TempPath())
	assertFileNotExists(t, dst)

	d := []byte("trial index:\n0\t\n")
	n, err := f.Write(d)
	assert.NoError(t, err)
	assert.Equal(t, len(d), n)
	assert.NoError(t, f.Sync())
	// destination only appears after Close()
	assertFileNotExists(t, dst)

	assert.NoError(t, f.Close())
	assertFileNotExists(t, f.TempPath())
	got, err := os.ReadFile(dst)
	assert.NoError(t, err)
	assert.Equal(t, d, got)

	// calling Close twice is a no-op
	assert.NoError(t, f.Close())
}

func TestOverwrite(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "frames.txt")
	err := os.WriteFile(dst, []byte("old content that is longer"), 0644)
	assert.NoError(t, err)

	f, err := New(dst)
	assert.NoError(t, err)
	_, err = f.Write([]byte("new"))
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	got, err := os.ReadFile(dst)
	assert.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestSimulateError(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "frames.txt")
	f, err := New(dst)
	assert.NoError(t, err)
	_, err = f.Write([]byte("foo"))
	assert.NoError(t, err)

	errSimulated := errors.New("simulated")
	f.err = errSimulated
	assert.Equal(t, errSimulated, f.Close())
	assertFileNotExists(t, f.TempPath())
	assertFileNotExists(t, dst)
	// second Close() returns the same error
	assert.Equal(t, errSimulated, f.Close())
}

func writeWithPanic(t *testing.T, f *File) {
	defer f.RemoveIfNotClosed()

	_, err := f.Write([]byte("foo"))
	assert.NoError(t, err)
	panic("simulating a crash")
}

func TestRemoveIfNotClosed(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "frames.txt")
	f, err := New(dst)
	assert.NoError(t, err)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected to panic")
			}
		}()
		writeWithPanic(t, f)
	}()
	assertFileNotExists(t, f.TempPath())
	assertFileNotExists(t, dst)

	_, err = f.Write([]byte("bar"))
	assert.Equal(t, ErrCancelled, err)
	assert.Equal(t, ErrCancelled, f.Close())
}

func TestRemoveIfNotClosedAfterClose(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "frames.txt")
	f, err := New(dst)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	f.RemoveIfNotClosed()
	assertFileExists(t, dst)
	assert.NoError(t, f.Close())

	var nilFile *File
	nilFile.RemoveIfNotClosed()
}

func TestNewFailsEarly(t *testing.T) {
	// we can't create files in directories that don't exist
	dst := filepath.Join(t.TempDir(), "foo", "bar.txt")
	f, err := New(dst)
	assert.Error(t, err)
	assert.Nil(t, f)

	f, err = New(t.TempDir() + string(filepath.Separator))
	assert.Error(t, err)
	assert.Nil(t, f)
}
