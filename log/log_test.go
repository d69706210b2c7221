package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert"
)

func captureLog(t *testing.T, dir string) *[]string {
	var lines []string
	Init(&Config{
		Dir: dir,
		OnLog: func(s string) {
			lines = append(lines, s)
		},
	})
	t.Cleanup(Close)
	return &lines
}

func readDaily(t *testing.T, dir string) string {
	name := time.Now().UTC().Format("2006-01-02") + ".txt"
	d, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	return string(d)
}

func TestLogf(t *testing.T) {
	dir := t.TempDir()
	lines := captureLog(t, dir)

	Logf("hello %d\n", 5)
	Logf("no args\n")
	Verbosef("not logged\n")
	assert.Equal(t, []string{"hello 5\n", "no args\n"}, *lines)

	CloseWriteDaily(&log)
	assert.Equal(t, "hello 5\nno args\n", readDaily(t, filepath.Join(dir, "log")))
}

func TestErrorf(t *testing.T) {
	dir := t.TempDir()
	lines := captureLog(t, dir)

	Errorf("bad thing: %s", "disk full")
	assert.Equal(t, 1, len(*lines))
	assert.True(t, strings.HasPrefix((*lines)[0], "bad thing: disk full\n"))
	// callstack includes this test file
	assert.True(t, strings.Contains((*lines)[0], "log_test.go"))

	CloseWriteDaily(&errorsLog)
	s := readDaily(t, filepath.Join(dir, "errors"))
	assert.True(t, strings.HasPrefix(s, "bad thing: disk full\n"))
}

func TestIfErrf(t *testing.T) {
	lines := captureLog(t, "")
	assert.False(t, IfErrf(nil))
	assert.Equal(t, 0, len(*lines))

	assert.True(t, IfErrf(os.ErrNotExist))
	assert.True(t, IfErrf(os.ErrNotExist, "open %s failed", "foo.txt"))
	assert.Equal(t, 2, len(*lines))
	assert.True(t, strings.HasPrefix((*lines)[0], os.ErrNotExist.Error()))
	assert.True(t, strings.HasPrefix((*lines)[1], "open foo.txt failed"))
}

func TestMarshalEvent(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 45, 123000000, time.UTC)
	ms := "1705314645123"
	tests := []struct {
		name string
		d    []byte
		exp  string
	}{
		{"finalize", []byte("frames: 5"), "--- 9 " + ms + " finalize\nframes: 5\n"},
		{"finalize", []byte("frames: 5\n"), "--- 10 " + ms + " finalize\nframes: 5\n"},
		{"", []byte("x"), "--- 1 " + ms + "\nx\n"},
		{"empty", nil, "--- 0 " + ms + " empty\n"},
	}
	for _, test := range tests {
		got := MarshalEvent(test.name, ts, test.d)
		assert.Equal(t, test.exp, string(got))
	}
}

func TestEvent(t *testing.T) {
	dir := t.TempDir()
	captureLog(t, dir)

	err := Event("framelog.finalize", "frames", 5, "trials", 2)
	assert.NoError(t, err)
	err = Event("odd", "frames")
	assert.Error(t, err)

	CloseWriteDaily(&eventsLog)
	s := readDaily(t, filepath.Join(dir, "events"))
	assert.True(t, strings.HasPrefix(s, "--- "))
	assert.True(t, strings.Contains(s, " framelog.finalize\n"))
	assert.True(t, strings.Contains(s, "frames: 5"))
	assert.True(t, strings.Contains(s, "trials: 2"))
}

func TestNilWriteDaily(t *testing.T) {
	var w *WriteDaily
	assert.NoError(t, w.WriteString("foo"))
	assert.NoError(t, w.Sync())
	assert.NoError(t, w.Close())
	_, err := w.Writer()
	assert.Error(t, err)
}

func TestCallstack(t *testing.T) {
	cs := callstack(0)
	frames := strings.Split(cs, "\n")
	assert.True(t, len(frames) > 1)
	assert.True(t, strings.Contains(frames[0], "log_test.go:"), "%s", frames[0])
}
