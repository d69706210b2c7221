package framelog

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/kjk/framelog/log"
)

// Recorder records one row of type R per frame and marks frames at which
// trials start. Finalize() writes everything as a tab-separated table.
//
// Capacity for frames and trials is fixed at creation. A Recorder is
// not safe for concurrent use.
type Recorder[R any] struct {
	rows     rowStore[R]
	trials   indexStore
	headline string
	// set by the first Finalize(), guards against writing the table twice
	written bool
	closed  bool

	sink   *sink
	fields appendFieldsFunc[R]
	nl     string

	// re-used between writes
	buf       []byte
	fieldsBuf []any
}

func validateCapacity(nTrials, nFrames int) error {
	if nTrials <= 0 || nFrames <= 0 {
		return fmt.Errorf("%w: trials: %d, frames: %d", ErrInvalidCapacity, nTrials, nFrames)
	}
	return nil
}

func newRecorder[R any](nTrials, nFrames int, s *sink, opts *Options) *Recorder[R] {
	return &Recorder[R]{
		rows:   newRowStore[R](nFrames),
		trials: newIndexStore(nTrials),
		sink:   s,
		fields: fieldsOf[R](),
		nl:     opts.newline(),
	}
}

// Create creates a Recorder writing to a file at path, truncating
// the file if it exists. The file stays open until Close().
// opts can be nil
func Create[R any](nTrials, nFrames int, path string, opts *Options) (*Recorder[R], error) {
	if err := validateCapacity(nTrials, nFrames); err != nil {
		return nil, err
	}
	s, err := openSink(path, opts)
	if err != nil {
		// err is *os.PathError which already has the path
		return nil, fmt.Errorf("framelog: create: %w", err)
	}
	r := newRecorder[R](nTrials, nFrames, s, opts)
	// last resort for recorders that are dropped without Close()
	runtime.SetFinalizer(r, (*Recorder[R]).closeUnreachable)
	return r, nil
}

// New creates a Recorder writing to w. Close() flushes but doesn't close w.
// opts can be nil
func New[R any](nTrials, nFrames int, w io.Writer, opts *Options) (*Recorder[R], error) {
	if err := validateCapacity(nTrials, nFrames); err != nil {
		return nil, err
	}
	s, err := newSink(w, opts)
	if err != nil {
		return nil, fmt.Errorf("framelog: new: %w", err)
	}
	return newRecorder[R](nTrials, nFrames, s, opts), nil
}

// With creates a Recorder, calls fn and closes the recorder on every
// exit path from fn, including a panic. Close() finalizes the recorder
// if fn didn't. Returns error from fn or, if fn succeeded, from Close()
func With[R any](nTrials, nFrames int, path string, opts *Options, fn func(*Recorder[R]) error) (err error) {
	r, err := Create[R](nTrials, nFrames, path, opts)
	if err != nil {
		return err
	}
	defer func() {
		errClose := r.Close()
		if err == nil {
			err = errClose
		}
	}()
	return fn(r)
}

// SetHeadline sets text written after "fr_nr\t" in table header.
// Last call before Finalize() wins
func (r *Recorder[R]) SetHeadline(s string) {
	r.headline = s
}

// SetColumns sets headline to names separated by tabs
func (r *Recorder[R]) SetColumns(names ...string) {
	r.headline = strings.Join(names, "\t")
}

func (r *Recorder[R]) Headline() string {
	return r.headline
}

// StartNewTrial marks the next frame to be added as the start of a new trial.
// Trials without frames are allowed and record the same frame number
func (r *Recorder[R]) StartNewTrial() error {
	if err := r.checkCanAdd(); err != nil {
		return err
	}
	if err := r.trials.add(r.rows.len()); err != nil {
		return fmt.Errorf("framelog: StartNewTrial: %w", err)
	}
	return nil
}

// AddFrame appends row as the next frame
func (r *Recorder[R]) AddFrame(row R) error {
	if err := r.checkCanAdd(); err != nil {
		return err
	}
	if err := r.rows.add(row); err != nil {
		return fmt.Errorf("framelog: AddFrame: %w", err)
	}
	return nil
}

func (r *Recorder[R]) checkCanAdd() error {
	if r.closed {
		return ErrClosed
	}
	// frames added after the table was written would be silently lost
	if r.written {
		return ErrFinalized
	}
	return nil
}

// AddLine writes text of tokens, without separators, followed by a newline.
// Goes to the output right away, outside of the table
func (r *Recorder[R]) AddLine(tokens ...any) error {
	return r.writeRaw(tokens, true)
}

// AddWord is like AddLine but without a newline
func (r *Recorder[R]) AddWord(tokens ...any) error {
	return r.writeRaw(tokens, false)
}

func (r *Recorder[R]) writeRaw(tokens []any, newline bool) error {
	if r.closed {
		return ErrClosed
	}
	b := r.buf[:0]
	for _, t := range tokens {
		b = appendText(b, t)
	}
	if newline {
		b = append(b, r.nl...)
	}
	r.buf = b
	return r.sink.write(b)
}

// Finalize writes trial index and frames table and flushes the output.
// Only the first call writes, subsequent calls are no-ops
func (r *Recorder[R]) Finalize() error {
	if r.written {
		return nil
	}
	r.written = true
	r.writeTable()
	err := r.sink.flush()
	if err != nil {
		return fmt.Errorf("framelog: Finalize: %w", err)
	}
	log.Verbosef("framelog: wrote %d frames, %d trials to '%s'\n", r.rows.len(), r.trials.len(), r.sink.path)
	log.IfErrf(log.Event("framelog.finalize", "path", r.sink.path, "frames", r.rows.len(), "trials", r.trials.len()))
	return nil
}

// Close finalizes the recorder if Finalize() wasn't called, flushes and
// closes the output. It's meant to be deferred, so failures are also
// logged. Can be called multiple times, safe to call on nil receiver
func (r *Recorder[R]) Close() error {
	if r == nil || r.closed {
		return nil
	}
	runtime.SetFinalizer(r, nil)
	var err error
	if !r.written {
		err = r.finalizeNoPanic()
		log.IfErrf(err, "framelog: finalize in Close() of '%s' failed with '%v'", r.sink.path, err)
	}
	r.closed = true
	errClose := r.sink.close()
	if errClose != nil && err == nil {
		err = fmt.Errorf("framelog: Close: %w", errClose)
		log.Errorf("framelog: closing '%s' failed with '%s'", r.sink.path, errClose)
	}
	return err
}

// finalizeNoPanic is Finalize() that turns a panic (e.g. from Fields()
// of a row) into an error so that Close() still closes the sink
func (r *Recorder[R]) finalizeNoPanic() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("framelog: Finalize: %w: %v", ErrFinalizePanic, p)
		}
	}()
	return r.Finalize()
}

// closeUnreachable runs from a GC finalizer for recorders nobody closed.
// It must not panic
func (r *Recorder[R]) closeUnreachable() {
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("framelog: panic closing unreachable recorder of '%s': %v", r.sink.path, p)
		}
	}()
	log.Errorf("framelog: recorder of '%s' wasn't closed, closing in finalizer", r.sink.path)
	_ = r.Close()
}

// NumFrames returns number of frames added so far
func (r *Recorder[R]) NumFrames() int {
	return r.rows.len()
}

// NumTrials returns number of trials started so far
func (r *Recorder[R]) NumTrials() int {
	return r.trials.len()
}

func (r *Recorder[R]) FrameCapacity() int {
	return r.rows.cap()
}

func (r *Recorder[R]) TrialCapacity() int {
	return r.trials.cap()
}

// Frame returns i-th frame and true, or zero value and false if
// i is out of range
func (r *Recorder[R]) Frame(i int) (R, bool) {
	return r.rows.at(i)
}

// Trials returns a copy of frame numbers at which trials start
func (r *Recorder[R]) Trials() []int {
	return append([]int(nil), r.trials.starts...)
}

// Finalized returns true if the table was written
func (r *Recorder[R]) Finalized() bool {
	return r.written
}

// Path returns path of the output file, "" when writing to io.Writer
func (r *Recorder[R]) Path() string {
	return r.sink.path
}
