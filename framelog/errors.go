package framelog

import (
	"errors"

	"github.com/kjk/framelog/u"
)

var (
	// ErrInvalidCapacity is returned when trial or frame capacity is not positive
	ErrInvalidCapacity = errors.New("capacity must be positive")
	// ErrCapacityExceeded is returned by AddFrame() and StartNewTrial() when
	// all pre-allocated slots are used
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrFinalized is returned when adding frames or trials after Finalize()
	ErrFinalized = errors.New("recorder already finalized")
	// ErrClosed is returned by calls after Close()
	ErrClosed = errors.New("recorder closed")
	// ErrFinalizePanic is returned by Close() when writing the table
	// panicked, e.g. in Fields() of a row
	ErrFinalizePanic = errors.New("panic while writing table")
	// ErrUnsupportedCompression is returned when asked to write
	// a compression format we can't write (e.g. .bz2)
	ErrUnsupportedCompression = u.ErrUnsupportedCompression
)
