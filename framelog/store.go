package framelog

import "fmt"

// rowStore is a fixed capacity, append-only list of rows.
// Backing storage is allocated once and never grows
type rowStore[R any] struct {
	rows []R
}

func newRowStore[R any](capacity int) rowStore[R] {
	return rowStore[R]{
		rows: make([]R, 0, capacity),
	}
}

func (s *rowStore[R]) add(row R) error {
	if len(s.rows) == cap(s.rows) {
		return fmt.Errorf("%w: all %d frames used", ErrCapacityExceeded, cap(s.rows))
	}
	s.rows = append(s.rows, row)
	return nil
}

func (s *rowStore[R]) len() int {
	return len(s.rows)
}

func (s *rowStore[R]) cap() int {
	return cap(s.rows)
}

func (s *rowStore[R]) at(i int) (R, bool) {
	if i < 0 || i >= len(s.rows) {
		var zero R
		return zero, false
	}
	return s.rows[i], true
}

// indexStore remembers frame numbers at which trials start.
// Like rowStore, it has a fixed capacity
type indexStore struct {
	starts []int
}

func newIndexStore(capacity int) indexStore {
	return indexStore{
		starts: make([]int, 0, capacity),
	}
}

// add records nRows as the start of a new trial.
// nRows never decreases so starts stay sorted
func (s *indexStore) add(nRows int) error {
	if len(s.starts) == cap(s.starts) {
		return fmt.Errorf("%w: all %d trials used", ErrCapacityExceeded, cap(s.starts))
	}
	s.starts = append(s.starts, nRows)
	return nil
}

func (s *indexStore) len() int {
	return len(s.starts)
}

func (s *indexStore) cap() int {
	return cap(s.starts)
}
