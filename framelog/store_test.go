package framelog

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert"
)

func TestRowStore(t *testing.T) {
	s := newRowStore[int](3)
	assert.Equal(t, 0, s.len())
	assert.Equal(t, 3, s.cap())
	for i := 0; i < 3; i++ {
		assert.NoError(t, s.add(i*10))
	}
	err := s.add(30)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, 3, s.len())
	assert.Equal(t, 3, s.cap())

	v, ok := s.at(2)
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = s.at(3)
	assert.False(t, ok)
	_, ok = s.at(-1)
	assert.False(t, ok)
}

func TestRowStoreDoesntGrow(t *testing.T) {
	s := newRowStore[string](2)
	assert.NoError(t, s.add("a"))
	p := &s.rows[0]
	assert.NoError(t, s.add("b"))
	assert.Error(t, s.add("c"))
	// backing array is the one allocated up front
	assert.True(t, p == &s.rows[0])
}

func TestIndexStore(t *testing.T) {
	s := newIndexStore(2)
	assert.NoError(t, s.add(0))
	assert.NoError(t, s.add(0))
	err := s.add(5)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, []int{0, 0}, s.starts)
	assert.Equal(t, 2, s.len())
	assert.Equal(t, 2, s.cap())
}
