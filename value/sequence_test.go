package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceBasics(t *testing.T) {
	s := NewSequence("a", "b")
	require.Equal(t, 2, s.Len())

	v, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	s.Append("c")
	assert.Equal(t, 3, s.Len())
}

func TestSequenceHoles(t *testing.T) {
	s := NewSequence()
	s.Set(3, "x") // indices 0..2 become holes

	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Has(0))
	assert.True(t, s.Has(3))

	_, ok := s.Get(1)
	assert.False(t, ok)

	// A stored nil is not a hole.
	s.Set(0, nil)
	assert.True(t, s.Has(0))
}

func TestSequenceSetLen(t *testing.T) {
	s := NewSequence(1, 2, 3)

	s.SetLen(5)
	assert.Equal(t, 5, s.Len())
	assert.False(t, s.Has(4))

	s.SetLen(1)
	assert.Equal(t, 1, s.Len())
	v, _ := s.Get(0)
	assert.Equal(t, 1, v)

	s.SetLen(-1)
	assert.Equal(t, 0, s.Len())
}

func TestSequenceValues(t *testing.T) {
	s := NewSequence("a")
	s.AppendHole()
	s.Append("c")

	assert.Equal(t, []Value{"a", nil, "c"}, s.Values())
}

func TestSequenceNegativeIndexPanics(t *testing.T) {
	assert.Panics(t, func() { NewSequence().Set(-1, "x") })
}
