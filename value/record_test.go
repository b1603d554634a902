package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordInsertionOrder(t *testing.T) {
	r := NewRecordOf(P("zebra", 1), P("apple", 2), P("mango", 3))

	assert.Equal(t, []Key{"zebra", "apple", "mango"}, r.Keys(true))

	// Overwriting keeps the original position.
	r.Set("apple", 20)
	assert.Equal(t, []Key{"zebra", "apple", "mango"}, r.Keys(true))
	v, ok := r.Get("apple")
	require.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestRecordSymbolKeys(t *testing.T) {
	sym := NewSymbol("hidden")
	r := NewRecordOf(P("a", 1), P(sym, 2))

	assert.Equal(t, []Key{"a", sym}, r.Keys(true))
	assert.Equal(t, []Key{"a"}, r.Keys(false))

	// Symbols with the same description are distinct keys.
	other := NewSymbol("hidden")
	assert.False(t, r.Has(other))
	assert.True(t, r.Has(sym))
}

func TestRecordAccessor(t *testing.T) {
	var written Value
	r := NewRecord()
	r.Define("computed", Accessor(
		func(*Record) Value { return 99 },
		func(_ *Record, v Value) { written = v },
	))

	v, ok := r.Get("computed")
	require.True(t, ok)
	assert.Equal(t, 99, v)

	r.Set("computed", "in")
	assert.Equal(t, "in", written)

	// The descriptor itself is visible without invocation.
	f, ok := r.Descriptor("computed")
	require.True(t, ok)
	assert.Equal(t, FieldAccessor, f.Kind)
}

func TestRecordGetterlessAccessorReadsNil(t *testing.T) {
	r := NewRecord()
	r.Define("writeOnly", Accessor(nil, func(*Record, Value) {}))

	v, ok := r.Get("writeOnly")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestRecordSetterlessAccessorIgnoresWrites(t *testing.T) {
	r := NewRecord()
	r.Define("readOnly", Accessor(func(*Record) Value { return 1 }, nil))

	r.Set("readOnly", 2)
	v, _ := r.Get("readOnly")
	assert.Equal(t, 1, v)
}

func TestRecordEnumerableKeys(t *testing.T) {
	r := NewRecordOf(P("visible", 1))
	r.Define("hidden", Field{Kind: FieldStored, Value: 2, Enumerable: false})

	assert.Equal(t, []Key{"visible", "hidden"}, r.Keys(true))
	assert.Equal(t, []Key{"visible"}, r.EnumerableKeys(true))
}

func TestRecordDelete(t *testing.T) {
	r := NewRecordOf(P("a", 1), P("b", 2), P("c", 3))

	assert.True(t, r.Delete("b"))
	assert.False(t, r.Delete("b"))
	assert.Equal(t, []Key{"a", "c"}, r.Keys(true))
	assert.Equal(t, 2, r.Len())
}

func TestRecordTemplate(t *testing.T) {
	assert.Same(t, Plain, NewRecord().Template())
	assert.Same(t, Plain, NewRecordWith(nil).Template())

	custom := NewTemplate("widget")
	assert.Same(t, custom, NewRecordWith(custom).Template())
	assert.False(t, custom.Immutable())
	assert.True(t, NewImmutableTemplate("frozen").Immutable())
}

func TestRecordRejectsBadKeys(t *testing.T) {
	r := NewRecord()
	assert.Panics(t, func() { r.Set(42, "x") })
	assert.Panics(t, func() { r.Define(3.14, Stored("x")) })
}
