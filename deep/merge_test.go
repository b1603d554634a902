package deep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/strux/value"
)

func TestMergeSourcePriority(t *testing.T) {
	target := value.NewRecordOf(value.P("host", "localhost"), value.P("port", 8080))
	source := value.NewRecordOf(value.P("port", 9090), value.P("debug", true))

	require.NoError(t, Merge(target, source, MergeOptions{}))

	assert.True(t, Equal(target, value.NewRecordOf(
		value.P("host", "localhost"),
		value.P("port", 9090),
		value.P("debug", true),
	)))
}

func TestMergeRecursesIntoNestedRecords(t *testing.T) {
	target := value.NewRecordOf(value.P("server", value.NewRecordOf(
		value.P("host", "localhost"),
		value.P("port", 8080),
	)))
	source := value.NewRecordOf(value.P("server", value.NewRecordOf(
		value.P("port", 9090),
	)))

	before, _ := target.Get("server")
	require.NoError(t, Merge(target, source, MergeOptions{}))

	after, _ := target.Get("server")
	assert.True(t, before == after, "existing nested record is merged into, not replaced")

	host, _ := reachGet(t, target, "server", "host")
	port, _ := reachGet(t, target, "server", "port")
	assert.Equal(t, "localhost", host)
	assert.Equal(t, 9090, port)
}

func TestMergeSequencesAppendByDefault(t *testing.T) {
	target := value.NewRecordOf(value.P("tags", value.NewSequence("a")))
	source := value.NewRecordOf(value.P("tags", value.NewSequence("b", "c")))

	require.NoError(t, Merge(target, source, MergeOptions{}))

	tags, _ := target.Get("tags")
	assert.Equal(t, []value.Value{"a", "b", "c"}, tags.(*value.Sequence).Values())
}

func TestMergeSequencesReplace(t *testing.T) {
	target := value.NewRecordOf(value.P("tags", value.NewSequence("a")))
	source := value.NewRecordOf(value.P("tags", value.NewSequence("b")))

	require.NoError(t, Merge(target, source, MergeOptions{ReplaceArrays: true}))

	tags, _ := target.Get("tags")
	assert.Equal(t, []value.Value{"b"}, tags.(*value.Sequence).Values())
}

func TestMergeSequenceHolesCarryOver(t *testing.T) {
	target := value.NewSequence("a")
	source := value.NewSequence("b")
	source.AppendHole()

	require.NoError(t, Merge(target, source, MergeOptions{}))

	assert.Equal(t, 3, target.Len())
	assert.True(t, target.Has(1))
	assert.False(t, target.Has(2))
}

func TestMergeNullSemantics(t *testing.T) {
	target := value.NewRecordOf(value.P("keep", "v"), value.P("drop", "v"))
	source := value.NewRecordOf(value.P("drop", nil))

	require.NoError(t, Merge(target, source, MergeOptions{}))
	v, _ := target.Get("drop")
	assert.Nil(t, v, "nil overwrites by default")

	target2 := value.NewRecordOf(value.P("keep", "v"))
	source2 := value.NewRecordOf(value.P("keep", nil))
	require.NoError(t, Merge(target2, source2, MergeOptions{KeepNulls: true}))
	v2, _ := target2.Get("keep")
	assert.Equal(t, "v", v2)
}

func TestMergeClonesSourceStructures(t *testing.T) {
	nested := value.NewRecordOf(value.P("x", 1))
	source := value.NewRecordOf(value.P("nested", nested))
	target := value.NewRecord()

	require.NoError(t, Merge(target, source, MergeOptions{}))

	got, _ := target.Get("nested")
	require.False(t, got == value.Value(nested), "merged structures are deep clones")

	// Mutating the merged slot leaves the source alone.
	got.(*value.Record).Set("x", 99)
	v, _ := nested.Get("x")
	assert.Equal(t, 1, v)
}

func TestMergeSpecialKindsReplaceWholesale(t *testing.T) {
	target := value.NewRecordOf(value.P("at", value.NewRecordOf(value.P("x", 1))))
	when := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	source := value.NewRecordOf(value.P("at", when))

	require.NoError(t, Merge(target, source, MergeOptions{}))

	got, _ := target.Get("at")
	assert.Equal(t, value.TagDateTime, value.Classify(got))
}

func TestMergeSkipsSelfReferentialSlot(t *testing.T) {
	shared := value.NewRecordOf(value.P("x", 1))
	target := value.NewRecordOf(value.P("slot", shared))
	source := value.NewRecordOf(value.P("slot", shared))

	require.NoError(t, Merge(target, source, MergeOptions{}))

	got, _ := target.Get("slot")
	assert.True(t, got == value.Value(shared))
	v, _ := shared.Get("x")
	assert.Equal(t, 1, v)
}

func TestMergeSkipsTemplateOverrideKey(t *testing.T) {
	target := value.NewRecordOf(value.P("a", 1))
	source := value.NewRecordOf(
		value.P("__proto__", value.NewRecordOf(value.P("evil", true))),
		value.P("b", 2),
	)

	require.NoError(t, Merge(target, source, MergeOptions{}))

	assert.False(t, target.Has("__proto__"))
	assert.True(t, target.Has("b"))
}

func TestMergeSkipSymbols(t *testing.T) {
	sym := value.NewSymbol("meta")
	target := value.NewRecord()
	source := value.NewRecordOf(value.P("a", 1), value.P(sym, 2))

	require.NoError(t, Merge(target, source, MergeOptions{SkipSymbols: true}))
	assert.False(t, target.Has(sym))
	assert.True(t, target.Has("a"))
}

func TestMergeIgnoresNonEnumerableSourceFields(t *testing.T) {
	source := value.NewRecordOf(value.P("visible", 1))
	source.Define("hidden", value.Field{Kind: value.FieldStored, Value: 2, Enumerable: false})

	target := value.NewRecord()
	require.NoError(t, Merge(target, source, MergeOptions{}))

	assert.True(t, target.Has("visible"))
	assert.False(t, target.Has("hidden"))
}

func TestMergeShapeErrors(t *testing.T) {
	err := Merge(value.NewRecord(), value.NewSequence(1), MergeOptions{})
	require.Error(t, err)
	assert.True(t, IsArgumentError(err))

	err = Merge(value.NewSequence(), value.NewRecord(), MergeOptions{})
	require.Error(t, err)
	assert.True(t, IsArgumentError(err))

	err = Merge(value.NewRecord(), 42, MergeOptions{})
	require.Error(t, err)
	assert.True(t, IsArgumentError(err))
}

func TestMergeSourceUnchanged(t *testing.T) {
	source := value.NewRecordOf(
		value.P("nested", value.NewRecordOf(value.P("x", 1))),
		value.P("tags", value.NewSequence("a")),
	)
	snapshot := Clone(source)

	target := value.NewRecordOf(value.P("nested", value.NewRecordOf(value.P("y", 2))))
	require.NoError(t, Merge(target, source, MergeOptions{}))

	assert.True(t, Equal(source, snapshot))
}

// reachGet is a test helper stepping through nested record fields.
func reachGet(t *testing.T, r *value.Record, keys ...string) (value.Value, bool) {
	t.Helper()
	var v value.Value = r
	for _, k := range keys {
		rec, ok := v.(*value.Record)
		require.True(t, ok)
		v, ok = rec.Get(k)
		require.True(t, ok)
	}
	return v, true
}
