package deep

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/strux/value"
)

func TestEqualPrimitives(t *testing.T) {
	tests := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"nil/nil", nil, nil, true},
		{"nil/zero", nil, 0, false},
		{"same string", "x", "x", true},
		{"string vs number", "1", 1, false},
		{"bool mismatch", true, false, false},
		{"int vs float", 1, 1.0, true},
		{"int vs uint8", 3, uint8(3), true},
		{"uint vs negative int", uint64(7), -7, false},
		{"float32 vs float64", float32(0.5), 0.5, true},
		{"nan equals nan", math.NaN(), math.NaN(), true},
		{"signed zeros", 0.0, math.Copysign(0, -1), true},
		{"int zero vs float neg zero", 0, math.Copysign(0, -1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualTagMismatch(t *testing.T) {
	assert.False(t, Equal(value.NewRecord(), value.NewSequence()))
	assert.False(t, Equal(value.NewDict(), value.NewSet()))
	assert.False(t, Equal(value.NewWeakDict(), value.NewWeakSet()))
	assert.False(t, Equal(value.NewSequence(), []byte{}))
}

func TestEqualSpecialKinds(t *testing.T) {
	instant := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, Equal(instant, instant.In(time.FixedZone("X", 3600))),
		"same instant in different zones")
	assert.False(t, Equal(instant, instant.Add(time.Nanosecond)))

	assert.True(t, Equal(regexp.MustCompile(`a+`), regexp.MustCompile(`a+`)))
	assert.False(t, Equal(regexp.MustCompile(`a+`), regexp.MustCompile(`a*`)))

	assert.True(t, Equal([]byte{1, 2}, []byte{1, 2}))
	assert.False(t, Equal([]byte{1, 2}, []byte{1, 3}))

	// Weak containers are traversal-opaque; matching kinds is all that can
	// be observed.
	assert.True(t, Equal(value.NewWeakDict(), value.NewWeakDict()))
	assert.True(t, Equal(value.NewWeakSet(), value.NewWeakSet()))
}

func TestEqualRecords(t *testing.T) {
	a := value.NewRecordOf(value.P("x", 1), value.P("y", "s"))
	b := value.NewRecordOf(value.P("y", "s"), value.P("x", 1))

	// Key order does not participate in equality.
	assert.True(t, Equal(a, b))

	b.Set("x", 2)
	assert.False(t, Equal(a, b))
}

func TestEqualPartialRecords(t *testing.T) {
	world := value.NewRecordOf(value.P("x", 1), value.P("y", 2), value.P("extra", 3))
	pattern := value.NewRecordOf(value.P("x", 1), value.P("y", 2))

	assert.False(t, Equal(world, pattern))
	assert.True(t, EqualWith(world, pattern, Flags{Partial: true}),
		"extra keys on the first argument are tolerated")
	assert.False(t, EqualWith(pattern, world, Flags{Partial: true}),
		"partial is one-directional")
}

func TestEqualStrictTemplate(t *testing.T) {
	t1 := value.NewTemplate("a")
	t2 := value.NewTemplate("a")

	r1 := value.NewRecordWith(t1)
	r1.Set("x", 1)
	r2 := value.NewRecordWith(t2)
	r2.Set("x", 1)

	assert.True(t, Equal(r1, r2))
	assert.False(t, EqualWith(r1, r2, Flags{StrictTemplate: true}))

	r3 := value.NewRecordWith(t1)
	r3.Set("x", 1)
	assert.True(t, EqualWith(r1, r3, Flags{StrictTemplate: true}))
}

func TestEqualSkipSymbols(t *testing.T) {
	sym := value.NewSymbol("meta")
	a := value.NewRecordOf(value.P("x", 1), value.P(sym, "only here"))
	b := value.NewRecordOf(value.P("x", 1))

	assert.False(t, Equal(a, b))
	assert.True(t, EqualWith(a, b, Flags{SkipSymbols: true}))
}

func TestEqualAccessorsByIdentity(t *testing.T) {
	get := func(*value.Record) value.Value { return 1 }

	a := value.NewRecord()
	a.Define("f", value.Accessor(get, nil))
	b := value.NewRecord()
	b.Define("f", value.Accessor(get, nil))
	assert.True(t, Equal(a, b))

	c := value.NewRecord()
	c.Define("f", value.Accessor(func(*value.Record) value.Value { return 1 }, nil))
	assert.False(t, Equal(a, c), "distinct getter functions never match")

	// Stored vs accessor never match either, even with the same readable
	// value.
	d := value.NewRecordOf(value.P("f", 1))
	assert.False(t, Equal(a, d))
}

func TestEqualSequences(t *testing.T) {
	assert.True(t, Equal(value.NewSequence(1, "a", true), value.NewSequence(1, "a", true)))
	assert.False(t, Equal(value.NewSequence(1, 2), value.NewSequence(2, 1)))
	assert.False(t, Equal(value.NewSequence(1), value.NewSequence(1, 2)))

	// Partial never relaxes sequence length.
	assert.False(t, EqualWith(value.NewSequence(1, 2, 3), value.NewSequence(1, 2), Flags{Partial: true}))
}

func TestEqualSequenceHoles(t *testing.T) {
	withHole := value.NewSequence("a")
	withHole.AppendHole()

	withNil := value.NewSequence("a", nil)

	assert.False(t, Equal(withHole, withNil), "a hole is not a stored nil")

	otherHole := value.NewSequence("a")
	otherHole.AppendHole()
	assert.True(t, Equal(withHole, otherHole))
}

func TestEqualDicts(t *testing.T) {
	a := value.NewDict()
	a.Set("k", value.NewSequence(1))
	b := value.NewDict()
	b.Set("k", value.NewSequence(1))

	assert.True(t, Equal(a, b))

	a.Set("extra", 1)
	assert.False(t, Equal(a, b))
	assert.True(t, EqualWith(a, b, Flags{Partial: true}))
}

func TestEqualSetsStructurally(t *testing.T) {
	a := value.NewSet(value.NewRecordOf(value.P("x", 1)), "plain")
	b := value.NewSet("plain", value.NewRecordOf(value.P("x", 1)))

	// Identity-distinct elements match structurally, order-insensitively.
	assert.True(t, Equal(a, b))

	c := value.NewSet("plain", value.NewRecordOf(value.P("x", 2)))
	assert.False(t, Equal(a, c))
}

func TestEqualCycles(t *testing.T) {
	a := value.NewRecordOf(value.P("name", "node"))
	a.Set("self", a)
	b := value.NewRecordOf(value.P("name", "node"))
	b.Set("self", b)

	assert.True(t, Equal(a, b), "isomorphic cycles are equal")

	c := value.NewRecordOf(value.P("name", "other"))
	c.Set("self", c)
	assert.False(t, Equal(a, c))
}

func TestEqualMutualCycles(t *testing.T) {
	a1, a2 := value.NewRecord(), value.NewRecord()
	a1.Set("next", a2)
	a2.Set("next", a1)

	b1, b2 := value.NewRecord(), value.NewRecord()
	b1.Set("next", b2)
	b2.Set("next", b1)

	assert.True(t, Equal(a1, b1))
}

func TestEqualIdentityFastPath(t *testing.T) {
	r := value.NewRecordOf(value.P("x", 1))
	assert.True(t, Equal(r, r))
}
