package deep

import (
	"bytes"
	"math"
	"reflect"
	"regexp"
	"time"

	"github.com/roach88/strux/value"
)

// Equal reports structural equivalence of a and b under zero-value Flags:
// loose templates, exact key sets, symbols included.
func Equal(a, b value.Value) bool {
	return EqualWith(a, b, Flags{})
}

// EqualWith reports structural equivalence of a and b under flags. The
// comparison is cycle-safe and never mutates either input; accessor fields
// are compared by function identity, never invoked.
func EqualWith(a, b value.Value, flags Flags) bool {
	e := &equator{flags: flags, seen: make(pairSet)}
	return e.equal(a, b)
}

type equator struct {
	flags Flags
	seen  pairSet
}

func (e *equator) equal(a, b value.Value) bool {
	ta, tb := value.Classify(a), value.Classify(b)
	if ta != tb {
		return false
	}

	switch ta {
	case value.TagPrimitive:
		return primitiveEqual(a, b)
	case value.TagDateTime:
		return a.(time.Time).Equal(b.(time.Time))
	case value.TagPattern:
		return a.(*regexp.Regexp).String() == b.(*regexp.Regexp).String()
	case value.TagByteBuffer:
		return bytes.Equal(a.([]byte), b.([]byte))
	case value.TagWeakDict, value.TagWeakSet:
		// Weak entries cannot be enumerated; same kind is as far as
		// structural comparison can see.
		return true
	}

	if a == b {
		return true
	}
	if e.seen.seen(a, b) {
		return true
	}
	e.seen.enter(a, b)

	switch av := a.(type) {
	case *value.Record:
		return e.recordEqual(av, b.(*value.Record))
	case *value.Sequence:
		return e.sequenceEqual(av, b.(*value.Sequence))
	case *value.Dict:
		return e.dictEqual(av, b.(*value.Dict))
	case *value.Set:
		return e.setEqual(av, b.(*value.Set))
	}
	return false
}

func (e *equator) recordEqual(a, b *value.Record) bool {
	if e.flags.StrictTemplate && a.Template() != b.Template() {
		return false
	}

	includeSymbols := !e.flags.SkipSymbols
	keysB := b.Keys(includeSymbols)
	if !e.flags.Partial && len(a.Keys(includeSymbols)) != len(keysB) {
		return false
	}

	for _, k := range keysB {
		da, ok := a.Descriptor(k)
		if !ok {
			return false
		}
		db, _ := b.Descriptor(k)
		if da.Kind != db.Kind {
			return false
		}
		if da.Kind == value.FieldAccessor {
			if !sameFunc(da.Get, db.Get) || !sameFuncSet(da.Set, db.Set) {
				return false
			}
			continue
		}
		if !e.equal(da.Value, db.Value) {
			return false
		}
	}
	return true
}

// Sequences compare by exact length in every mode; Partial affects key and
// entry subsets, not element counts.
func (e *equator) sequenceEqual(a, b *value.Sequence) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		va, oka := a.Get(i)
		vb, okb := b.Get(i)
		if oka != okb {
			return false // hole on one side only
		}
		if oka && !e.equal(va, vb) {
			return false
		}
	}
	return true
}

func (e *equator) dictEqual(a, b *value.Dict) bool {
	if !e.flags.Partial && a.Len() != b.Len() {
		return false
	}
	for _, k := range b.Keys() {
		va, ok := a.Get(k)
		if !ok {
			return false
		}
		vb, _ := b.Get(k)
		if !e.equal(va, vb) {
			return false
		}
	}
	return true
}

func (e *equator) setEqual(a, b *value.Set) bool {
	if !e.flags.Partial && a.Len() != b.Len() {
		return false
	}

	elemsA := a.Values()
	used := make([]bool, len(elemsA))
	for _, eb := range b.Values() {
		matched := false
		for i, ea := range elemsA {
			if used[i] {
				continue
			}
			if e.equal(ea, eb) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func sameFunc(a, b func(*value.Record) value.Value) bool {
	return funcPointer(a) == funcPointer(b)
}

func sameFuncSet(a, b func(*value.Record, value.Value)) bool {
	return funcPointer(a) == funcPointer(b)
}

func funcPointer(f any) uintptr {
	v := reflect.ValueOf(f)
	if v.IsNil() {
		return 0
	}
	return v.Pointer()
}

// primitiveEqual compares non-structured values. All numeric kinds compare
// numerically across kinds, NaN equals NaN, and signed zero variants are
// equal. Everything else compares by Go equality, guarded against
// non-comparable dynamic types.
func primitiveEqual(a, b value.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	na, okA := toNumber(a)
	nb, okB := toNumber(b)
	if okA || okB {
		if !okA || !okB {
			return false
		}
		return numberEqual(na, nb)
	}

	if !comparableValue(a) || !comparableValue(b) {
		return false
	}
	return a == b
}

type number struct {
	isFloat bool
	f       float64
	isUint  bool
	u       uint64
	i       int64
}

func toNumber(v value.Value) (number, bool) {
	switch t := v.(type) {
	case int:
		return number{i: int64(t)}, true
	case int8:
		return number{i: int64(t)}, true
	case int16:
		return number{i: int64(t)}, true
	case int32:
		return number{i: int64(t)}, true
	case int64:
		return number{i: t}, true
	case uint:
		return number{isUint: true, u: uint64(t)}, true
	case uint8:
		return number{isUint: true, u: uint64(t)}, true
	case uint16:
		return number{isUint: true, u: uint64(t)}, true
	case uint32:
		return number{isUint: true, u: uint64(t)}, true
	case uint64:
		return number{isUint: true, u: t}, true
	case uintptr:
		return number{isUint: true, u: uint64(t)}, true
	case float32:
		return number{isFloat: true, f: float64(t)}, true
	case float64:
		return number{isFloat: true, f: t}, true
	default:
		return number{}, false
	}
}

func numberEqual(a, b number) bool {
	if a.isFloat || b.isFloat {
		fa, fb := a.toFloat(), b.toFloat()
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb // +0 == -0 by IEEE rules
	}
	switch {
	case a.isUint && b.isUint:
		return a.u == b.u
	case !a.isUint && !b.isUint:
		return a.i == b.i
	case a.isUint:
		return b.i >= 0 && a.u == uint64(b.i)
	default:
		return a.i >= 0 && uint64(a.i) == b.u
	}
}

func (n number) toFloat() float64 {
	switch {
	case n.isFloat:
		return n.f
	case n.isUint:
		return float64(n.u)
	default:
		return float64(n.i)
	}
}

func comparableValue(v value.Value) bool {
	return reflect.TypeOf(v).Comparable()
}
