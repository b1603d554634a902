package value

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

// FromNative converts a native Go value (the shapes produced by decoding
// YAML or JSON into any: map[string]any, []any, scalars) into the model.
// Map keys are visited in sorted order so construction is deterministic.
// Values already in the model pass through unchanged.
func FromNative(v any) (Value, error) {
	switch t := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		Symbol,
		time.Time, *regexp.Regexp,
		*Record, *Sequence, *Dict, *Set, *WeakDict, *WeakSet:
		return v, nil

	case []byte:
		return t, nil

	case map[string]any:
		rec := NewRecord()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := FromNative(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			rec.Set(k, child)
		}
		return rec, nil

	case map[any]any:
		// Older YAML decoders produce any-keyed maps; only string keys are
		// representable as record fields.
		m := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v (%T) is not a string", k, k)
			}
			m[ks] = val
		}
		return FromNative(m)

	case []any:
		seq := NewSequence()
		for i, elem := range t {
			child, err := FromNative(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			seq.Append(child)
		}
		return seq, nil

	default:
		return nil, fmt.Errorf("value: unsupported native type %T", v)
	}
}

// ToNative converts a model value back into native Go shapes: records with
// string keys become map[string]any, sequences and sets become []any (holes
// as nil), string-keyed dicts become map[string]any. Symbol-keyed fields are
// dropped; accessor fields are read through their getter. Weak containers
// and cyclic graphs are not representable and return an error.
func ToNative(v Value) (any, error) {
	return toNative(v, make(map[any]struct{}))
}

func toNative(v Value, busy map[any]struct{}) (any, error) {
	switch Classify(v) {
	case TagPrimitive:
		if _, isSym := v.(Symbol); isSym {
			return nil, fmt.Errorf("value: symbols are not representable natively")
		}
		return v, nil
	case TagDateTime, TagPattern, TagByteBuffer:
		return v, nil
	case TagWeakDict, TagWeakSet:
		return nil, fmt.Errorf("value: weak containers are not representable natively")
	}

	if _, ok := busy[v]; ok {
		return nil, fmt.Errorf("value: cyclic graph is not representable natively")
	}
	busy[v] = struct{}{}
	defer delete(busy, v)

	switch t := v.(type) {
	case *Record:
		out := make(map[string]any, t.Len())
		for _, k := range t.EnumerableKeys(false) {
			ks := k.(string)
			fieldVal, _ := t.Get(k)
			child, err := toNative(fieldVal, busy)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", ks, err)
			}
			out[ks] = child
		}
		return out, nil

	case *Sequence:
		out := make([]any, t.Len())
		for i := 0; i < t.Len(); i++ {
			elem, ok := t.Get(i)
			if !ok {
				continue
			}
			child, err := toNative(elem, busy)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = child
		}
		return out, nil

	case *Dict:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("value: dict key %v (%T) is not representable natively", k, k)
			}
			entry, _ := t.Get(k)
			child, err := toNative(entry, busy)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", ks, err)
			}
			out[ks] = child
		}
		return out, nil

	case *Set:
		elems := t.Values()
		out := make([]any, len(elems))
		for i, elem := range elems {
			child, err := toNative(elem, busy)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = child
		}
		return out, nil
	}

	return nil, fmt.Errorf("value: unsupported value %T", v)
}
