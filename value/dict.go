package value

import "reflect"

// Dict is an insertion-ordered keyed container. Keys may be any comparable
// value and are matched by identity (pointer identity for model containers,
// plain equality for primitives), never structurally.
type Dict struct {
	entries []dictEntry
	index   map[Value]int
}

type dictEntry struct {
	key Value
	val Value
}

// NewDict creates an empty dict.
func NewDict() *Dict {
	return &Dict{index: make(map[Value]int)}
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.entries)
}

// Set stores val under key, keeping the key's original position when it
// already exists. Set panics if key is not comparable (e.g. a []byte).
func (d *Dict) Set(key, val Value) {
	mustComparable(key, "dict key")
	if i, ok := d.index[key]; ok {
		d.entries[i].val = val
		return
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, dictEntry{key: key, val: val})
}

// Get returns the value under key.
func (d *Dict) Get(key Value) (Value, bool) {
	if !isComparable(key) {
		return nil, false
	}
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].val, true
}

// Has reports whether key is present.
func (d *Dict) Has(key Value) bool {
	_, ok := d.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key Value) bool {
	if !isComparable(key) {
		return false
	}
	i, ok := d.index[key]
	if !ok {
		return false
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	delete(d.index, key)
	for j := i; j < len(d.entries); j++ {
		d.index[d.entries[j].key] = j
	}
	return true
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []Value {
	keys := make([]Value, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.key
	}
	return keys
}

func isComparable(v Value) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

func mustComparable(v Value, what string) {
	if !isComparable(v) {
		panic("value: " + what + " must be comparable")
	}
}
