package value

// WeakDict is a keyed container whose entries are excluded from structural
// traversal: entries are reachable through Get but not enumerable, so the
// clone engine produces a fresh empty WeakDict and the equality engine
// compares two weak dicts by kind alone.
type WeakDict struct {
	entries map[Value]Value
}

// NewWeakDict creates an empty weak dict.
func NewWeakDict() *WeakDict {
	return &WeakDict{entries: make(map[Value]Value)}
}

// Set stores val under key. Keys must be comparable.
func (d *WeakDict) Set(key, val Value) {
	mustComparable(key, "weak dict key")
	d.entries[key] = val
}

// Get returns the value under key.
func (d *WeakDict) Get(key Value) (Value, bool) {
	if !isComparable(key) {
		return nil, false
	}
	v, ok := d.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (d *WeakDict) Has(key Value) bool {
	_, ok := d.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (d *WeakDict) Delete(key Value) bool {
	if !d.Has(key) {
		return false
	}
	delete(d.entries, key)
	return true
}

// WeakSet is a unique-element container whose elements are excluded from
// structural traversal, with the same clone and equality behavior as
// WeakDict.
type WeakSet struct {
	entries map[Value]struct{}
}

// NewWeakSet creates an empty weak set.
func NewWeakSet() *WeakSet {
	return &WeakSet{entries: make(map[Value]struct{})}
}

// Add inserts v. Elements must be comparable.
func (s *WeakSet) Add(v Value) {
	mustComparable(v, "weak set element")
	s.entries[v] = struct{}{}
}

// Has reports whether v is present.
func (s *WeakSet) Has(v Value) bool {
	if !isComparable(v) {
		return false
	}
	_, ok := s.entries[v]
	return ok
}

// Delete removes v and reports whether it was present.
func (s *WeakSet) Delete(v Value) bool {
	if !s.Has(v) {
		return false
	}
	delete(s.entries, v)
	return true
}
