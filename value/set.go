package value

// Set is an insertion-ordered unique-element container. Elements may be any
// comparable value; uniqueness is by identity (pointer identity for model
// containers), never structural.
type Set struct {
	order []Value
	index map[Value]struct{}
}

// NewSet creates a set populated with the given elements.
func NewSet(vals ...Value) *Set {
	s := &Set{index: make(map[Value]struct{})}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.order)
}

// Add inserts v, keeping the original position when already present.
// Add panics if v is not comparable (e.g. a []byte).
func (s *Set) Add(v Value) {
	mustComparable(v, "set element")
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
}

// Has reports whether v is present.
func (s *Set) Has(v Value) bool {
	if !isComparable(v) {
		return false
	}
	_, ok := s.index[v]
	return ok
}

// Delete removes v and reports whether it was present.
func (s *Set) Delete(v Value) bool {
	if !isComparable(v) {
		return false
	}
	if _, ok := s.index[v]; !ok {
		return false
	}
	delete(s.index, v)
	for i, existing := range s.order {
		if existing == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Values returns the elements in insertion order.
func (s *Set) Values() []Value {
	out := make([]Value, len(s.order))
	copy(out, s.order)
	return out
}
