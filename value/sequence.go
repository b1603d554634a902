package value

// Sequence is an ordered collection of elements with an explicit length.
// Indices without an assigned element are holes: the length can exceed the
// populated indices, and holes survive cloning.
type Sequence struct {
	elems []seqEntry
}

type seqEntry struct {
	present bool
	v       Value
}

// NewSequence creates a sequence populated with the given elements.
func NewSequence(vals ...Value) *Sequence {
	s := &Sequence{elems: make([]seqEntry, len(vals))}
	for i, v := range vals {
		s.elems[i] = seqEntry{present: true, v: v}
	}
	return s
}

// Len returns the sequence length, holes included.
func (s *Sequence) Len() int {
	return len(s.elems)
}

// SetLen truncates or extends the sequence to length n. Extension adds
// holes; truncation drops elements past n.
func (s *Sequence) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	for len(s.elems) < n {
		s.elems = append(s.elems, seqEntry{})
	}
	s.elems = s.elems[:n]
}

// Get returns the element at i. The second result is false for holes and
// out-of-range indices.
func (s *Sequence) Get(i int) (Value, bool) {
	if i < 0 || i >= len(s.elems) || !s.elems[i].present {
		return nil, false
	}
	return s.elems[i].v, true
}

// Has reports whether index i holds an element (not a hole).
func (s *Sequence) Has(i int) bool {
	_, ok := s.Get(i)
	return ok
}

// Set assigns the element at i, extending the sequence with holes as needed.
// Negative indices panic.
func (s *Sequence) Set(i int, v Value) {
	if i < 0 {
		panic("value: negative sequence index")
	}
	for len(s.elems) <= i {
		s.elems = append(s.elems, seqEntry{})
	}
	s.elems[i] = seqEntry{present: true, v: v}
}

// Append adds v at the end of the sequence.
func (s *Sequence) Append(v Value) {
	s.elems = append(s.elems, seqEntry{present: true, v: v})
}

// AppendHole extends the sequence by one unassigned index.
func (s *Sequence) AppendHole() {
	s.elems = append(s.elems, seqEntry{})
}

// Values returns a dense view of the sequence with holes as nil. Use Has to
// distinguish a hole from a stored nil.
func (s *Sequence) Values() []Value {
	out := make([]Value, len(s.elems))
	for i, e := range s.elems {
		if e.present {
			out[i] = e.v
		}
	}
	return out
}
