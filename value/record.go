package value

// Key is a Record field key: a string or a Symbol. Other dynamic types are
// rejected by Define and Set.
type Key = any

// FieldKind distinguishes stored fields from computed accessors.
type FieldKind int

const (
	// FieldStored is a plain value field.
	FieldStored FieldKind = iota

	// FieldAccessor is a computed field: reading goes through Get, writing
	// through Set. The clone engine copies accessors verbatim without
	// invoking them.
	FieldAccessor
)

// Field is the descriptor for one own field of a Record: a tagged union of
// a stored value and a computed accessor, plus the enumerable bit that
// controls whether merge and the native bridge see the field.
type Field struct {
	Kind       FieldKind
	Value      Value               // stored value, FieldStored only
	Get        func(*Record) Value // getter, FieldAccessor only (may be nil)
	Set        func(*Record, Value) // setter, FieldAccessor only (may be nil)
	Enumerable bool
}

// Stored builds an enumerable stored-value descriptor.
func Stored(v Value) Field {
	return Field{Kind: FieldStored, Value: v, Enumerable: true}
}

// Accessor builds an enumerable accessor descriptor. Either function may be
// nil for a read-only or write-only field.
func Accessor(get func(*Record) Value, set func(*Record, Value)) Field {
	return Field{Kind: FieldAccessor, Get: get, Set: set, Enumerable: true}
}

// Pair is a key/value pair for literal Record construction.
type Pair struct {
	Key   Key
	Value Value
}

// P is shorthand for building a Pair.
func P(k Key, v Value) Pair {
	return Pair{Key: k, Value: v}
}

// Record is a keyed collection of fields layered on a Template. Fields keep
// insertion order; keys are strings or Symbols.
type Record struct {
	template *Template
	order    []Key
	fields   map[Key]Field
}

// NewRecord creates an empty record on the Plain template.
func NewRecord() *Record {
	return NewRecordWith(Plain)
}

// NewRecordWith creates an empty record on the given template. A nil
// template means Plain.
func NewRecordWith(t *Template) *Record {
	if t == nil {
		t = Plain
	}
	return &Record{template: t, fields: make(map[Key]Field)}
}

// NewRecordOf creates a plain record from literal pairs, in order.
func NewRecordOf(pairs ...Pair) *Record {
	r := NewRecord()
	for _, p := range pairs {
		r.Set(p.Key, p.Value)
	}
	return r
}

// Template returns the record's template (never nil).
func (r *Record) Template() *Template {
	return r.template
}

// Len returns the number of own fields, symbol-keyed included.
func (r *Record) Len() int {
	return len(r.order)
}

// Keys returns all own field keys in insertion order. Symbol keys are
// omitted when includeSymbols is false.
func (r *Record) Keys(includeSymbols bool) []Key {
	keys := make([]Key, 0, len(r.order))
	for _, k := range r.order {
		if _, isSym := k.(Symbol); isSym && !includeSymbols {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// EnumerableKeys returns the enumerable own field keys in insertion order.
func (r *Record) EnumerableKeys(includeSymbols bool) []Key {
	keys := make([]Key, 0, len(r.order))
	for _, k := range r.order {
		if _, isSym := k.(Symbol); isSym && !includeSymbols {
			continue
		}
		if r.fields[k].Enumerable {
			keys = append(keys, k)
		}
	}
	return keys
}

// Has reports whether the record has an own field under k.
func (r *Record) Has(k Key) bool {
	_, ok := r.fields[k]
	return ok
}

// Get reads the field under k. Accessor fields are read through their
// getter; a getter-less accessor reads as nil. The second result is false
// when no field exists under k.
func (r *Record) Get(k Key) (Value, bool) {
	f, ok := r.fields[k]
	if !ok {
		return nil, false
	}
	if f.Kind == FieldAccessor {
		if f.Get == nil {
			return nil, true
		}
		return f.Get(r), true
	}
	return f.Value, true
}

// Set writes v under k. An existing accessor field is written through its
// setter (a setter-less accessor ignores the write); an existing stored
// field keeps its enumerable bit; a new field is created enumerable.
// Set panics if k is neither a string nor a Symbol.
func (r *Record) Set(k Key, v Value) {
	mustKey(k)
	f, ok := r.fields[k]
	if ok && f.Kind == FieldAccessor {
		if f.Set != nil {
			f.Set(r, v)
		}
		return
	}
	if ok {
		f.Value = v
		r.fields[k] = f
		return
	}
	r.fields[k] = Stored(v)
	r.order = append(r.order, k)
}

// Define installs a field descriptor under k, replacing any existing field
// without going through its setter. Define panics if k is neither a string
// nor a Symbol.
func (r *Record) Define(k Key, f Field) {
	mustKey(k)
	if _, ok := r.fields[k]; !ok {
		r.order = append(r.order, k)
	}
	r.fields[k] = f
}

// Descriptor returns the raw field descriptor under k without invoking
// accessors.
func (r *Record) Descriptor(k Key) (Field, bool) {
	f, ok := r.fields[k]
	return f, ok
}

// Delete removes the field under k and reports whether it existed.
func (r *Record) Delete(k Key) bool {
	if _, ok := r.fields[k]; !ok {
		return false
	}
	delete(r.fields, k)
	for i, existing := range r.order {
		if existing == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func mustKey(k Key) {
	switch k.(type) {
	case string, Symbol:
	default:
		panic("value: record keys must be strings or Symbols")
	}
}
