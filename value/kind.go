package value

import (
	"regexp"
	"time"
)

// Value is any node of a graph. The model is closed: see the package
// documentation for the full list of recognized dynamic types. Anything
// outside the model classifies as a primitive and is never traversed.
type Value = any

// TypeTag is the closed structural classification of a value. Two values
// with different tags are never structurally equal.
type TypeTag int

const (
	// TagPrimitive covers nil, booleans, strings, numbers, Symbols, and any
	// dynamic type outside the model.
	TagPrimitive TypeTag = iota

	// TagRecord is a *Record.
	TagRecord

	// TagSequence is a *Sequence.
	TagSequence

	// TagDict is a *Dict.
	TagDict

	// TagSet is a *Set.
	TagSet

	// TagWeakDict is a *WeakDict.
	TagWeakDict

	// TagWeakSet is a *WeakSet.
	TagWeakSet

	// TagDateTime is a time.Time.
	TagDateTime

	// TagPattern is a *regexp.Regexp.
	TagPattern

	// TagByteBuffer is a []byte.
	TagByteBuffer
)

// String returns the tag name for diagnostics.
func (t TypeTag) String() string {
	switch t {
	case TagPrimitive:
		return "primitive"
	case TagRecord:
		return "record"
	case TagSequence:
		return "sequence"
	case TagDict:
		return "dict"
	case TagSet:
		return "set"
	case TagWeakDict:
		return "weak-dict"
	case TagWeakSet:
		return "weak-set"
	case TagDateTime:
		return "datetime"
	case TagPattern:
		return "pattern"
	case TagByteBuffer:
		return "bytes"
	default:
		return "unknown"
	}
}

// Classify returns the structural type tag for v.
//
// The dispatch is a type switch over dynamic types, so classification cannot
// be forged by tampering with a value's contents or template.
func Classify(v Value) TypeTag {
	switch v.(type) {
	case *Record:
		return TagRecord
	case *Sequence:
		return TagSequence
	case *Dict:
		return TagDict
	case *Set:
		return TagSet
	case *WeakDict:
		return TagWeakDict
	case *WeakSet:
		return TagWeakSet
	case time.Time:
		return TagDateTime
	case *regexp.Regexp:
		return TagPattern
	case []byte:
		return TagByteBuffer
	default:
		return TagPrimitive
	}
}

// Structured reports whether values with this tag have internal structure
// of their own (as opposed to comparing purely by value or identity).
func (t TypeTag) Structured() bool {
	return t != TagPrimitive
}

// Container reports whether values with this tag hold child values that
// traversal recurses into.
func (t TypeTag) Container() bool {
	switch t {
	case TagRecord, TagSequence, TagDict, TagSet:
		return true
	default:
		return false
	}
}
