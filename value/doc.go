// Package value defines the closed graph value model for the strux toolkit.
//
// A graph value is one of:
//   - a primitive: nil, bool, string, any Go integer/unsigned/float kind,
//     or a Symbol
//   - *Record: keyed fields layered on a shared Template
//   - *Sequence: ordered elements with an explicit, sparse-capable length
//   - *Dict: insertion-ordered keyed container
//   - *Set: insertion-ordered unique-element container
//   - *WeakDict, *WeakSet: traversal-opaque container variants
//   - time.Time (date/time), *regexp.Regexp (pattern), []byte (byte buffer)
//
// This package contains type definitions and the classifier only. All other
// strux packages import value; value imports nothing from strux. This keeps
// the model the foundational layer with no circular dependencies.
//
// Classification is a closed type switch over Go dynamic types (Classify),
// so nothing stored inside a value can change how traversal treats it.
package value
