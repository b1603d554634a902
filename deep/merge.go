package deep

import "github.com/roach88/strux/value"

// templateOverrideKey is the inheritance-override key of the original
// environment. Merge always skips it so hostile documents cannot graft
// template changes through a merge.
const templateOverrideKey = "__proto__"

// Merge combines source into target in place; source takes priority. Both
// must be records or both sequences (a sequence source requires a sequence
// target). The source graph is never mutated.
func Merge(target, source value.Value, opts MergeOptions) error {
	switch src := source.(type) {
	case *value.Sequence:
		tgt, ok := target.(*value.Sequence)
		if !ok {
			return argErr("merge", "target must be a sequence when source is a sequence, got %s", value.Classify(target))
		}
		mergeSequences(tgt, src, opts)
		return nil

	case *value.Record:
		tgt, ok := target.(*value.Record)
		if !ok {
			return argErr("merge", "target must be a record when source is a record, got %s", value.Classify(target))
		}
		mergeRecords(tgt, src, opts)
		return nil

	default:
		return argErr("merge", "source must be a record or a sequence, got %s", value.Classify(source))
	}
}

// Sequence merge always grows or replaces by append, never by positional
// overwrite.
func mergeSequences(target, source *value.Sequence, opts MergeOptions) {
	if opts.ReplaceArrays {
		target.SetLen(0)
	}
	for i := 0; i < source.Len(); i++ {
		if elem, ok := source.Get(i); ok {
			target.Append(cloneForMerge(elem, opts))
		} else {
			target.AppendHole()
		}
	}
}

func mergeRecords(target, source *value.Record, opts MergeOptions) {
	for _, k := range source.EnumerableKeys(!opts.SkipSymbols) {
		if ks, isStr := k.(string); isStr && ks == templateOverrideKey {
			continue
		}

		v, _ := source.Get(k)
		tag := value.Classify(v)

		if tag == value.TagPrimitive {
			if v != nil {
				target.Set(k, v)
			} else if !opts.KeepNulls {
				target.Set(k, nil)
			}
			continue
		}

		current, has := target.Get(k)
		if has && sameRef(current, v) {
			continue
		}

		if has && recursable(current, v, tag) {
			// Both sides are plain structures of matching sequence-ness:
			// recurse into the existing slot.
			_ = Merge(current, v, opts)
			continue
		}

		// Missing slot, shape mismatch, or a special kind: replace the
		// target slot wholesale with a deep clone.
		target.Set(k, cloneForMerge(v, opts))
	}
}

// recursable reports whether the merge may descend into the existing target
// slot instead of replacing it.
func recursable(current, v value.Value, tag value.TypeTag) bool {
	switch tag {
	case value.TagRecord:
		return value.Classify(current) == value.TagRecord
	case value.TagSequence:
		return value.Classify(current) == value.TagSequence
	default:
		// Date/time, byte buffers, patterns, and the keyed/unique
		// containers always replace wholesale.
		return false
	}
}

// sameRef reports whether two slots hold the same container reference.
func sameRef(a, b value.Value) bool {
	switch a.(type) {
	case *value.Record, *value.Sequence, *value.Dict, *value.Set, *value.WeakDict, *value.WeakSet:
		return a == b
	default:
		return false
	}
}

func cloneForMerge(v value.Value, opts MergeOptions) value.Value {
	out, _ := CloneWith(v, CloneOptions{SkipSymbols: opts.SkipSymbols})
	return out
}
