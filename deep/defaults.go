package deep

import (
	"github.com/roach88/strux/value"
)

// ApplyToDefaults overlays source onto a deep clone of defaults and returns
// the result. Neither input ends the call structurally changed, though the
// Shallow option transiently detaches the listed paths on both (see the
// package documentation).
//
// A nil or false source yields nil. A source of true yields a plain clone
// of the defaults. A record source is merged over the clone with sequences
// replacing (never appending) and, unless OverrideNulls is set, nil source
// values leaving the cloned defaults untouched.
func ApplyToDefaults(defaults *value.Record, source value.Value, opts DefaultsOptions) (value.Value, error) {
	if defaults == nil {
		return nil, argErr("applyToDefaults", "defaults must be a record")
	}

	switch s := source.(type) {
	case nil:
		return nil, nil
	case bool:
		if !s {
			return nil, nil
		}
		if len(opts.Shallow) > 0 {
			return CloneWith(defaults, CloneOptions{ShallowPaths: opts.Shallow})
		}
		return Clone(defaults), nil
	case *value.Record:
		if len(opts.Shallow) > 0 {
			return applyToDefaultsWithShallow(defaults, s, opts)
		}
		copied := Clone(defaults)
		if err := Merge(copied, s, mergeOptionsForDefaults(opts)); err != nil {
			return nil, err
		}
		return copied, nil
	default:
		// Only nil and false signal "no source"; other zero values are
		// caller mistakes, not absence.
		return nil, argErr("applyToDefaults", "source must be a record, a bool, or nil, got %s", value.Classify(source))
	}
}

// applyToDefaultsWithShallow detaches the shallow paths from the source,
// clones defaults with the same paths exempted, merges the remainder, then
// reattaches the captured source values into both the result and the
// original source.
func applyToDefaultsWithShallow(defaults *value.Record, source *value.Record, opts DefaultsOptions) (value.Value, error) {
	copied, err := CloneWith(defaults, CloneOptions{ShallowPaths: opts.Shallow})
	if err != nil {
		return nil, err
	}

	st, err := detachPaths(source, opts.Shallow)
	if err != nil {
		return nil, err
	}
	defer st.restore(source)

	if err := Merge(copied, source, mergeOptionsForDefaults(opts)); err != nil {
		return nil, err
	}
	if err := st.restore(copied); err != nil {
		return nil, err
	}
	return copied, nil
}

func mergeOptionsForDefaults(opts DefaultsOptions) MergeOptions {
	return MergeOptions{
		ReplaceArrays: true,
		KeepNulls:     !opts.OverrideNulls,
	}
}
