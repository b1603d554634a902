package deep

import "github.com/roach88/strux/reach"

// CloneOptions configures one Clone call. The zero value is a full deep
// clone preserving templates and visiting symbol-keyed fields.
type CloneOptions struct {
	// ShallowAll duplicates only the top-level container; every nested
	// value is carried over by reference.
	ShallowAll bool

	// ShallowPaths exempts the listed key-paths from deep recursion: their
	// values are carried into the copy by reference. This works by
	// transiently detaching the paths from the source (see the package
	// documentation for the concurrency caveat). Ignored when ShallowAll
	// is set.
	ShallowPaths []reach.Path

	// BareTemplate rebases the copy onto the plain record template instead
	// of preserving the source's template.
	BareTemplate bool

	// SkipSymbols leaves symbol-keyed fields out of the copy.
	SkipSymbols bool
}

// Flags governs one Equal call. The zero value compares templates loosely,
// requires exact key sets, and visits symbol-keyed fields.
type Flags struct {
	// StrictTemplate requires both records' templates to be identical
	// (pointer-identical, not merely compatible).
	StrictTemplate bool

	// Partial tolerates extra keys, entries, or elements on the first
	// argument: b acts as the pattern, a as the world.
	Partial bool

	// SkipSymbols ignores symbol-keyed fields on both sides.
	SkipSymbols bool
}

// MergeOptions configures one Merge call. The zero value appends source
// sequence elements, lets nil source values overwrite target slots, and
// visits symbol-keyed fields.
type MergeOptions struct {
	// ReplaceArrays truncates a target sequence before appending the
	// source's elements, so source sequences replace instead of extend.
	ReplaceArrays bool

	// KeepNulls leaves a target slot untouched when the source value is
	// nil. By default nil overwrites.
	KeepNulls bool

	// SkipSymbols ignores symbol-keyed source fields.
	SkipSymbols bool
}

// DefaultsOptions configures one ApplyToDefaults call. The zero value keeps
// default values in place when the source holds an explicit nil: the
// opposite default from Merge, so defaults survive unless the caller opts
// in to null override.
type DefaultsOptions struct {
	// OverrideNulls lets nil source values overwrite cloned defaults.
	OverrideNulls bool

	// Shallow lists source key-paths copied by reference instead of
	// recursed into (same transient-detach mechanism as CloneOptions).
	Shallow []reach.Path
}
