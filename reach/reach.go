// Package reach provides dotted-path value lookup and assignment over the
// graph value model, plus templated string interpolation built on it.
//
// A path like "a.b.2" traverses record fields, dict string keys, and
// sequence indices. Lookups come in a strict flavor (Get, which reports
// missing or untraversable segments as typed errors) and a tolerant flavor
// (Lookup/GetDefault).
package reach

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/roach88/strux/value"
)

// Path is a parsed key path.
type Path struct {
	segments []string
	raw      string
}

// ParsePath parses a path using "." as the segment separator.
func ParsePath(s string) Path {
	return ParsePathSep(s, ".")
}

// ParsePathSep parses a path with a custom single-character separator.
// An empty path has no segments and resolves to the root value.
func ParsePathSep(s, sep string) Path {
	if sep == "" {
		sep = "."
	}
	if s == "" {
		return Path{raw: s}
	}
	return Path{segments: strings.Split(s, sep), raw: s}
}

// Segments returns the path's segments in order.
func (p Path) Segments() []string {
	return p.segments
}

// IsEmpty reports whether the path resolves to the root value.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// String returns the original path text.
func (p Path) String() string {
	return p.raw
}

// Get resolves p against root. A segment that does not exist returns a
// *PathError with CodeMissing; a segment that would traverse through a
// non-traversable value (a primitive, a date, a weak container, ...)
// returns CodeInvalid.
func Get(root value.Value, p Path) (value.Value, error) {
	current := root
	for i, seg := range p.segments {
		next, err := step(current, seg, p, i)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Lookup resolves p against root, reporting absence instead of failing.
// Untraversable segments also report absence.
func Lookup(root value.Value, p Path) (value.Value, bool) {
	v, err := Get(root, p)
	if err != nil {
		return nil, false
	}
	return v, true
}

// GetDefault resolves p against root, returning def when the path cannot be
// resolved.
func GetDefault(root value.Value, p Path, def value.Value) value.Value {
	if v, ok := Lookup(root, p); ok {
		return v
	}
	return def
}

// Put assigns v at p under root. Every segment but the last must already
// resolve; the final segment is created on records and dicts if absent and
// must be a valid index for sequences. An empty path is rejected.
func Put(root value.Value, p Path, v value.Value) error {
	if p.IsEmpty() {
		return &PathError{Code: CodeInvalid, Path: p.raw, Reason: "cannot assign to the root value"}
	}
	parent := root
	for i, seg := range p.segments[:len(p.segments)-1] {
		next, err := step(parent, seg, p, i)
		if err != nil {
			return err
		}
		parent = next
	}

	last := p.segments[len(p.segments)-1]
	switch t := parent.(type) {
	case *value.Record:
		t.Set(last, v)
		return nil
	case *value.Dict:
		t.Set(last, v)
		return nil
	case *value.Sequence:
		idx, err := strconv.Atoi(last)
		if err != nil || idx < 0 {
			return &PathError{Code: CodeInvalid, Path: p.raw, Segment: last, Reason: "not a valid sequence index"}
		}
		t.Set(idx, v)
		return nil
	default:
		return &PathError{Code: CodeInvalid, Path: p.raw, Segment: last, Reason: "parent is not traversable"}
	}
}

func step(current value.Value, seg string, p Path, i int) (value.Value, error) {
	switch t := current.(type) {
	case *value.Record:
		v, ok := t.Get(seg)
		if !ok {
			return nil, missing(p, seg)
		}
		return v, nil
	case *value.Dict:
		v, ok := t.Get(seg)
		if !ok {
			return nil, missing(p, seg)
		}
		return v, nil
	case *value.Sequence:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 {
			return nil, &PathError{Code: CodeInvalid, Path: p.raw, Segment: seg, Reason: "not a valid sequence index"}
		}
		v, ok := t.Get(idx)
		if !ok {
			return nil, missing(p, seg)
		}
		return v, nil
	default:
		return nil, &PathError{Code: CodeInvalid, Path: p.raw, Segment: seg, Reason: "segment traverses a non-traversable value"}
	}
}

func missing(p Path, seg string) error {
	return &PathError{Code: CodeMissing, Path: p.raw, Segment: seg, Reason: "segment not found"}
}

var templateRef = regexp.MustCompile(`\{([^}]+)\}`)

// String interpolates {path} references in template against ctx. Unresolved
// references render as the empty string; resolved values render via
// Stringify-style formatting for primitives.
func String(template string, ctx value.Value) string {
	return templateRef.ReplaceAllStringFunc(template, func(ref string) string {
		path := ParsePath(ref[1 : len(ref)-1])
		v, ok := Lookup(ctx, path)
		if !ok || v == nil {
			return ""
		}
		return format(v)
	})
}

func format(v value.Value) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	default:
		return ""
	}
}
