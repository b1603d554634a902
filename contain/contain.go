// Package contain tests whether a string, sequence, or record contains a
// requested multiset of values, keys, or key/value pairs, under
// exact/partial/once/only policies.
package contain

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/roach88/strux/deep"
	"github.com/roach88/strux/escape"
	"github.com/roach88/strux/value"
)

// Options configures one Contains call.
type Options struct {
	// Deep compares candidates with the deep equality engine instead of
	// plain identity/value equality.
	Deep bool

	// Once requires every matched candidate to match at most one time.
	Once bool

	// Only requires the reference to contain nothing but the requested
	// values: any unmatched input fails.
	Only bool

	// Part tolerates requested values that never match.
	Part bool

	// SkipSymbols ignores symbol-keyed fields of a record reference.
	SkipSymbols bool
}

// Contains reports whether ref contains the requested values.
//
// Reference shapes:
//   - string ref with string values: substring containment with span
//     removal (leftover text counts as unmatched input)
//   - *value.Sequence ref with a list of candidate values
//   - *value.Record ref with a list of keys, or a *value.Record of
//     key/expected-value pairs (a value mismatch fails immediately)
//
// Values may be a single item, a []string, a []value.Value, or (for record
// pair matching) a *value.Record.
func Contains(ref value.Value, values any, opts Options) (bool, error) {
	switch r := ref.(type) {
	case string:
		wanted, err := stringValues(values)
		if err != nil {
			return false, err
		}
		return containString(r, wanted, opts)
	case *value.Sequence:
		wanted, err := listValues(values)
		if err != nil {
			return false, err
		}
		return containSequence(r, wanted, opts)
	case *value.Record:
		return containRecord(r, values, opts)
	default:
		return false, &MatchError{Code: CodeTypeMismatch, Reason: "reference must be a string, sequence, or record"}
	}
}

// containString tallies literal substring matches in one scan, removing
// each matched span; leftover text flags unmatched input.
func containString(ref string, wanted []string, opts Options) (bool, error) {
	// Distinct values each own one tally slot; duplicates share the first.
	slots := make(map[string]int, len(wanted))
	order := make([]string, 0, len(wanted))
	for _, w := range wanted {
		if _, ok := slots[w]; ok {
			continue
		}
		slots[w] = len(order)
		order = append(order, w)
	}

	escaped := make([]string, len(order))
	for i, w := range order {
		escaped[i] = escape.Regex(w)
	}
	re, err := regexp.Compile(strings.Join(escaped, "|"))
	if err != nil {
		return false, &MatchError{Code: CodeInvalidArgument, Reason: "cannot build match pattern: " + err.Error()}
	}

	tally := make([]int, len(order))
	leftovers := re.ReplaceAllStringFunc(ref, func(match string) string {
		tally[slots[match]]++
		return ""
	})

	return verdict(tally, leftovers != "", opts), nil
}

// containSequence matches each reference element against the first
// still-eligible candidate. Under once+only a candidate that already
// matched is no longer eligible, and the element and candidate counts must
// agree exactly.
func containSequence(ref *value.Sequence, wanted []value.Value, opts Options) (bool, error) {
	// Distinct candidates each own one tally slot; duplicate requests
	// collapse, same as the string and record paths. Containers collapse by
	// reference, matching the loose candidate keying.
	slots := make([]value.Value, 0, len(wanted))
	index := make(map[value.Value]int, len(wanted))
	for _, w := range wanted {
		if w == nil || reflect.TypeOf(w).Comparable() {
			if _, ok := index[w]; ok {
				continue
			}
			index[w] = len(slots)
		}
		slots = append(slots, w)
	}

	if opts.Once && opts.Only && ref.Len() != len(slots) {
		return false, nil
	}

	tally := make([]int, len(slots))
	misses := false

	for i := 0; i < ref.Len(); i++ {
		elem, ok := ref.Get(i)
		if !ok {
			misses = true
			continue
		}
		matched := false
		for j, candidate := range slots {
			if opts.Once && opts.Only && tally[j] > 0 {
				continue
			}
			if compare(elem, candidate, opts) {
				tally[j]++
				matched = true
				break
			}
		}
		if !matched {
			misses = true
		}
	}

	return verdict(tally, misses, opts), nil
}

func containRecord(ref *value.Record, values any, opts Options) (bool, error) {
	keys, expected, err := recordRequest(values)
	if err != nil {
		return false, err
	}

	// Distinct keys each own one tally slot; duplicate requests collapse.
	slots := make(map[value.Key]int, len(keys))
	distinct := 0
	for _, k := range keys {
		if _, ok := slots[k]; !ok {
			slots[k] = distinct
			distinct++
		}
	}

	tally := make([]int, distinct)
	misses := false

	for _, k := range ref.Keys(!opts.SkipSymbols) {
		slot, requested := slots[k]
		if !requested {
			misses = true
			continue
		}
		tally[slot]++
		if expected != nil {
			want, _ := expected.Get(k)
			have, _ := ref.Get(k)
			if !compare(have, want, opts) {
				return false, nil
			}
		}
	}

	return verdict(tally, misses, opts), nil
}

// verdict folds a tally and the unmatched-input flag into the final result.
func verdict(tally []int, misses bool, opts Options) bool {
	if opts.Only && (misses || !opts.Once) {
		return !misses
	}

	result := false
	for _, count := range tally {
		if count > 0 {
			result = true
		}
		if opts.Once && count > 1 {
			return false
		}
		if !opts.Part && count == 0 {
			return false
		}
	}
	return result
}

func compare(have, want value.Value, opts Options) bool {
	if opts.Deep {
		return deep.EqualWith(have, want, deep.Flags{Partial: opts.Part})
	}
	return looseEqual(have, want)
}

// looseEqual is plain equality: identity for containers, value equality for
// primitives, guarded against non-comparable dynamic types.
func looseEqual(a, b value.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

func stringValues(values any) ([]string, error) {
	switch t := values.(type) {
	case string:
		return requireNonEmptyStrings([]string{t})
	case []string:
		return requireNonEmptyStrings(t)
	case []value.Value:
		out := make([]string, len(t))
		for i, v := range t {
			s, ok := v.(string)
			if !ok {
				return nil, &MatchError{Code: CodeTypeMismatch, Reason: "a string reference requires string values"}
			}
			out[i] = s
		}
		return requireNonEmptyStrings(out)
	default:
		return nil, &MatchError{Code: CodeTypeMismatch, Reason: "a string reference requires string values"}
	}
}

func requireNonEmptyStrings(vals []string) ([]string, error) {
	if len(vals) == 0 {
		return nil, &MatchError{Code: CodeEmptyInput, Reason: "no values requested"}
	}
	for _, v := range vals {
		if v == "" {
			return nil, &MatchError{Code: CodeInvalidArgument, Reason: "requested substrings must be non-empty"}
		}
	}
	return vals, nil
}

func listValues(values any) ([]value.Value, error) {
	switch t := values.(type) {
	case []value.Value:
		if len(t) == 0 {
			return nil, &MatchError{Code: CodeEmptyInput, Reason: "no values requested"}
		}
		return t, nil
	case []string:
		out := make([]value.Value, len(t))
		for i, s := range t {
			out[i] = s
		}
		if len(out) == 0 {
			return nil, &MatchError{Code: CodeEmptyInput, Reason: "no values requested"}
		}
		return out, nil
	case nil:
		return nil, &MatchError{Code: CodeEmptyInput, Reason: "no values requested"}
	default:
		return []value.Value{t}, nil
	}
}

// recordRequest normalizes the requested keys and, for pair matching, the
// expected values.
func recordRequest(values any) ([]value.Key, *value.Record, error) {
	switch t := values.(type) {
	case *value.Record:
		keys := t.Keys(true)
		if len(keys) == 0 {
			return nil, nil, &MatchError{Code: CodeEmptyInput, Reason: "no pairs requested"}
		}
		return keys, t, nil
	case []string:
		if len(t) == 0 {
			return nil, nil, &MatchError{Code: CodeEmptyInput, Reason: "no keys requested"}
		}
		keys := make([]value.Key, len(t))
		for i, s := range t {
			keys[i] = s
		}
		return keys, nil, nil
	case []value.Key:
		if len(t) == 0 {
			return nil, nil, &MatchError{Code: CodeEmptyInput, Reason: "no keys requested"}
		}
		for _, k := range t {
			switch k.(type) {
			case string, value.Symbol:
			default:
				return nil, nil, &MatchError{Code: CodeTypeMismatch, Reason: "record keys must be strings or symbols"}
			}
		}
		return t, nil, nil
	case string:
		return []value.Key{t}, nil, nil
	case value.Symbol:
		return []value.Key{t}, nil, nil
	case nil:
		return nil, nil, &MatchError{Code: CodeEmptyInput, Reason: "no keys requested"}
	default:
		return nil, nil, &MatchError{Code: CodeTypeMismatch, Reason: "record containment takes keys or a record of pairs"}
	}
}
