package deep

import "github.com/roach88/strux/value"

// visited maps a source reference to its already-produced copy within one
// clone call. Keys are interface values holding container pointers, so the
// map is identity-keyed: each source node is cloned at most once per call,
// and aliasing and cycles in the source are preserved in the copy.
type visited map[any]value.Value

func (v visited) lookup(ref any) (value.Value, bool) {
	target, ok := v[ref]
	return target, ok
}

func (v visited) remember(ref any, target value.Value) {
	v[ref] = target
}

// refPair is an ordered pair of container references under comparison.
type refPair struct {
	a, b any
}

// pairSet tracks (a, b) reference pairs already entered by the equality
// engine within one call. Re-entering a pair short-circuits to "equal":
// the standard coinductive handling that lets mutually-recursive cycles
// compare as equal instead of looping forever.
type pairSet map[refPair]struct{}

func (p pairSet) seen(a, b any) bool {
	_, ok := p[refPair{a: a, b: b}]
	return ok
}

func (p pairSet) enter(a, b any) {
	p[refPair{a: a, b: b}] = struct{}{}
}
