package deep

import (
	"github.com/roach88/strux/reach"
	"github.com/roach88/strux/value"
)

// stash holds values captured off a source graph by the shallow key-path
// escape: acquire = detach (capture the value, plant a nil placeholder),
// release = restore (write the captured value back). Restore must run on
// every exit path so failure mid-traversal cannot leave the source
// permanently altered.
type stash struct {
	entries []stashEntry
}

type stashEntry struct {
	path reach.Path
	val  value.Value
}

// detachPaths captures the listed paths from root and plants nil
// placeholders in their place. Paths that do not resolve are skipped.
// On a mid-detach failure the already-detached paths are restored before
// the error is returned.
func detachPaths(root value.Value, paths []reach.Path) (*stash, error) {
	st := &stash{}
	for _, p := range paths {
		v, ok := reach.Lookup(root, p)
		if !ok {
			continue
		}
		if err := reach.Put(root, p, nil); err != nil {
			st.restore(root)
			return nil, err
		}
		st.entries = append(st.entries, stashEntry{path: p, val: v})
	}
	return st, nil
}

// restore writes every captured value back into target at its path.
// All entries are attempted even if one fails; the first failure is
// returned.
func (st *stash) restore(target value.Value) error {
	var firstErr error
	for _, e := range st.entries {
		if err := reach.Put(target, e.path, e.val); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
