package deep

import (
	"bytes"
	"regexp"

	"github.com/roach88/strux/value"
)

// Clone produces a structurally independent deep copy of v: templates
// preserved, symbol-keyed fields included, cycles and internal aliasing
// reproduced in the copy. Records on an immutable template are returned
// unchanged.
func Clone(v value.Value) value.Value {
	out, _ := CloneWith(v, CloneOptions{})
	return out
}

// CloneWith clones v under the given options. The error is always nil
// unless ShallowPaths is set, in which case path assignment failures from
// the detach/reattach mechanism are reported.
func CloneWith(v value.Value, opts CloneOptions) (value.Value, error) {
	if !opts.ShallowAll && len(opts.ShallowPaths) > 0 {
		return cloneWithShallow(v, opts)
	}
	c := &cloner{opts: opts, seen: make(visited)}
	return c.clone(v), nil
}

type cloner struct {
	opts CloneOptions
	seen visited
}

// child clones a nested value. Under ShallowAll nested values are carried
// by reference; only the top container is duplicated.
func (c *cloner) child(v value.Value) value.Value {
	if c.opts.ShallowAll {
		return v
	}
	return c.clone(v)
}

func (c *cloner) clone(v value.Value) value.Value {
	switch value.Classify(v) {
	case value.TagPrimitive:
		return v
	case value.TagDateTime:
		// Immutable value type; the interface already holds a copy.
		return v
	case value.TagByteBuffer:
		// Byte buffers are not hashable, so aliased buffers cannot share a
		// visited entry and clone independently.
		return bytes.Clone(v.([]byte))
	}

	if target, ok := c.seen.lookup(v); ok {
		return target
	}

	switch src := v.(type) {
	case *value.Record:
		return c.cloneRecord(src)
	case *value.Sequence:
		return c.cloneSequence(src)
	case *value.Dict:
		return c.cloneDict(src)
	case *value.Set:
		return c.cloneSet(src)
	case *regexp.Regexp:
		dst := regexp.MustCompile(src.String())
		c.seen.remember(src, dst)
		return dst
	case *value.WeakDict:
		// Weak entries are not enumerable; the copy starts empty.
		dst := value.NewWeakDict()
		c.seen.remember(src, dst)
		return dst
	case *value.WeakSet:
		dst := value.NewWeakSet()
		c.seen.remember(src, dst)
		return dst
	}
	return v
}

func (c *cloner) cloneRecord(src *value.Record) value.Value {
	if src.Template().Immutable() {
		return src
	}

	var dst *value.Record
	if c.opts.BareTemplate {
		dst = value.NewRecord()
	} else {
		dst = value.NewRecordWith(src.Template())
	}

	// Register before populating children so a child referring back to an
	// ancestor resolves to the partially-built copy.
	c.seen.remember(src, dst)

	for _, k := range src.Keys(!c.opts.SkipSymbols) {
		f, _ := src.Descriptor(k)
		if f.Kind == value.FieldStored {
			f.Value = c.child(f.Value)
		}
		// Accessors are copied verbatim, never invoked; the enumerable bit
		// carries over in both cases.
		dst.Define(k, f)
	}
	return dst
}

func (c *cloner) cloneSequence(src *value.Sequence) value.Value {
	dst := value.NewSequence()
	c.seen.remember(src, dst)

	for i := 0; i < src.Len(); i++ {
		if elem, ok := src.Get(i); ok {
			dst.Set(i, c.child(elem))
		}
	}
	// Re-assign the length explicitly so holes and a length beyond the
	// populated indices round-trip.
	dst.SetLen(src.Len())
	return dst
}

func (c *cloner) cloneDict(src *value.Dict) value.Value {
	dst := value.NewDict()
	c.seen.remember(src, dst)

	for _, k := range src.Keys() {
		entry, _ := src.Get(k)
		dst.Set(k, c.child(entry)) // keys carried by identity, values cloned
	}
	return dst
}

func (c *cloner) cloneSet(src *value.Set) value.Value {
	dst := value.NewSet()
	c.seen.remember(src, dst)

	for _, elem := range src.Values() {
		dst.Add(c.child(elem))
	}
	return dst
}

// cloneWithShallow detaches the shallow paths from the source, deep-clones
// the remainder, then reattaches the captured values to both the copy and
// the source. The source ends every call structurally unchanged, including
// error exits.
func cloneWithShallow(v value.Value, opts CloneOptions) (out value.Value, err error) {
	st, err := detachPaths(v, opts.ShallowPaths)
	if err != nil {
		return nil, err
	}
	defer st.restore(v)

	inner := opts
	inner.ShallowPaths = nil
	copied, err := CloneWith(v, inner)
	if err != nil {
		return nil, err
	}
	if err := st.restore(copied); err != nil {
		return nil, err
	}
	return copied, nil
}
