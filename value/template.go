package value

// Template is the shared behavior definition a Record's own fields are
// layered on top of. Template identity is pointer identity: two records
// share a template only if they point at the same Template.
//
// A template may declare the immutability capability, in which case records
// built on it are never copied by the clone engine (the original reference
// is returned instead).
type Template struct {
	name      string
	immutable bool
}

// Plain is the bare plain-record template. Records created without an
// explicit template use it, and cloning with template preservation disabled
// rebases the copy onto it.
var Plain = &Template{name: "record"}

// NewTemplate creates a mutable template with the given name.
func NewTemplate(name string) *Template {
	return &Template{name: name}
}

// NewImmutableTemplate creates a template declaring the immutability
// capability.
func NewImmutableTemplate(name string) *Template {
	return &Template{name: name, immutable: true}
}

// Name returns the template's name.
func (t *Template) Name() string {
	return t.name
}

// Immutable reports whether records on this template are immutable.
func (t *Template) Immutable() bool {
	return t.immutable
}
