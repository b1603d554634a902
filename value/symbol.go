package value

import (
	"fmt"

	"github.com/google/uuid"
)

// Symbol is a process-unique field key with a human-readable description.
// Two symbols created by separate NewSymbol calls are never equal, even with
// the same description. Symbols are comparable and can be used as Record
// field keys alongside strings, in a separate namespace.
type Symbol struct {
	id   uuid.UUID
	desc string
}

// NewSymbol creates a fresh symbol. The description is for diagnostics only
// and carries no identity.
func NewSymbol(desc string) Symbol {
	return Symbol{id: uuid.New(), desc: desc}
}

// Description returns the symbol's description.
func (s Symbol) Description() string {
	return s.desc
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", s.desc)
}
