// Package strux is a structural object-manipulation toolkit: deep cloning,
// deep equality, recursive merging, and containment matching over graph
// values, plus the small helpers in this file.
//
// The engines live in the subpackages: value (the graph model), deep
// (clone/equal/merge/defaults), contain (containment matching), reach
// (dotted-path lookup), and escape (string escaping).
package strux

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Stringify renders v as JSON, falling back to an error description instead
// of failing. Intended for diagnostics, never for data interchange.
func Stringify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("[cannot display object: %v]", err)
	}
	return string(b)
}

// Once wraps fn so only the first invocation runs.
func Once(fn func()) func() {
	var once sync.Once
	return func() {
		once.Do(fn)
	}
}

// Ignore accepts and discards any values. Useful as a no-op callback or to
// mark intentionally dropped results.
func Ignore(...any) {}

// Wait blocks for the given duration.
func Wait(d time.Duration) {
	time.Sleep(d)
}

// Block blocks forever.
func Block() {
	select {}
}
