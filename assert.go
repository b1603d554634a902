package strux

import (
	"fmt"
	"strings"
)

// AssertError reports a failed Assert condition.
type AssertError struct {
	Message string
}

// Error implements the error interface.
func (e *AssertError) Error() string {
	return e.Message
}

// Assert panics with an *AssertError when condition is false. If a single
// error argument is supplied, that error is panicked unchanged; otherwise
// the arguments are joined into the message.
func Assert(condition bool, args ...any) {
	if condition {
		return
	}
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			panic(err)
		}
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	msg := strings.Join(parts, " ")
	if msg == "" {
		msg = "assertion failed"
	}
	panic(&AssertError{Message: msg})
}
