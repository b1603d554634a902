package deep

import (
	"errors"
	"fmt"
)

// CodeInvalidArgument indicates an operation was called with inputs of the
// wrong shape (e.g. merging a sequence into a record). These are contract
// violations, reported synchronously with no partial results; callers
// should treat them as programming errors, not transient failures.
const CodeInvalidArgument = "INVALID_ARGUMENT"

// ArgumentError reports a precondition violation on an engine operation.
type ArgumentError struct {
	Code   string
	Op     string // "merge", "applyToDefaults", ...
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Reason)
}

// IsArgumentError reports whether err is an ArgumentError.
// Uses errors.As to handle wrapped errors.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

func argErr(op, format string, args ...any) error {
	return &ArgumentError{Code: CodeInvalidArgument, Op: op, Reason: fmt.Sprintf(format, args...)}
}
