package contain

import (
	"errors"
	"fmt"
)

// Code categorizes containment precondition failures.
type Code string

const (
	// CodeEmptyInput indicates containment was requested with no values.
	CodeEmptyInput Code = "EMPTY_INPUT"

	// CodeTypeMismatch indicates the reference or the requested values have
	// an unsupported shape.
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// CodeInvalidArgument indicates a malformed request (e.g. an empty
	// requested substring).
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// MatchError reports a containment precondition violation. These are
// contract violations raised at the point of the call, never partial
// results.
type MatchError struct {
	Code   Code
	Reason string
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// IsEmptyInput reports whether err is a MatchError with CodeEmptyInput.
// Uses errors.As to handle wrapped errors.
func IsEmptyInput(err error) bool {
	var me *MatchError
	return errors.As(err, &me) && me.Code == CodeEmptyInput
}

// IsTypeMismatch reports whether err is a MatchError with CodeTypeMismatch.
// Uses errors.As to handle wrapped errors.
func IsTypeMismatch(err error) bool {
	var me *MatchError
	return errors.As(err, &me) && me.Code == CodeTypeMismatch
}
