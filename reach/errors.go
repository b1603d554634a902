package reach

import (
	"errors"
	"fmt"
)

// Code categorizes path resolution failures.
type Code string

const (
	// CodeMissing indicates a required path segment is absent.
	CodeMissing Code = "MISSING_PATH"

	// CodeInvalid indicates a segment traverses through a non-traversable
	// value or is malformed for its container (e.g. a non-numeric sequence
	// index).
	CodeInvalid Code = "INVALID_PATH"
)

// PathError reports a strict path lookup or assignment failure.
type PathError struct {
	Code    Code
	Path    string // full path text
	Segment string // offending segment, when known
	Reason  string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("%s: %q at segment %q: %s", e.Code, e.Path, e.Segment, e.Reason)
	}
	return fmt.Sprintf("%s: %q: %s", e.Code, e.Path, e.Reason)
}

// IsMissing reports whether err is a PathError with CodeMissing.
// Uses errors.As to handle wrapped errors.
func IsMissing(err error) bool {
	var pe *PathError
	return errors.As(err, &pe) && pe.Code == CodeMissing
}

// IsInvalid reports whether err is a PathError with CodeInvalid.
// Uses errors.As to handle wrapped errors.
func IsInvalid(err error) bool {
	var pe *PathError
	return errors.As(err, &pe) && pe.Code == CodeInvalid
}
