package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *Error) by layout operations.
var (
	ErrInvalidShape       = errors.New("invalid shape")
	ErrAxisOutOfRange     = errors.New("axis out of range")
	ErrInvalidIndex       = errors.New("index out of bounds")
	ErrInvalidPermutation = errors.New("invalid permutation")
	ErrNotMergeable       = errors.New("axes not mergeable")
	ErrFactorMismatch     = errors.New("factors do not match extent")
	ErrNotBroadcastable   = errors.New("axis not broadcastable")
	ErrSliceOutOfBounds   = errors.New("slice out of bounds")
	ErrInvalidStep        = errors.New("invalid slice step")
	ErrNotTileable        = errors.New("layout not tileable")
	ErrOverflow           = errors.New("arithmetic overflow")
)

// Error describes a failed layout operation.
//
// Err is one of the sentinel errors above, so callers can test the failure
// class with errors.Is and recover the offending axes with errors.As:
//
//	var lerr *layout.Error
//	if errors.As(err, &lerr) && errors.Is(err, layout.ErrNotMergeable) {
//	    fmt.Println(lerr.Axis, lerr.Other)
//	}
type Error struct {
	Op      string // Operation that failed (e.g., "merge", "slice")
	Axis    int    // Primary axis involved, -1 if none
	Other   int    // Second axis of a pair (merge), -1 if none
	Details string // Additional details
	Err     error  // Sentinel error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Err)
	switch {
	case e.Axis >= 0 && e.Other >= 0:
		msg = fmt.Sprintf("%s: axes %d and %d: %v", e.Op, e.Axis, e.Other, e.Err)
	case e.Axis >= 0:
		msg = fmt.Sprintf("%s: axis %d: %v", e.Op, e.Axis, e.Err)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds an *Error that names no axis.
func newError(op string, err error, format string, args ...any) *Error {
	return &Error{Op: op, Axis: -1, Other: -1, Details: fmt.Sprintf(format, args...), Err: err}
}

// axisError builds an *Error about a single axis.
func axisError(op string, err error, axis int, format string, args ...any) *Error {
	return &Error{Op: op, Axis: axis, Other: -1, Details: fmt.Sprintf(format, args...), Err: err}
}

// pairError builds an *Error about a pair of axes.
func pairError(op string, err error, axis, other int, format string, args ...any) *Error {
	return &Error{Op: op, Axis: axis, Other: other, Details: fmt.Sprintf(format, args...), Err: err}
}
