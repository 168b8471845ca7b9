// Package gbstatus defines the closed status-code enum returned by every
// public call in this module, and the Error value type that carries a
// status code plus a human-readable detail string.
//
// What & Why:
//
//	Kernels never panic on a user-triggered condition (spec.md §7): a
//	status is always returned, and non-Success statuses carry a "where" +
//	"details" pair instead of a thread-local buffer. This mirrors the
//	teacher's sentinel-error convention (core/types.go, matrix/errors.go)
//	while folding in the closed enum spec.md §6 requires ("Every call
//	returns a status enum").
//
// Complexity:
//
//	Code comparisons and Error construction are O(1).
package gbstatus

import "fmt"

// Code is the closed status enum of spec.md §6.
type Code int

// The closed set of status codes. NoValue and Success are not failures:
// callers must treat NoValue as data ("the entry isn't there"), not as an
// error requiring unwinding.
const (
	Success Code = iota
	NoValue
	UninitializedObject
	NullPointer
	InvalidObject
	InvalidValue
	InvalidIndex
	DomainMismatch
	DimensionMismatch
	OutputNotEmpty
	InsufficientSpace
	OutOfMemory
	Panic
)

// names backs Code.String(); keep in lockstep with the const block above.
var names = [...]string{
	"Success",
	"NoValue",
	"UninitializedObject",
	"NullPointer",
	"InvalidObject",
	"InvalidValue",
	"InvalidIndex",
	"DomainMismatch",
	"DimensionMismatch",
	"OutputNotEmpty",
	"InsufficientSpace",
	"OutOfMemory",
	"Panic",
}

// String renders the code's canonical name, or a numeric fallback for an
// out-of-range value (defensive; the enum is closed so this should not
// occur in practice).
func (c Code) String() string {
	if c < 0 || int(c) >= len(names) {
		return fmt.Sprintf("Code(%d)", int(c))
	}

	return names[c]
}

// Error is the value every non-Success public call returns. It satisfies
// the standard error interface so callers may still use errors.Is/As against
// the Code via Is, but callers that want the structured form should type
// assert to *Error.
type Error struct {
	Code    Code   // the closed status
	Where   string // function/kernel name that produced the error
	Details string // human-readable detail, never logged from a concurrent section
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Where, e.Code)
	}

	return fmt.Sprintf("%s: %s: %s", e.Where, e.Code, e.Details)
}

// Is supports errors.Is(err, gbstatus.New(code, "", "")) style comparisons
// by Code alone (Where/Details are informational, not part of identity).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == other.Code
}

// New constructs an *Error for the given code/where/details. Success is a
// valid code to construct (callers occasionally thread a "not an error but
// occupies the return-value shape" value through internal helpers), but
// public APIs should return a nil error on Success, not New(Success, ...).
func New(code Code, where, details string) *Error {
	return &Error{Code: code, Where: where, Details: details}
}

// Newf is New with fmt.Sprintf-formatted details.
func Newf(code Code, where, format string, args ...interface{}) *Error {
	return New(code, where, fmt.Sprintf(format, args...))
}

// Sentinel errors for the codes most commonly compared against with plain
// errors.Is, mirroring the teacher's one-var-per-condition style
// (core/types.go) for the handful of statuses that carry no interesting
// detail by default.
var (
	ErrNoValue              = New(NoValue, "", "no value at requested location")
	ErrUninitializedObject  = New(UninitializedObject, "", "object is uninitialized")
	ErrNullPointer          = New(NullPointer, "", "nil pointer")
	ErrInvalidObject        = New(InvalidObject, "", "object violates its invariants")
	ErrInvalidValue         = New(InvalidValue, "", "invalid value")
	ErrInvalidIndex         = New(InvalidIndex, "", "index out of the valid coordinate range")
	ErrDomainMismatch       = New(DomainMismatch, "", "incompatible element types")
	ErrDimensionMismatch    = New(DimensionMismatch, "", "incompatible dimensions")
	ErrOutputNotEmpty       = New(OutputNotEmpty, "", "output matrix must be empty for this operation")
	ErrInsufficientSpace    = New(InsufficientSpace, "", "insufficient space in caller-provided buffer")
	ErrOutOfMemory          = New(OutOfMemory, "", "allocation failed")
	ErrPanic                = New(Panic, "", "internal invariant violated")
)

// IsCode reports whether err is itself an *Error whose Code equals code.
// It does not unwrap: an *Error wrapped by fmt.Errorf's %w is not matched
// (errors.Is(err, gbstatus.ErrNoValue) and similar do unwrap).
func IsCode(err error, code Code) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}

	return e.Code == code
}
