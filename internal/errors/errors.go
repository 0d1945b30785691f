// Package errors is the single import for error construction and inspection.
// Matching goes through the standard library; wrapping records a stack with
// pkg/errors so the HTTP error handler can log it with %+v.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Inspection.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join
	Cause  = pkgerrors.Cause
)

// Construction. New carries no stack; use Errorf when the origin matters.
var (
	New         = stderrors.New
	Errorf      = pkgerrors.Errorf
	Wrap        = pkgerrors.Wrap
	Wrapf       = pkgerrors.Wrapf
	WithStack   = pkgerrors.WithStack
	WithMessage = pkgerrors.WithMessage
)

// AsType is As for callers that want the typed value back.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}
