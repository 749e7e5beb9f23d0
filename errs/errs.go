// Package errs holds the construction-time error type the formula algebra
// raises on malformed input: a bad literal name, a nil child, or any other
// argument that can never become a valid Formula. Grounded on pkg/errors'
// Wrapf/Errorf convention for attaching caller context to a root cause.
package errs

import "github.com/pkg/errors"

// ConstructionError reports why a Formula could not be built.
// Construction errors always panic rather than return: none of Lit, Not,
// And, Or can surface an error return without reshaping every other
// constructor's signature, so the panic carries the full cause chain for
// whoever recovers it (tests, or a caller wrapping untrusted input).
// dag.Store.AsNode does not use this type; it panics with a plain string.
type ConstructionError struct {
	cause error
}

func (e *ConstructionError) Error() string { return e.cause.Error() }
func (e *ConstructionError) Unwrap() error { return e.cause }

// New wraps msg as a ConstructionError attributed to ctx (typically the
// constructor's name).
func New(ctx, msg string) *ConstructionError {
	return &ConstructionError{cause: errors.Wrap(errors.New(msg), ctx)}
}

// Newf is New with Printf-style formatting of msg.
func Newf(ctx, format string, args ...interface{}) *ConstructionError {
	return &ConstructionError{cause: errors.Wrap(errors.Errorf(format, args...), ctx)}
}
