// Package apperr holds the error kinds every operation reports to its caller.
// Callers wrap them with fmt.Errorf("%w: ...") and match with errors.Is.
package apperr

import "errors"

var (
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrInvalidRequest  = errors.New("invalid request")
)
