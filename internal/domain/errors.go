package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by an aggregate constructor or a
// repository matches exactly one of these with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)

// Error carries the kind, the operation that failed and the underlying cause.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause, so errors.Is matches the kind
// and errors.As still reaches driver errors such as *pgconn.PgError.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Validation(op, msg string) error {
	return &Error{Kind: ErrValidation, Op: op, Err: errors.New(msg)}
}

func NotFound(entity, id string) error {
	return &Error{Kind: ErrNotFound, Op: "find " + entity, Err: fmt.Errorf("%s %q", entity, id)}
}

// Storage wraps a store failure. An error that already carries a kind is
// returned unchanged.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: ErrStorage, Op: op, Err: err}
}
