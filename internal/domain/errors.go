package domain

import (
	"errors"
	"fmt"
)

// Error kinds produced by the catalog rules. Match them with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)

// BusinessError is a rule violation carrying a client-facing message.
type BusinessError struct {
	Kind    error
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Kind
}

// NotFound builds a BusinessError of kind ErrNotFound.
func NotFound(format string, args ...interface{}) error {
	return &BusinessError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a BusinessError of kind ErrConflict.
func Conflict(format string, args ...interface{}) error {
	return &BusinessError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument builds a BusinessError of kind ErrInvalidArgument.
func InvalidArgument(format string, args ...interface{}) error {
	return &BusinessError{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// IsBusinessError reports whether err is, or wraps, a rule violation.
func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
