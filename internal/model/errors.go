package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification. OpError values match them via
// errors.Is according to their Kind.
var (
	ErrValidation       = errors.New("validation error")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIOFailure        = errors.New("io failure")
)

type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindIOFailure        ErrorKind = "io_failure"
)

// OpError wraps an underlying error with the failing operation and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrPermissionDenied:
		return e.Kind == KindPermissionDenied
	case ErrIOFailure:
		return e.Kind == KindIOFailure
	}
	return false
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func validationError(op, msg string) error {
	return &OpError{Op: op, Kind: KindValidation, Err: errors.New(msg)}
}
