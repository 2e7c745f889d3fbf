package model

import (
	"errors"
	"net/http"
)

// Kind classifies a request failure. Kinds are stable identifiers used to
// derive status codes; display text lives alongside but can be replaced
// without touching classification.
type Kind int

// The closed set of failure kinds.
const (
	KindInvalidArgument Kind = iota
	KindConstraintViolation
	KindMissingField
	KindNotFound
	KindInternalError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindMissingField:
		return "missing_field"
	case KindNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}

// StatusCode returns the HTTP status for the kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindInvalidArgument, KindConstraintViolation, KindMissingField:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage returns the user-facing message for the kind. Raw storage
// error text is never shown to clients.
func (k Kind) DefaultMessage() string {
	switch k {
	case KindInvalidArgument:
		return "Invalid request!"
	case KindConstraintViolation:
		return "Invalid insertion!"
	case KindMissingField:
		return "Missing data field!"
	case KindNotFound:
		return "User not found!"
	default:
		return "Internal server error"
	}
}

// Error is a classified request failure.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Err returns an Error of the given kind with its default message.
func Err(kind Kind) *Error {
	return &Error{Kind: kind, Msg: kind.DefaultMessage()}
}

// ErrKind reports the kind carried by err. Unclassified errors are
// internal by definition.
func ErrKind(err error) Kind {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return KindInternalError
}
