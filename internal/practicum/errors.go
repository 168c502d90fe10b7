package practicum

import (
	"errors"
	"fmt"
)

// Kind identifies one of the closed set of failure categories a poll
// iteration can produce. Everything except KindNoHomework is a reportable
// failure; KindNoHomework is the expected absence-of-data condition.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnectivity
	KindRequestFailed
	KindMalformedResponse
	KindSchema
	KindMissingField
	KindUnknownStatus
	KindNoHomework
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "CONNECTIVITY"
	case KindRequestFailed:
		return "REQUEST_FAILED"
	case KindMalformedResponse:
		return "MALFORMED_RESPONSE"
	case KindSchema:
		return "SCHEMA"
	case KindMissingField:
		return "MISSING_FIELD"
	case KindUnknownStatus:
		return "UNKNOWN_STATUS"
	case KindNoHomework:
		return "NO_HOMEWORK"
	default:
		return "UNKNOWN"
	}
}

// Error is the single error type for homework status processing failures.
type Error struct {
	kind    Kind
	message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.err
}

// NewError creates a new error of the given kind.
func NewError(kind Kind, message string) error {
	return &Error{kind: kind, message: message}
}

// WrapError creates a new error of the given kind wrapping a cause.
func WrapError(kind Kind, message string, cause error) error {
	return &Error{kind: kind, message: message, err: cause}
}

// KindOf returns the kind of err, or KindUnknown if err does not carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

// IsNoHomework reports whether err signals the benign empty-list condition.
func IsNoHomework(err error) bool {
	return KindOf(err) == KindNoHomework
}
