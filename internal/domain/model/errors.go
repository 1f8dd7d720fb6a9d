package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can pick a recovery policy
// without string-matching messages.
type ErrorKind string

const (
	KindValidation     ErrorKind = "VALIDATION"
	KindUniqueness     ErrorKind = "UNIQUENESS_VIOLATION"
	KindNotFound       ErrorKind = "NOT_FOUND"
	KindStore          ErrorKind = "STORE_ERROR"
	KindNetwork        ErrorKind = "NETWORK_ERROR"
	KindHTTPStatus     ErrorKind = "HTTP_STATUS"
	KindQuotaExceeded  ErrorKind = "QUOTA_EXCEEDED"
	KindParse          ErrorKind = "PARSE_ERROR"
	KindNoConnectivity ErrorKind = "NO_CONNECTIVITY"
	KindNoData         ErrorKind = "NO_DATA_AVAILABLE"
)

// Error is the classified error surfaced by gateways, stores and usecases.
// Status is only set for KindHTTPStatus and KindQuotaExceeded.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error without a cause.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError builds a classified error around a cause.
func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewHTTPStatusError builds an error for a non-2xx remote response.
func NewHTTPStatusError(status int, message string) *Error {
	kind := KindHTTPStatus
	if status == 429 {
		kind = KindQuotaExceeded
	}
	return &Error{Kind: kind, Status: status, Message: message}
}

// KindOf extracts the classification from err, unwrapping as needed.
// Unclassified errors yield the empty kind.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
