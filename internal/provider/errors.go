package provider

import (
	"errors"
	"fmt"
)

// ErrorKind classifies provider failures. Transient and Quota failures may be
// retried; InvalidResponse must not be.
type ErrorKind int

const (
	KindTransient ErrorKind = iota
	KindInvalidResponse
	KindQuota
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindInvalidResponse:
		return "invalid_response"
	case KindQuota:
		return "quota"
	}
	return "unknown"
}

// Error is the typed failure returned by every Client operation.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError constructs a typed provider error.
func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err is a provider error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind == kind
	}
	return false
}

// IsRetryable reports whether an error may be retried.
func IsRetryable(err error) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind == KindTransient || perr.Kind == KindQuota
	}
	// Unknown errors are assumed transient, matching how raw network
	// failures surface before classification.
	return true
}
