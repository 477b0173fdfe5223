package llm

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a generation service failure.
type ErrorKind string

const (
	// KindUnavailable covers connection failures and HTTP error statuses.
	KindUnavailable ErrorKind = "unavailable"
	// KindTimeout covers connect and total-request timeouts.
	KindTimeout ErrorKind = "timeout"
	// KindMalformed covers responses missing the expected fields.
	KindMalformed ErrorKind = "malformed"
)

// ServiceError is a generation service failure with a Kind for
// pattern-matching at the caller.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("generation service %s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind of err, or "" when err is not a ServiceError.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
