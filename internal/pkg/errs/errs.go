package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrObjectNotFound         = errors.New("object not found")
	ErrIllegalStateTransition = errors.New("illegal state transition")
	ErrTransport              = errors.New("transport failure")
	ErrRemoteRejection        = errors.New("remote rejection")
	ErrStaleObject            = errors.New("stale object")
)

// sanitize flattens newlines so multi-line payloads cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %v (cause: %s)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s with ID %v", e.ParamName, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// IllegalStateTransitionError indicates a lifecycle operation was attempted
// from a state that does not permit it.
type IllegalStateTransitionError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

// NewIllegalStateTransitionError creates an error for a forbidden state transition.
func NewIllegalStateTransitionError(paramName, from, to string) *IllegalStateTransitionError {
	return &IllegalStateTransitionError{ParamName: paramName, From: from, To: to}
}

func (e *IllegalStateTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("illegal state transition: %s cannot move from %s to %s (cause: %s)",
			e.ParamName, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("illegal state transition: %s cannot move from %s to %s",
		e.ParamName, e.From, e.To))
}

func (e *IllegalStateTransitionError) Unwrap() error {
	return ErrIllegalStateTransition
}

// TransportError indicates a network/protocol failure reaching a remote
// collaborator, as opposed to a well-formed rejection response.
type TransportError struct {
	Service string
	Cause   error
}

// NewTransportError creates an error for a failed remote call.
func NewTransportError(service string, cause error) *TransportError {
	return &TransportError{Service: service, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("transport failure: %s (cause: %s)", e.Service, e.Cause))
	}
	return sanitize(fmt.Sprintf("transport failure: %s", e.Service))
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// RemoteRejectionError indicates a remote collaborator responded with a
// well-formed failure. The response body is carried as diagnostic context.
type RemoteRejectionError struct {
	Service    string
	StatusCode int
	Body       string
}

// NewRemoteRejectionError creates an error for a non-2xx remote response.
func NewRemoteRejectionError(service string, statusCode int, body string) *RemoteRejectionError {
	return &RemoteRejectionError{Service: service, StatusCode: statusCode, Body: body}
}

func (e *RemoteRejectionError) Error() string {
	return sanitize(fmt.Sprintf("remote rejection: %s responded with status %d: %s",
		e.Service, e.StatusCode, e.Body))
}

func (e *RemoteRejectionError) Unwrap() error {
	return ErrRemoteRejection
}

// StaleObjectError indicates an update lost an optimistic-concurrency race:
// the stored version no longer matches the version the caller loaded.
type StaleObjectError struct {
	ParamName string
	ID        any
}

// NewStaleObjectError creates an error for an optimistic-concurrency conflict.
func NewStaleObjectError(paramName string, id any) *StaleObjectError {
	return &StaleObjectError{ParamName: paramName, ID: id}
}

func (e *StaleObjectError) Error() string {
	return sanitize(fmt.Sprintf("stale object: param is: %s, ID is: %v", e.ParamName, e.ID))
}

func (e *StaleObjectError) Unwrap() error {
	return ErrStaleObject
}
