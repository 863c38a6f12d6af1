// Package errs provides standardized error types for the control tower application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - IllegalStateTransitionError: For lifecycle operations attempted from a
//     state that does not permit them
//   - TransportError: For network/protocol failures talking to a remote collaborator
//   - RemoteRejectionError: For well-formed non-2xx responses from a remote collaborator
//   - StaleObjectError: For optimistic-concurrency losers on save
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
