// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - A struct type carrying error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting, Unwrap() returning the sentinel
//
// Handlers classify failures through the sentinels: ErrObjectNotFound and
// ErrValueIsInvalid map to client errors on the HTTP surface, everything
// else is treated as an internal failure.
package errs
