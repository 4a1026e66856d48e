// Package errs provides standardized error types for the routing application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific failures (no route between a pair, incomplete matrix,
// terminal compute transitions) define their own types next to the code that
// raises them, following the same pattern.
package errs
