// Package errs defines the error types used across the marketplace
// application.
//
// Sentinel errors (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange,
// ErrValueIsRequired, ErrVersionIsInvalid, ErrConcurrentModification) are
// matched with errors.Is. The typed errors wrap them and carry the parameter
// name and an optional cause, so callers can log precise context without
// parsing error strings.
package errs
