// Package errors defines error types for the mizuno SDK.
//
// This package provides structured error types that wrap the different ways
// talking to a Mercurial command server can fail. All error types support
// error unwrapping and can be checked using errors.Is, errors.As, and errors.AsType.
package errors
