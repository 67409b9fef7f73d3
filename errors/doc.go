// Package errors provides the structured error type used across the module.
// Errors carry a machine-readable code, a message, optional details and an
// underlying cause that stays reachable through errors.Is and errors.As.
package errors
