package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors are raised while the registry is being populated.
const (
	// ErrCodeInvalidProvider indicates a provider that cannot be registered.
	ErrCodeInvalidProvider ErrorCode = "INVALID_PROVIDER"
	// ErrCodeInvalidConfig indicates a configuration that failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Access errors
const (
	// ErrCodeInvalidValueType indicates a value of the wrong type for its key.
	ErrCodeInvalidValueType ErrorCode = "INVALID_VALUE_TYPE"
	// ErrCodeInvalidInput indicates invalid caller input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeUnavailable indicates a dependency such as a telemetry exporter
	// could not be reached.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUnavailable: true,
	ErrCodeInternal:    false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
