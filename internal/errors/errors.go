package errors

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	// ErrorTypeInvalidArgument marks malformed caller input: a nil or empty
	// image, an unsupported kernel size, a negative downscale limit, or a
	// mask whose dimensions do not match the image. This is the only type
	// the public metric operations return.
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeProcessing      ErrorType = "processing"
	ErrorTypeInternal        ErrorType = "internal"
)

// EvalError represents a structured evaluation error
type EvalError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *EvalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *EvalError) Unwrap() error {
	return e.Cause
}

// NewInvalidArgumentError creates a new invalid-argument error
func NewInvalidArgumentError(message string, cause error) *EvalError {
	return &EvalError{
		Type:    ErrorTypeInvalidArgument,
		Message: message,
		Cause:   cause,
	}
}

// NewProcessingError creates a new processing error
func NewProcessingError(message string, cause error) *EvalError {
	return &EvalError{
		Type:    ErrorTypeProcessing,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *EvalError {
	return &EvalError{
		Type:    ErrorTypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if evalErr, ok := err.(*EvalError); ok {
		return evalErr.Type == errorType
	}
	return false
}
