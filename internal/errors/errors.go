package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err is an AppError carrying the given code
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDatabaseError = "DATABASE_ERROR"
	CodeInternalError = "INTERNAL_ERROR"

	// Draw validation codes: recoverable, reported per line/entry
	CodeWrongCount     = "WRONG_COUNT"
	CodeNotNumeric     = "NOT_NUMERIC"
	CodeOutOfRange     = "OUT_OF_RANGE"
	CodeDuplicateValue = "DUPLICATE_VALUE"

	// Prediction path codes: recoverable, one terminal message per attempt
	CodeMalformedResponse      = "MALFORMED_RESPONSE"
	CodeInvalidPredictionValue = "INVALID_PREDICTION_VALUE"
	CodeServiceUnavailable     = "SERVICE_UNAVAILABLE"
	CodeInsufficientData       = "INSUFFICIENT_DATA"

	// Collection misuse: a programming invariant, not a user-facing condition
	CodeIndexOutOfRange = "INDEX_OUT_OF_RANGE"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabaseError, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func WrongCount(raw string, got, want int) *AppError {
	return New(CodeWrongCount, fmt.Sprintf("%q: expected %d values, got %d", raw, want, got))
}

func NotNumeric(raw, token string) *AppError {
	return New(CodeNotNumeric, fmt.Sprintf("%q: %q is not a number", raw, token))
}

func OutOfRange(raw string, value, min, max int) *AppError {
	return New(CodeOutOfRange, fmt.Sprintf("%q: %d is outside %d-%d", raw, value, min, max))
}

func DuplicateValue(raw string) *AppError {
	return New(CodeDuplicateValue, fmt.Sprintf("%q: values must be distinct for this game", raw))
}

func MalformedResponse(cause error) *AppError {
	return &AppError{
		Code:    CodeMalformedResponse,
		Message: "prediction response is not the expected JSON shape",
		Cause:   cause,
	}
}

func InvalidPredictionValue(message string) *AppError {
	return New(CodeInvalidPredictionValue, message)
}

func ServiceUnavailable(message string) *AppError {
	return New(CodeServiceUnavailable, message)
}

func InsufficientData(message string) *AppError {
	return New(CodeInsufficientData, message)
}

func IndexOutOfRange(index, length int) *AppError {
	return New(CodeIndexOutOfRange, fmt.Sprintf("index %d out of range for collection of %d", index, length))
}
