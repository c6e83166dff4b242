package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest = 4000
	CodeInvalidUserID  = 4003
	CodeNotFound       = 4040

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeCompletionFailed   = 5001
	CodeDatabaseConnection = 5002
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request body is malformed or misses required fields
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidUserID is returned when a user ID path parameter is not an integer
	ErrInvalidUserID = errors.New("user ID must be an integer")

	// ErrNotFound is returned when a route or resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrCompletionFailed is returned when the language model provider call fails
	ErrCompletionFailed = errors.New("completion request failed")

	// ErrEmptyCompletion is returned when the provider answers without any text candidate
	ErrEmptyCompletion = errors.New("completion returned no text")

	// ErrDatabaseConnection is returned when a read or write against the store fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInvalidGoldRate is returned when the configured price per gram is not positive
	ErrInvalidGoldRate = errors.New("gold rate per gram must be positive")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrCompletionFailed), errors.Is(err, ErrEmptyCompletion):
		return CodeCompletionFailed
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// IsClientError reports whether the error was caused by the caller's input
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}

// PurchaseError represents a failure to record a purchase
type PurchaseError struct {
	UserID int64
	Amount float64
	Err    error
}

// Error implements the error interface for PurchaseError
func (e *PurchaseError) Error() string {
	return fmt.Sprintf("purchase failed for user %d (amount: %v): %v", e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "purchase_error",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPurchaseError creates a detailed purchase error
func NewPurchaseError(userID int64, amount float64, err error) error {
	return &PurchaseError{
		UserID: userID,
		Amount: amount,
		Err:    err,
	}
}

// CompletionError represents a failed call to the language model provider
type CompletionError struct {
	Provider       string
	QuestionLength int
	Err            error
}

// Error implements the error interface for CompletionError
func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion via %s failed (question length: %d): %v", e.Provider, e.QuestionLength, e.Err)
}

// Unwrap returns the underlying error
func (e *CompletionError) Unwrap() error {
	return e.Err
}

// Is makes every CompletionError match ErrCompletionFailed
func (e *CompletionError) Is(target error) bool {
	return target == ErrCompletionFailed
}

// LogFields returns a map of fields for structured logging
func (e *CompletionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "completion_error",
		"provider":        e.Provider,
		"question_length": e.QuestionLength,
		"error":           e.Err.Error(),
		"error_code":      CodeCompletionFailed,
	}
}

// NewCompletionError creates a detailed completion error
func NewCompletionError(provider string, questionLength int, err error) error {
	return &CompletionError{
		Provider:       provider,
		QuestionLength: questionLength,
		Err:            err,
	}
}

// IsCompletionError checks if the error came from the language model provider
func IsCompletionError(err error) bool {
	return errors.Is(err, ErrCompletionFailed) || errors.Is(err, ErrEmptyCompletion)
}

// IsDatabaseError checks if the error came from the store
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}
