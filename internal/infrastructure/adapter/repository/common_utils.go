package repository

import (
	"context"
	"errors"
	"strings"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	TransientError  ErrorType = "transient"
	LockError       ErrorType = "lock"
	ConnectionError ErrorType = "connection"
	ConstraintError ErrorType = "constraint"
	SchemaError     ErrorType = "schema"
	CanceledError   ErrorType = "canceled"
	UnknownError    ErrorType = "unknown"
)

// ErrorClassifier labels driver errors for structured logs
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return CanceledError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsSchemaError(err):
		return SchemaError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return UnknownError
	}
}

func containsAny(err error, needles ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

// IsTransientError checks if an error is likely to go away on its own
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		containsAny(err, "connection reset", "timeout", "eof", "server closed", "broken pipe")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "database is locked", "deadlock", "lock wait timeout", "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "connection refused", "database is closed", "dial", "network", "unable to open database")
}

// IsSchemaError checks if the error comes from a missing or outdated table
func (c *ErrorClassifier) IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "no such table", "no such column", "does not exist", "doesn't exist")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err, "constraint", "violates", "not null", "duplicate")
}
