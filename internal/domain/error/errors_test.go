package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidRequest.Error() != "invalid request" {
		t.Errorf("ErrInvalidRequest has unexpected message: %s", ErrInvalidRequest.Error())
	}
	if ErrCompletionFailed.Error() != "completion request failed" {
		t.Errorf("ErrCompletionFailed has unexpected message: %s", ErrCompletionFailed.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"NotFound", ErrNotFound, 4040},
		{"CompletionFailed", ErrCompletionFailed, 5001},
		{"EmptyCompletion", ErrEmptyCompletion, 5001},
		{"DatabaseConnection", ErrDatabaseConnection, 5002},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidRequest), 4000},
		{"TypedCompletionError", NewCompletionError("gemini", 12, errors.New("quota exceeded")), 5001},
		{"TypedPurchaseError", NewPurchaseError(1, 10, ErrDatabaseConnection), 5002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(ErrInvalidRequest) {
		t.Errorf("IsClientError(ErrInvalidRequest) = false, want true")
	}
	if IsClientError(ErrDatabaseConnection) {
		t.Errorf("IsClientError(ErrDatabaseConnection) = true, want false")
	}
}

func TestPurchaseError(t *testing.T) {
	purchaseErr := &PurchaseError{
		UserID: 7,
		Amount: 10.5,
		Err:    ErrDatabaseConnection,
	}

	expectedErrMsg := "purchase failed for user 7 (amount: 10.5): database connection error"
	if purchaseErr.Error() != expectedErrMsg {
		t.Errorf("PurchaseError.Error() = %s, want %s", purchaseErr.Error(), expectedErrMsg)
	}

	if !errors.Is(purchaseErr, ErrDatabaseConnection) {
		t.Errorf("errors.Is(purchaseErr, ErrDatabaseConnection) = false, want true")
	}
	if !IsDatabaseError(purchaseErr) {
		t.Errorf("IsDatabaseError(purchaseErr) = false, want true")
	}

	fields := purchaseErr.LogFields()
	if fields["user_id"] != int64(7) {
		t.Errorf("LogFields()[user_id] = %v, want 7", fields["user_id"])
	}
	if fields["error_code"] != CodeDatabaseConnection {
		t.Errorf("LogFields()[error_code] = %v, want %d", fields["error_code"], CodeDatabaseConnection)
	}
}

func TestCompletionError(t *testing.T) {
	cause := errors.New("deadline exceeded")
	completionErr := NewCompletionError("gemini", 30, cause)

	if !errors.Is(completionErr, ErrCompletionFailed) {
		t.Errorf("errors.Is(completionErr, ErrCompletionFailed) = false, want true")
	}
	if !errors.Is(completionErr, cause) {
		t.Errorf("errors.Is(completionErr, cause) = false, want true")
	}
	if !IsCompletionError(completionErr) {
		t.Errorf("IsCompletionError(completionErr) = false, want true")
	}

	var typed *CompletionError
	if !errors.As(completionErr, &typed) {
		t.Fatalf("errors.As(completionErr, *CompletionError) = false, want true")
	}
	if typed.Provider != "gemini" {
		t.Errorf("Provider = %s, want gemini", typed.Provider)
	}
	if typed.LogFields()["question_length"] != 30 {
		t.Errorf("LogFields()[question_length] = %v, want 30", typed.LogFields()["question_length"])
	}
}
