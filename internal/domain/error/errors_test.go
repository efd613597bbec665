package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientFunds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"InsufficientFundsTyped", NewInsufficientFundsError("acct_1", 15, 10), CodeInsufficientFunds},
		{"AccessDenied", &AccessDeniedError{Level: 2, RequiredTier: 3}, CodeAccessDenied},
		{"GenerationFailed", NewGenerationFailedError("image", "rsv_1", true, errors.New("boom")), CodeGenerationFailed},
		{"Unauthenticated", ErrUnauthenticated, CodeUnauthenticated},
		{"InvalidToken", ErrInvalidToken, CodeInvalidToken},
		{"PersonaNotFound", ErrPersonaNotFound, CodeNotFound},
		{"AccountNotFound", ErrAccountNotFound, CodeNotFound},
		{"DuplicateAccount", ErrDuplicateAccount, CodeDuplicateAccount},
		{"DuplicateAccountAsValidation", WrapValidationError("email", "already registered", ErrDuplicateAccount), CodeDuplicateAccount},
		{"DuplicateTransaction", ErrDuplicateTransaction, CodeDuplicateEntry},
		{"ConcurrentUpdate", ErrConcurrentUpdate, CodeConcurrentUpdate},
		{"Validation", NewValidationError("password", "too short"), CodeValidation},
		{"InvalidAmount", ErrInvalidAmount, CodeValidation},
		{"UnknownContentLevel", ErrUnknownContentLevel, CodeValidation},
		{"DatabaseConnection", ErrDatabaseConnection, CodeDatabaseConnection},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrImageNotFound), CodeNotFound},
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

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError("acct_42", 30, 10)

	expected := "insufficient credits for account acct_42: required 30, available 10"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	var typed *InsufficientFundsError
	if !errors.As(err, &typed) {
		t.Fatalf("errors.As failed for InsufficientFundsError")
	}
	if typed.Missing() != 20 {
		t.Errorf("Missing() = %d, want 20", typed.Missing())
	}

	fields := typed.LogFields()
	if fields["required"] != int64(30) || fields["available"] != int64(10) {
		t.Errorf("LogFields() = %v, unexpected amounts", fields)
	}
}

func TestAccessDeniedError(t *testing.T) {
	err := &AccessDeniedError{
		AccountID:     "acct_7",
		Level:         2,
		CurrentTier:   1,
		RequiredTier:  3,
		CurrentSpend:  20,
		RequiredSpend: 150,
	}

	if err.Shortfall() != 130 {
		t.Errorf("Shortfall() = %d, want 130", err.Shortfall())
	}
	if !IsAccessDeniedError(fmt.Errorf("gate: %w", err)) {
		t.Errorf("IsAccessDeniedError() = false for wrapped error")
	}

	reached := &AccessDeniedError{CurrentSpend: 200, RequiredSpend: 150}
	if reached.Shortfall() != 0 {
		t.Errorf("Shortfall() = %d, want 0 once spend is reached", reached.Shortfall())
	}
}

func TestGenerationFailedError(t *testing.T) {
	cause := errors.New("provider timeout")
	err := NewGenerationFailedError("text", "rsv_9", true, cause)

	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("errors.Is(err, ErrGenerationFailed) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	var typed *GenerationFailedError
	if !errors.As(err, &typed) || !typed.Refunded {
		t.Errorf("expected refunded GenerationFailedError, got %v", err)
	}
	if typed.LogFields()["error"] != "provider timeout" {
		t.Errorf("LogFields() missing cause: %v", typed.LogFields())
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if !IsNotFoundError(ErrPackageNotFound) {
		t.Errorf("IsNotFoundError(ErrPackageNotFound) = false")
	}
	if IsNotFoundError(ErrValidation) {
		t.Errorf("IsNotFoundError(ErrValidation) = true")
	}
	if !IsDuplicateError(fmt.Errorf("insert: %w", ErrDuplicateTransaction)) {
		t.Errorf("IsDuplicateError() = false for wrapped duplicate transaction")
	}
	if !IsAuthError(ErrInvalidToken) || !IsAuthError(ErrUnauthenticated) {
		t.Errorf("IsAuthError() should cover both auth sentinels")
	}
	if !IsConcurrentUpdateError(ErrConcurrentUpdate) {
		t.Errorf("IsConcurrentUpdateError() = false")
	}
	if !IsInsufficientFundsError(NewInsufficientFundsError("a", 2, 1)) {
		t.Errorf("IsInsufficientFundsError() = false")
	}
	if !IsGenerationFailedError(NewGenerationFailedError("image", "r", false, nil)) {
		t.Errorf("IsGenerationFailedError() = false")
	}
}
