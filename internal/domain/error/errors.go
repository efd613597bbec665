package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation        = 4000
	CodeUnauthenticated   = 4010
	CodeInvalidToken      = 4011
	CodeInsufficientFunds = 4020
	CodeAccessDenied      = 4030
	CodeNotFound          = 4040
	CodeDuplicateAccount  = 4090
	CodeDuplicateEntry    = 4091
	CodeConcurrentUpdate  = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeGenerationFailed   = 5020
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrValidation is returned when input is malformed or violates a business rule
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a ledger amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrAmountOverflow is returned when a credit would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidKind is returned when a transaction kind is not allowed for the operation
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrUnknownContentLevel is returned when a requested content level is not configured
	ErrUnknownContentLevel = errors.New("unknown content level")

	// ErrUnauthenticated is returned when credentials do not match an account
	ErrUnauthenticated = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a bearer token cannot be resolved to an account
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInsufficientFunds is returned when a debit exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient credits")

	// ErrAccessDenied is returned when the account tier does not unlock a content level
	ErrAccessDenied = errors.New("content level is locked for this account")

	// ErrGenerationFailed is returned when the responder or image provider fails
	ErrGenerationFailed = errors.New("generation failed")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrPersonaNotFound is returned when a persona doesn't exist or isn't owned by the caller
	ErrPersonaNotFound = errors.New("persona not found")

	// ErrImageNotFound is returned when a generated image doesn't exist or isn't owned by the caller
	ErrImageNotFound = errors.New("image not found")

	// ErrPackageNotFound is returned when a credit package doesn't exist or is inactive
	ErrPackageNotFound = errors.New("credit package not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateAccount is returned when the email or username is already registered
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrDuplicateTransaction is returned when a transaction with the same kind and reference exists
	ErrDuplicateTransaction = errors.New("transaction with this reference already exists")

	// ErrDuplicateEntry is returned for other unique constraint violations
	ErrDuplicateEntry = errors.New("entry already exists")

	// ErrConcurrentUpdate is returned when the account row could not be locked or serialized
	ErrConcurrentUpdate = errors.New("account is being modified by another operation")

	// ErrNestedTransaction is returned when a unit of work is started inside another one
	ErrNestedTransaction = errors.New("nested unit of work is not supported")

	// ErrNoTransaction is returned when commit or rollback is called without a unit of work
	ErrNoTransaction = errors.New("no transaction found in context")

	// ErrPaymentNotConfigured is returned when checkout is requested without a payment provider
	ErrPaymentNotConfigured = errors.New("payment provider is not configured")

	// ErrInvalidPaymentEvent is returned when a payment webhook payload fails verification
	ErrInvalidPaymentEvent = errors.New("invalid payment event")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrGenerationFailed):
		return CodeGenerationFailed
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrAccessDenied):
		return CodeAccessDenied
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrDuplicateTransaction), errors.Is(err, ErrDuplicateEntry):
		return CodeDuplicateEntry
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case IsValidationError(err):
		return CodeValidation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ValidationError describes a rejected input field
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Is reports ErrValidation for every validation error
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// WrapValidationError attaches a more specific sentinel to a validation error
func WrapValidationError(field, reason string, err error) error {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	AccountID string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient credits for account %s: required %d, available %d",
		e.AccountID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Missing returns how many credits the account lacks
func (e *InsufficientFundsError) Missing() int64 {
	if e.Required <= e.Available {
		return 0
	}
	return e.Required - e.Available
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account_id": e.AccountID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID string, required, available int64) error {
	return &InsufficientFundsError{
		AccountID: accountID,
		Required:  required,
		Available: available,
	}
}

// AccessDeniedError carries what the account must spend to unlock a content level
type AccessDeniedError struct {
	AccountID     string
	Level         int
	CurrentTier   int
	RequiredTier  int
	CurrentSpend  int64
	RequiredSpend int64
}

// Error implements the error interface
func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("content level %d requires tier %d (account %s is tier %d, spend %d more credits to unlock)",
		e.Level, e.RequiredTier, e.AccountID, e.CurrentTier, e.Shortfall())
}

// Is checks if the target error is an ErrAccessDenied
func (e *AccessDeniedError) Is(target error) bool {
	return target == ErrAccessDenied
}

// Shortfall returns the additional lifetime spend needed to unlock the level
func (e *AccessDeniedError) Shortfall() int64 {
	if e.RequiredSpend <= e.CurrentSpend {
		return 0
	}
	return e.RequiredSpend - e.CurrentSpend
}

// LogFields returns a map of fields for structured logging
func (e *AccessDeniedError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "access_denied",
		"account_id":     e.AccountID,
		"level":          e.Level,
		"current_tier":   e.CurrentTier,
		"required_tier":  e.RequiredTier,
		"current_spend":  e.CurrentSpend,
		"required_spend": e.RequiredSpend,
		"error_code":     CodeAccessDenied,
	}
}

// GenerationFailedError reports an external generation failure after compensation
type GenerationFailedError struct {
	Kind          string
	ReservationID string
	Refunded      bool
	Err           error
}

// Error implements the error interface
func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("%s generation failed (reservation %s, refunded: %t): %v",
		e.Kind, e.ReservationID, e.Refunded, e.Err)
}

// Is checks if the target error is an ErrGenerationFailed
func (e *GenerationFailedError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// Unwrap returns the underlying error
func (e *GenerationFailedError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GenerationFailedError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":     "generation_failed",
		"kind":           e.Kind,
		"reservation_id": e.ReservationID,
		"refunded":       e.Refunded,
		"error_code":     CodeGenerationFailed,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewGenerationFailedError creates a generation failure for the given content kind
func NewGenerationFailedError(kind, reservationID string, refunded bool, err error) error {
	return &GenerationFailedError{
		Kind:          kind,
		ReservationID: reservationID,
		Refunded:      refunded,
		Err:           err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient credits
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsAccessDeniedError checks if the error is a gate rejection
func IsAccessDeniedError(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsGenerationFailedError checks if the error is an external generation failure
func IsGenerationFailedError(err error) bool {
	return errors.Is(err, ErrGenerationFailed)
}

// IsValidationError checks if the error is an input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrUnknownContentLevel) ||
		errors.Is(err, ErrAmountOverflow)
}

// IsDuplicateError checks if the error is any unique constraint violation
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrDuplicateTransaction) ||
		errors.Is(err, ErrDuplicateEntry)
}

// IsConcurrentUpdateError checks if the error is a lock or serialization conflict
func IsConcurrentUpdateError(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrPersonaNotFound) ||
		errors.Is(err, ErrImageNotFound) ||
		errors.Is(err, ErrPackageNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsAuthError checks if the error should be reported as 401
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrInvalidToken)
}
