package usecase

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// LedgerResult is the outcome of a committed ledger mutation
type LedgerResult struct {
	Account     *entity.Account     // Account state after the mutation
	Transaction *entity.Transaction // Appended entry, or the original one for duplicates
	Duplicate   bool                // True when the reference was already applied
}

// AccountSummary is the balance view of an account
type AccountSummary struct {
	AccountID     string
	Email         string
	Username      string
	Balance       int64
	LifetimeSpend int64
	Level         int
	UnlockTier    int
	NextLevelAt   *int64 // Lifetime spend needed for the next level, nil at max
	NextUnlockAt  *int64 // Lifetime spend needed for the next unlock tier, nil at max
	Personas      int    // Filled by account views only
}

// LedgerUseCase owns every balance mutation
type LedgerUseCase interface {
	// OpenAccount persists a new account and credits the signup bonus atomically
	OpenAccount(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// Credit adds credits and appends a positive entry of the given kind
	Credit(ctx context.Context, accountID string, amount int64, kind entity.TransactionKind, description, reference string) (*LedgerResult, error)

	// Debit consumes credits or fails with an InsufficientFundsError leaving the account unchanged
	Debit(ctx context.Context, accountID string, amount int64, description, reference string) (*LedgerResult, error)

	// Refund returns credits. A second refund with the same reference is a no-op.
	Refund(ctx context.Context, accountID string, amount int64, description, reference string) (*LedgerResult, error)

	// ApplyPurchase credits a purchase at most once per correlation id
	ApplyPurchase(ctx context.Context, accountID string, amount int64, correlationID, description string) (*LedgerResult, error)

	// Summary returns balance, spend and tier information
	Summary(ctx context.Context, accountID string) (*AccountSummary, error)

	// History returns the account's transactions, newest first
	History(ctx context.Context, accountID string, page entity.Page) ([]*entity.Transaction, error)
}
