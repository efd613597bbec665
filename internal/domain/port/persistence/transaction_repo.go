package persistence

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// TransactionRepository defines methods to interact with the append-only transaction log
type TransactionRepository interface {
	// Create appends a transaction. Entries are never updated afterwards.
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If an entry with the same kind and reference exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByReference returns the entry of the given kind carrying the reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such entry exists
	FindByReference(ctx context.Context, kind entity.TransactionKind, reference string) (*entity.Transaction, error)

	// ListByAccount returns entries newest first
	ListByAccount(ctx context.Context, accountID string, page entity.Page) ([]*entity.Transaction, error)

	// SumByAccount returns the sum of all signed amounts of the account
	SumByAccount(ctx context.Context, accountID string) (int64, error)
}
