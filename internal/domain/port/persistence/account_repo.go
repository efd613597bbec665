package persistence

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// AccountRepository defines methods to interact with account data
type AccountRepository interface {
	// Create saves a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: If the email or username is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If account with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// GetByIDForUpdate retrieves an account and locks its row until the
	// surrounding unit of work ends. Must be called inside a unit of work.
	//
	// Possible errors:
	// - ErrAccountNotFound: If account with specified ID doesn't exist
	// - ErrConcurrentUpdate: If the row lock could not be acquired
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Account, error)

	// GetByEmail retrieves an account by its normalized email
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account uses the email
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)

	// GetByUsername retrieves an account by username
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account uses the username
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)

	// UpdateLedgerState persists balance, lifetime spend and level
	//
	// Possible errors:
	// - ErrAccountNotFound: If account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateLedgerState(ctx context.Context, account *entity.Account) error

	// Delete removes the account together with its personas, conversation turns,
	// images and transactions
	//
	// Possible errors:
	// - ErrAccountNotFound: If account doesn't exist
	Delete(ctx context.Context, id string) error
}
