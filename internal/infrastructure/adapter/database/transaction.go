package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern on a gorm transaction carried in the context
type UnitOfWork struct {
	db         *gorm.DB
	logger     coreport.Logger
	rowLocking bool
	txOptions  *sql.TxOptions
	classifier *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance. Postgres transactions run at
// READ COMMITTED and rely on SELECT ... FOR UPDATE for account rows.
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	u := &UnitOfWork{
		db:         db,
		logger:     logger,
		classifier: repository.NewErrorClassifier(),
	}
	if db.Dialector.Name() == DriverPostgres {
		u.rowLocking = true
		u.txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	return u
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey).(*gorm.DB)
	return tx
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if txFromContext(ctx) != nil {
		return ctx, errs.ErrNestedTransaction
	}

	var tx *gorm.DB
	if u.txOptions != nil {
		tx = u.db.WithContext(ctx).Begin(u.txOptions)
	} else {
		tx = u.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("%w: failed to begin transaction: %s", errs.ErrDatabaseConnection, tx.Error.Error())
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return errs.ErrNoTransaction
	}

	if err := tx.Commit().Error; err != nil {
		if u.classifier.IsLockError(err) {
			return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
		}
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return errs.ErrNoTransaction
	}

	err := tx.Rollback().Error
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return nil
	}

	u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
	return fmt.Errorf("failed to rollback transaction: %w", err)
}

// session returns the open transaction or a context-bound handle
func (u *UnitOfWork) session(ctx context.Context) (*gorm.DB, repository.Options) {
	if tx := txFromContext(ctx); tx != nil {
		return tx, repository.Options{InTransaction: true, RowLocking: u.rowLocking}
	}
	return u.db.WithContext(ctx), repository.Options{RowLocking: u.rowLocking}
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	db, opts := u.session(ctx)
	return repository.NewAccountRepository(db, u.logger, opts)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	db, _ := u.session(ctx)
	return repository.NewTransactionRepository(db, u.logger)
}

// GetPersonaRepository returns a persona repository in the current transaction
func (u *UnitOfWork) GetPersonaRepository(ctx context.Context) persistence.PersonaRepository {
	db, _ := u.session(ctx)
	return repository.NewPersonaRepository(db, u.logger)
}

// GetConversationRepository returns a conversation repository in the current transaction
func (u *UnitOfWork) GetConversationRepository(ctx context.Context) persistence.ConversationRepository {
	db, _ := u.session(ctx)
	return repository.NewConversationRepository(db, u.logger)
}

// GetImageRepository returns an image repository in the current transaction
func (u *UnitOfWork) GetImageRepository(ctx context.Context) persistence.ImageRepository {
	db, _ := u.session(ctx)
	return repository.NewImageRepository(db, u.logger)
}

// GetPackageRepository returns a package repository
func (u *UnitOfWork) GetPackageRepository(ctx context.Context) persistence.PackageRepository {
	db, _ := u.session(ctx)
	return repository.NewPackageRepository(db, u.logger)
}

// GetPaymentEventRepository returns a payment event repository in the current transaction
func (u *UnitOfWork) GetPaymentEventRepository(ctx context.Context) persistence.PaymentEventRepository {
	db, _ := u.session(ctx)
	return repository.NewPaymentEventRepository(db, u.logger)
}

// GetReservationRepository returns a reservation repository in the current transaction
func (u *UnitOfWork) GetReservationRepository(ctx context.Context) persistence.ReservationRepository {
	db, _ := u.session(ctx)
	return repository.NewReservationRepository(db, u.logger)
}
