package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

// ReferenceIndex enforces one ledger entry per (kind, reference)
const ReferenceIndex = "idx_transactions_kind_reference"

// TransactionRepository implements TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	err := r.db.WithContext(ctx).Create(model.FromTransaction(transaction)).Error
	if err == nil {
		return nil
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate ledger entry", map[string]any{
			"transaction_id": transaction.ID,
			"kind":           transaction.Kind,
			"reference":      transaction.Reference,
		})
		if isReferenceConflict(err) {
			return errs.ErrDuplicateTransaction
		}
		return errs.ErrDuplicateEntry
	}

	return handleDatabaseError(r.logger, r.errorClassifier, "creating transaction", err, errorMapping{}, map[string]any{
		"transaction_id": transaction.ID,
		"account_id":     transaction.AccountID,
	})
}

func isReferenceConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName == ReferenceIndex
	}
	msg := err.Error()
	return strings.Contains(msg, ReferenceIndex) || strings.Contains(msg, "transactions.reference")
}

// FindByReference returns the entry of a kind carrying the reference
func (r *TransactionRepository) FindByReference(ctx context.Context, kind entity.TransactionKind, reference string) (*entity.Transaction, error) {
	var row model.Transaction
	err := r.db.WithContext(ctx).
		Where("kind = ? AND reference = ?", string(kind), reference).
		First(&row).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "finding transaction", err,
			errorMapping{notFound: errs.ErrTransactionNotFound}, map[string]any{"reference": reference})
	}
	return row.ToEntity(), nil
}

// ListByAccount returns the account's entries, newest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, page entity.Page) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").Order("id DESC").
		Scopes(paginate(page.Limit, page.Offset)).
		Find(&rows).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing transactions", err, errorMapping{}, map[string]any{"account_id": accountID})
	}

	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// SumByAccount returns the signed sum of the account's entries
func (r *TransactionRepository) SumByAccount(ctx context.Context, accountID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("account_id = ?", accountID).
		Scan(&sum).Error
	if err != nil {
		return 0, handleDatabaseError(r.logger, r.errorClassifier, "summing transactions", err, errorMapping{}, map[string]any{"account_id": accountID})
	}
	return sum, nil
}
