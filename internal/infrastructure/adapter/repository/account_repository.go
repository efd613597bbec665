package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

var accountErrors = errorMapping{notFound: errs.ErrAccountNotFound, duplicate: errs.ErrDuplicateAccount}

// Options describe the session a repository is bound to
type Options struct {
	InTransaction bool // The db handle is an open transaction
	RowLocking    bool // The dialect supports SELECT ... FOR UPDATE
}

// AccountRepository implements AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	opts            Options
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger, opts Options) *AccountRepository {
	return &AccountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		opts:            opts,
	}
}

func (r *AccountRepository) fail(operation string, err error, accountID string) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, accountErrors, map[string]any{"account_id": accountID})
}

// Create saves a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(model.FromAccount(account)).Error; err != nil {
		return r.fail("creating account", err, account.ID)
	}
	return nil
}

func (r *AccountRepository) first(ctx context.Context, lock bool, query string, arg any) (*entity.Account, error) {
	db := r.db.WithContext(ctx)
	if lock && r.opts.RowLocking {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row model.Account
	if err := db.Where(query, arg).First(&row).Error; err != nil {
		return nil, r.fail("getting account", err, "")
	}
	return row.ToEntity(), nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.first(ctx, false, "id = ?", id)
}

// GetByIDForUpdate retrieves an account and locks its row until the transaction ends.
// sqlite serializes writers itself, so no lock clause is emitted there.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Account, error) {
	if !r.opts.InTransaction {
		return nil, errs.ErrNoTransaction
	}
	return r.first(ctx, true, "id = ?", id)
}

// GetByEmail retrieves an account by normalized email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.first(ctx, false, "email = ?", entity.NormalizeEmail(email))
}

// GetByUsername retrieves an account by username
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.first(ctx, false, "username = ?", username)
}

// UpdateLedgerState persists balance, lifetime spend and level
func (r *AccountRepository) UpdateLedgerState(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"balance":        account.Balance(),
			"lifetime_spend": account.LifetimeSpend(),
			"level":          account.Level,
			"updated_at":     account.UpdatedAt,
		})

	if result.Error != nil {
		return r.fail("updating ledger state", result.Error, account.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// Delete removes the account and everything it owns. Children are deleted
// explicitly because sqlite does not enforce foreign keys by default.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	personas := db.Model(&model.Persona{}).Select("id").Where("account_id = ?", id)

	steps := []struct {
		what string
		run  func() error
	}{
		{"deleting images", func() error { return db.Where("account_id = ?", id).Delete(&model.GeneratedImage{}).Error }},
		{"deleting turns", func() error { return db.Where("persona_id IN (?)", personas).Delete(&model.ConversationTurn{}).Error }},
		{"deleting personas", func() error { return db.Where("account_id = ?", id).Delete(&model.Persona{}).Error }},
		{"deleting fulfillments", func() error { return db.Where("account_id = ?", id).Delete(&model.Fulfillment{}).Error }},
		{"deleting transactions", func() error { return db.Where("account_id = ?", id).Delete(&model.Transaction{}).Error }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return r.fail(step.what, err, id)
		}
	}

	result := db.Where("id = ?", id).Delete(&model.Account{})
	if result.Error != nil {
		return r.fail("deleting account", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}
