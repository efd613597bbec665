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

// PackageRepository reads the credit package catalogue
type PackageRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPackageRepository creates a new PackageRepository instance
func NewPackageRepository(db *gorm.DB, logger coreport.Logger) *PackageRepository {
	return &PackageRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// ListActive returns active packages by sort order
func (r *PackageRepository) ListActive(ctx context.Context) ([]*entity.CreditPackage, error) {
	var rows []model.CreditPackage
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("sort_order ASC").Find(&rows).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing packages", err, errorMapping{}, nil)
	}

	out := make([]*entity.CreditPackage, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// GetActive returns an active package
func (r *PackageRepository) GetActive(ctx context.Context, id string) (*entity.CreditPackage, error) {
	var row model.CreditPackage
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&row).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting package", err,
			errorMapping{notFound: errs.ErrPackageNotFound}, map[string]any{"package_id": id})
	}
	return row.ToEntity(), nil
}

// PaymentEventRepository retains verified provider notifications
type PaymentEventRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentEventRepository creates a new PaymentEventRepository instance
func NewPaymentEventRepository(db *gorm.DB, logger coreport.Logger) *PaymentEventRepository {
	return &PaymentEventRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// Record stores the event and reports false when its id was already recorded
func (r *PaymentEventRepository) Record(ctx context.Context, event *entity.PaymentEvent) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(model.FromPaymentEvent(event))
	if result.Error != nil {
		return false, handleDatabaseError(r.logger, r.errorClassifier, "recording payment event", result.Error,
			errorMapping{}, map[string]any{"event_id": event.ID})
	}
	return result.RowsAffected > 0, nil
}
