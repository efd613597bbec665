package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

// ReservationRepository implements ReservationRepository using GORM.
// A reservation is the reference shared by a usage entry and its refund.
type ReservationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReservationRepository creates a new ReservationRepository instance
func NewReservationRepository(db *gorm.DB, logger coreport.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// MarkFulfilled records a delivered reservation
func (r *ReservationRepository) MarkFulfilled(ctx context.Context, fulfillment *entity.Fulfillment) error {
	err := r.db.WithContext(ctx).Create(model.FromFulfillment(fulfillment)).Error
	if err == nil {
		return nil
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEntry
	}
	return handleDatabaseError(r.logger, r.errorClassifier, "marking reservation fulfilled", err, errorMapping{}, map[string]any{
		"reservation_id": fulfillment.ReservationID,
	})
}

// ListUnsettled returns usage entries older than before with neither a refund nor a fulfillment
func (r *ReservationRepository) ListUnsettled(ctx context.Context, before time.Time, limit int) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("transactions.kind = ? AND transactions.reference <> '' AND transactions.created_at < ?", string(entity.KindUsage), before).
		Where("NOT EXISTS (SELECT 1 FROM transactions refunds WHERE refunds.kind = ? AND refunds.reference = transactions.reference)",
			string(entity.KindRefund)).
		Where("NOT EXISTS (SELECT 1 FROM fulfillments WHERE fulfillments.reservation_id = transactions.reference)").
		Order("transactions.created_at ASC").Order("transactions.id ASC").
		Scopes(paginate(limit, 0)).
		Find(&rows).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing unsettled reservations", err, errorMapping{}, nil)
	}

	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}
