package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

var personaErrors = errorMapping{notFound: errs.ErrPersonaNotFound, duplicate: errs.ErrDuplicateEntry}

// PersonaRepository implements PersonaRepository using GORM
type PersonaRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPersonaRepository creates a new PersonaRepository instance
func NewPersonaRepository(db *gorm.DB, logger coreport.Logger) *PersonaRepository {
	return &PersonaRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

func (r *PersonaRepository) fail(operation string, err error, personaID string) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, personaErrors, map[string]any{"persona_id": personaID})
}

// Create saves a new persona
func (r *PersonaRepository) Create(ctx context.Context, persona *entity.Persona) error {
	if err := r.db.WithContext(ctx).Create(model.FromPersona(persona)).Error; err != nil {
		return r.fail("creating persona", err, persona.ID)
	}
	return nil
}

// GetOwned returns the persona only when accountID owns it
func (r *PersonaRepository) GetOwned(ctx context.Context, accountID, personaID string) (*entity.Persona, error) {
	var row model.Persona
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", personaID, accountID).
		First(&row).Error
	if err != nil {
		return nil, r.fail("getting persona", err, personaID)
	}
	return row.ToEntity(), nil
}

// ListByAccount returns the account's personas, newest first
func (r *PersonaRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Persona, error) {
	var rows []model.Persona
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.fail("listing personas", err, "")
	}

	out := make([]*entity.Persona, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// Delete removes an owned persona with its turns and images
func (r *PersonaRepository) Delete(ctx context.Context, accountID, personaID string) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.Persona{}).Where("id = ? AND account_id = ?", personaID, accountID).Count(&count).Error; err != nil {
		return r.fail("checking persona owner", err, personaID)
	}
	if count == 0 {
		return errs.ErrPersonaNotFound
	}

	if err := db.Where("persona_id = ?", personaID).Delete(&model.GeneratedImage{}).Error; err != nil {
		return r.fail("deleting images", err, personaID)
	}
	if err := db.Where("persona_id = ?", personaID).Delete(&model.ConversationTurn{}).Error; err != nil {
		return r.fail("deleting turns", err, personaID)
	}
	if err := db.Where("id = ?", personaID).Delete(&model.Persona{}).Error; err != nil {
		return r.fail("deleting persona", err, personaID)
	}
	return nil
}

// IncrementImageCount bumps the delivered image counter
func (r *PersonaRepository) IncrementImageCount(ctx context.Context, personaID string) error {
	result := r.db.WithContext(ctx).Model(&model.Persona{}).
		Where("id = ?", personaID).
		UpdateColumn("images_generated", gorm.Expr("images_generated + ?", 1))
	if result.Error != nil {
		return r.fail("incrementing image count", result.Error, personaID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPersonaNotFound
	}
	return nil
}
