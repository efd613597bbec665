package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

var imageErrors = errorMapping{notFound: errs.ErrImageNotFound, duplicate: errs.ErrDuplicateEntry}

// ImageRepository implements ImageRepository using GORM
type ImageRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewImageRepository creates a new ImageRepository instance
func NewImageRepository(db *gorm.DB, logger coreport.Logger) *ImageRepository {
	return &ImageRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// Create stores a gallery record
func (r *ImageRepository) Create(ctx context.Context, image *entity.GeneratedImage) error {
	if err := r.db.WithContext(ctx).Create(model.FromImage(image)).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating image", err, imageErrors, map[string]any{"image_id": image.ID})
	}
	return nil
}

// ListByAccount returns the gallery, newest first. An empty personaID lists all personas.
func (r *ImageRepository) ListByAccount(ctx context.Context, accountID, personaID string, page entity.Page) ([]*entity.GeneratedImage, error) {
	db := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if personaID != "" {
		db = db.Where("persona_id = ?", personaID)
	}

	var rows []model.GeneratedImage
	err := db.Order("created_at DESC").Order("id DESC").
		Scopes(paginate(page.Limit, page.Offset)).
		Find(&rows).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing images", err, imageErrors, map[string]any{"account_id": accountID})
	}

	out := make([]*entity.GeneratedImage, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// ToggleLike flips the like flag of an image owned by accountID and returns the new value
func (r *ImageRepository) ToggleLike(ctx context.Context, accountID, imageID string) (bool, error) {
	db := r.db.WithContext(ctx)

	result := db.Model(&model.GeneratedImage{}).
		Where("id = ? AND account_id = ?", imageID, accountID).
		UpdateColumn("liked", gorm.Expr("NOT liked"))
	if result.Error != nil {
		return false, handleDatabaseError(r.logger, r.errorClassifier, "toggling like", result.Error, imageErrors, map[string]any{"image_id": imageID})
	}
	if result.RowsAffected == 0 {
		return false, errs.ErrImageNotFound
	}

	var row model.GeneratedImage
	if err := db.Select("liked").Where("id = ?", imageID).First(&row).Error; err != nil {
		return false, handleDatabaseError(r.logger, r.errorClassifier, "reading like", err, imageErrors, map[string]any{"image_id": imageID})
	}
	return row.Liked, nil
}
