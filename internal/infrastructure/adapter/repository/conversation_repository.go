package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

// ConversationRepository implements ConversationRepository using GORM
type ConversationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewConversationRepository creates a new ConversationRepository instance
func NewConversationRepository(db *gorm.DB, logger coreport.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, logger: logger, errorClassifier: NewErrorClassifier()}
}

// Append stores a turn
func (r *ConversationRepository) Append(ctx context.Context, turn *entity.ConversationTurn) error {
	if err := r.db.WithContext(ctx).Create(model.FromTurn(turn)).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "appending turn", err, errorMapping{}, map[string]any{
			"persona_id": turn.PersonaID,
			"turn_id":    turn.ID,
		})
	}
	return nil
}

func (r *ConversationRepository) find(ctx context.Context, personaID string, order string, limit, offset int) ([]*entity.ConversationTurn, error) {
	var rows []model.ConversationTurn
	err := r.db.WithContext(ctx).
		Where("persona_id = ?", personaID).
		Order("created_at " + order).Order("id " + order).
		Scopes(paginate(limit, offset)).
		Find(&rows).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing turns", err, errorMapping{}, map[string]any{"persona_id": personaID})
	}

	out := make([]*entity.ConversationTurn, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// ListRecent returns the last limit turns, oldest first
func (r *ConversationRepository) ListRecent(ctx context.Context, personaID string, limit int) ([]*entity.ConversationTurn, error) {
	turns, err := r.find(ctx, personaID, "DESC", limit, 0)
	if err != nil {
		return nil, err
	}
	slices.Reverse(turns)
	return turns, nil
}

// ListPage returns a page of the conversation, oldest first
func (r *ConversationRepository) ListPage(ctx context.Context, personaID string, page entity.Page) ([]*entity.ConversationTurn, error) {
	return r.find(ctx, personaID, "ASC", page.Limit, page.Offset)
}
