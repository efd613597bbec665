package persistence

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// ConversationRepository stores the append-only conversation turns of a persona
type ConversationRepository interface {
	// Append saves a turn
	Append(ctx context.Context, turn *entity.ConversationTurn) error

	// ListRecent returns the last limit turns, oldest first
	ListRecent(ctx context.Context, personaID string, limit int) ([]*entity.ConversationTurn, error)

	// ListPage returns turns in ascending time order
	ListPage(ctx context.Context, personaID string, page entity.Page) ([]*entity.ConversationTurn, error)
}
