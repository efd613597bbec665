package usecase

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// PersonaUseCase manages personas and their read-only history and gallery
type PersonaUseCase interface {
	Create(ctx context.Context, accountID string, in entity.PersonaInput) (*entity.Persona, error)
	List(ctx context.Context, accountID string) ([]*entity.Persona, error)
	Get(ctx context.Context, accountID, personaID string) (*entity.Persona, error)
	Delete(ctx context.Context, accountID, personaID string) error

	// History returns conversation turns oldest first
	History(ctx context.Context, accountID, personaID string, page entity.Page) ([]*entity.ConversationTurn, error)

	// Gallery returns delivered images newest first, optionally for one persona
	Gallery(ctx context.Context, accountID, personaID string, page entity.Page) ([]*entity.GeneratedImage, error)

	ToggleLike(ctx context.Context, accountID, imageID string) (bool, error)
}
