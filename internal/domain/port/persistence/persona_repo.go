package persistence

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// PersonaRepository defines methods to interact with persona data
type PersonaRepository interface {
	// Create saves a new persona
	Create(ctx context.Context, persona *entity.Persona) error

	// GetOwned retrieves a persona owned by the account.
	// A persona owned by someone else is reported as ErrPersonaNotFound.
	GetOwned(ctx context.Context, accountID, personaID string) (*entity.Persona, error)

	// ListByAccount returns the account's personas, newest first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.Persona, error)

	// Delete removes an owned persona with its turns and images
	//
	// Possible errors:
	// - ErrPersonaNotFound: If the persona doesn't exist or isn't owned by the account
	Delete(ctx context.Context, accountID, personaID string) error

	// IncrementImageCount increases the delivered image counter by one
	IncrementImageCount(ctx context.Context, personaID string) error
}
