package persistence

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// ImageRepository stores delivered images
type ImageRepository interface {
	// Create saves a generated image
	Create(ctx context.Context, image *entity.GeneratedImage) error

	// ListByAccount returns the account's gallery, newest first.
	// An empty personaID lists images of every persona.
	ListByAccount(ctx context.Context, accountID, personaID string, page entity.Page) ([]*entity.GeneratedImage, error)

	// ToggleLike flips the liked flag of an owned image and returns the new value
	//
	// Possible errors:
	// - ErrImageNotFound: If the image doesn't exist or isn't owned by the account
	ToggleLike(ctx context.Context, accountID, imageID string) (bool, error)
}
