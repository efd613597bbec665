package usecase

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// MessageResult is the outcome of a paid text turn
type MessageResult struct {
	UserTurn *entity.ConversationTurn
	Reply    *entity.ConversationTurn
	Cost     int64
	Balance  int64
}

// ImageResult is the outcome of a paid image turn
type ImageResult struct {
	Image   *entity.GeneratedImage
	Turn    *entity.ConversationTurn
	Cost    int64
	Balance int64
}

// GenerationUseCase orchestrates paid generation: authorize, reserve, fulfil or compensate
type GenerationUseCase interface {
	// SendMessage charges the text cost and returns the persona's reply
	SendMessage(ctx context.Context, accountID, personaID, text string) (*MessageResult, error)

	// GenerateImage checks the unlock tier, charges the level cost and delivers an image
	GenerateImage(ctx context.Context, accountID, personaID, scenario string, level int) (*ImageResult, error)
}
