package persona

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// Page bounds for history and gallery reads
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
	DefaultGalleryLimit = 20
	MaxGalleryLimit     = 100
)

// AvatarScenario is the scenario used for the free profile picture
const AvatarScenario = "close-up portrait, smiling, looking at camera, headshot"

// PersonaUseCase manages personas, their conversation history and gallery
type PersonaUseCase struct {
	uow           persistence.UnitOfWork
	avatars       gateway.ImageProvider
	ids           coreport.IDGenerator
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	avatarTimeout time.Duration
	seeds         func() int64
}

// NewPersonaUseCase creates a new persona use case. avatars may be nil, in
// which case personas are created without a profile picture.
func NewPersonaUseCase(
	uow persistence.UnitOfWork,
	avatars gateway.ImageProvider,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	avatarTimeout time.Duration,
) *PersonaUseCase {
	return &PersonaUseCase{
		uow:           uow,
		avatars:       avatars,
		ids:           ids,
		timeProvider:  timeProvider,
		logger:        logger,
		avatarTimeout: avatarTimeout,
		seeds: func() int64 {
			return rand.Int64N(entity.MaxPersonaSeed) + 1
		},
	}
}

var _ usecase.PersonaUseCase = (*PersonaUseCase)(nil)

// Create validates the input, assigns a seed when none is given and tries to
// generate a free avatar. Avatar failures never block creation.
func (u *PersonaUseCase) Create(ctx context.Context, accountID string, in entity.PersonaInput) (*entity.Persona, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.Seed == nil {
		seed := u.seeds()
		in.Seed = &seed
	}

	p, err := entity.NewPersona(u.ids.NewID(coreport.PrefixPersona), accountID, in, u.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	p.AvatarURL = u.avatar(ctx, p)

	if err := u.uow.GetPersonaRepository(ctx).Create(ctx, p); err != nil {
		return nil, err
	}

	u.logger.Info("Persona created", map[string]any{
		"account_id": accountID,
		"persona_id": p.ID,
		"has_avatar": p.AvatarURL != "",
	})
	return p, nil
}

func (u *PersonaUseCase) avatar(ctx context.Context, p *entity.Persona) string {
	if u.avatars == nil {
		return ""
	}

	callCtx, cancel := u.withTimeout(ctx)
	defer cancel()

	url, err := u.avatars.Generate(callCtx, gateway.ImageRequest{
		Visual:   p.Context().Appearance,
		Scenario: AvatarScenario,
		Level:    0,
		Seed:     p.Seed,
	})
	if err != nil {
		u.logger.Warn("Avatar generation failed", map[string]any{
			"persona_id": p.ID,
			"error":      err.Error(),
		})
		return ""
	}
	return url
}

func (u *PersonaUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.avatarTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return u.timeProvider.WithTimeout(ctx, coreport.Duration(u.avatarTimeout))
}

// List returns the account's personas, newest first
func (u *PersonaUseCase) List(ctx context.Context, accountID string) ([]*entity.Persona, error) {
	return u.uow.GetPersonaRepository(ctx).ListByAccount(ctx, accountID)
}

// Get returns one owned persona
func (u *PersonaUseCase) Get(ctx context.Context, accountID, personaID string) (*entity.Persona, error) {
	return u.uow.GetPersonaRepository(ctx).GetOwned(ctx, accountID, personaID)
}

// Delete removes an owned persona with its conversation and images
func (u *PersonaUseCase) Delete(ctx context.Context, accountID, personaID string) error {
	err := persistence.Transact(ctx, u.uow, func(txCtx context.Context) error {
		return u.uow.GetPersonaRepository(txCtx).Delete(txCtx, accountID, personaID)
	})
	if err != nil {
		return err
	}

	u.logger.Info("Persona deleted", map[string]any{
		"account_id": accountID,
		"persona_id": personaID,
	})
	return nil
}

// History returns the persona's conversation, oldest first
func (u *PersonaUseCase) History(ctx context.Context, accountID, personaID string, page entity.Page) ([]*entity.ConversationTurn, error) {
	if _, err := u.Get(ctx, accountID, personaID); err != nil {
		return nil, err
	}
	return u.uow.GetConversationRepository(ctx).ListPage(ctx, personaID, page.Normalize(DefaultHistoryLimit, MaxHistoryLimit))
}

// Gallery returns delivered images, newest first. An empty personaID covers all personas.
func (u *PersonaUseCase) Gallery(ctx context.Context, accountID, personaID string, page entity.Page) ([]*entity.GeneratedImage, error) {
	if personaID != "" {
		if _, err := u.Get(ctx, accountID, personaID); err != nil {
			return nil, err
		}
	}
	return u.uow.GetImageRepository(ctx).ListByAccount(ctx, accountID, personaID, page.Normalize(DefaultGalleryLimit, MaxGalleryLimit))
}

// ToggleLike flips the like flag of an owned image
func (u *PersonaUseCase) ToggleLike(ctx context.Context, accountID, imageID string) (bool, error) {
	return u.uow.GetImageRepository(ctx).ToggleLike(ctx, accountID, imageID)
}
