package persona

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/repository/memory"
	mockcore "github.com/amirhossein-jamali/companion-ledger/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/companion-ledger/mocks/port/gateway"
)

var fixedTime = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T, avatars gateway.ImageProvider) (*PersonaUseCase, *memory.UnitOfWork) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockIDs := mockcore.NewMockIDGenerator(t)
	mockIDs.EXPECT().NewID("prs").Return("prs_01").Maybe()

	uow := memory.NewUnitOfWork(memory.NewStore())
	return NewPersonaUseCase(uow, avatars, mockIDs, mockTime, mockLogger, 0), uow
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Random seed and avatar", func(t *testing.T) {
		// Arrange
		avatars := mockgateway.NewMockImageProvider(t)
		uc, _ := setup(t, avatars)
		uc.seeds = func() int64 { return 4242 }
		avatars.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(req gateway.ImageRequest) bool {
			return req.Scenario == AvatarScenario && req.Visual == entity.DefaultPersonaAppearance &&
				req.Seed != nil && *req.Seed == 4242 && req.Level == 0
		})).Return("https://cdn/avatar.jpg", nil).Once()

		// Act
		p, err := uc.Create(ctx, "acct_1", entity.PersonaInput{Name: "Ava"})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, p.Seed)
		assert.Equal(t, int64(4242), *p.Seed)
		assert.Equal(t, "https://cdn/avatar.jpg", p.AvatarURL)

		stored, err := uc.Get(ctx, "acct_1", "prs_01")
		require.NoError(t, err)
		assert.Equal(t, "Ava", stored.Name)
	})

	t.Run("Avatar failure does not block creation", func(t *testing.T) {
		avatars := mockgateway.NewMockImageProvider(t)
		uc, _ := setup(t, avatars)
		avatars.EXPECT().Generate(mock.Anything, mock.Anything).Return("", errors.New("provider down")).Once()

		p, err := uc.Create(ctx, "acct_1", entity.PersonaInput{Name: "Ava"})

		require.NoError(t, err)
		assert.Empty(t, p.AvatarURL)
		assert.GreaterOrEqual(t, *p.Seed, int64(1))
		assert.LessOrEqual(t, *p.Seed, int64(entity.MaxPersonaSeed))
	})

	t.Run("Invalid input", func(t *testing.T) {
		uc, _ := setup(t, nil)

		_, err := uc.Create(ctx, "acct_1", entity.PersonaInput{Name: "Ava", Age: 12})

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestHistoryAndGalleryOwnership(t *testing.T) {
	ctx := context.Background()
	uc, uow := setup(t, nil)
	p, err := uc.Create(ctx, "acct_1", entity.PersonaInput{Name: "Ava"})
	require.NoError(t, err)

	for i := range 3 {
		turn := entity.NewUserTurn("msg_"+string(rune('a'+i)), p.ID, "hi", fixedTime.Add(time.Duration(i)*time.Minute))
		require.NoError(t, uow.GetConversationRepository(ctx).Append(ctx, turn))
	}
	require.NoError(t, uow.GetImageRepository(ctx).Create(ctx, &entity.GeneratedImage{ID: "img_1", AccountID: "acct_1", PersonaID: p.ID}))
	require.NoError(t, uow.GetImageRepository(ctx).Create(ctx, &entity.GeneratedImage{ID: "img_2", AccountID: "acct_1", PersonaID: p.ID}))

	t.Run("Owner reads history oldest first", func(t *testing.T) {
		turns, err := uc.History(ctx, "acct_1", p.ID, entity.Page{})
		require.NoError(t, err)
		require.Len(t, turns, 3)
		assert.Equal(t, "msg_a", turns[0].ID)
	})

	t.Run("Stranger gets not found", func(t *testing.T) {
		_, err := uc.History(ctx, "acct_2", p.ID, entity.Page{})
		assert.ErrorIs(t, err, errs.ErrPersonaNotFound)

		_, err = uc.Gallery(ctx, "acct_2", p.ID, entity.Page{})
		assert.ErrorIs(t, err, errs.ErrPersonaNotFound)

		_, err = uc.ToggleLike(ctx, "acct_2", "img_1")
		assert.ErrorIs(t, err, errs.ErrImageNotFound)
	})

	t.Run("Gallery newest first and like toggles", func(t *testing.T) {
		images, err := uc.Gallery(ctx, "acct_1", "", entity.Page{})
		require.NoError(t, err)
		require.Len(t, images, 2)
		assert.Equal(t, "img_2", images[0].ID)

		liked, err := uc.ToggleLike(ctx, "acct_1", "img_1")
		require.NoError(t, err)
		assert.True(t, liked)

		liked, err = uc.ToggleLike(ctx, "acct_1", "img_1")
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("Delete removes the conversation", func(t *testing.T) {
		require.NoError(t, uc.Delete(ctx, "acct_1", p.ID))

		_, err := uc.Get(ctx, "acct_1", p.ID)
		assert.ErrorIs(t, err, errs.ErrPersonaNotFound)
		assert.ErrorIs(t, uc.Delete(ctx, "acct_1", p.ID), errs.ErrPersonaNotFound)
	})
}
