package account

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
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	mockcore "github.com/amirhossein-jamali/companion-ledger/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/companion-ledger/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/companion-ledger/mocks/port/persistence"
	mockusecase "github.com/amirhossein-jamali/companion-ledger/mocks/port/usecase"
)

type mocks struct {
	uow      *mockpersistence.MockUnitOfWork
	accounts *mockpersistence.MockAccountRepository
	personas *mockpersistence.MockPersonaRepository
	ledger   *mockusecase.MockLedgerUseCase
	hasher   *mockgateway.MockPasswordHasher
	tokens   *mockgateway.MockTokenIssuer
	ids      *mockcore.MockIDGenerator
	time     *mockcore.MockTimeProvider
	logger   *mockcore.MockLogger
}

func setup(t *testing.T) (*AccountUseCase, *mocks) {
	m := &mocks{
		uow:      mockpersistence.NewMockUnitOfWork(t),
		accounts: mockpersistence.NewMockAccountRepository(t),
		personas: mockpersistence.NewMockPersonaRepository(t),
		ledger:   mockusecase.NewMockLedgerUseCase(t),
		hasher:   mockgateway.NewMockPasswordHasher(t),
		tokens:   mockgateway.NewMockTokenIssuer(t),
		ids:      mockcore.NewMockIDGenerator(t),
		time:     mockcore.NewMockTimeProvider(t),
		logger:   mockcore.NewMockLogger(t),
	}
	m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(m.accounts).Maybe()
	m.uow.EXPECT().GetPersonaRepository(mock.Anything).Return(m.personas).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	uc := NewAccountUseCase(m.uow, m.ledger, m.hasher, m.tokens, m.ids, m.time, m.logger, 0)
	return uc, m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	expiry := fixedTime.Add(30 * 24 * time.Hour)
	input := usecase.RegisterInput{Email: " Mia@Example.com", Username: "mia", Password: "secret1"}

	t.Run("Successful registration", func(t *testing.T) {
		// Arrange
		uc, m := setup(t)
		m.accounts.EXPECT().GetByEmail(mock.Anything, "mia@example.com").Return(nil, errs.ErrAccountNotFound).Once()
		m.accounts.EXPECT().GetByUsername(mock.Anything, "mia").Return(nil, errs.ErrAccountNotFound).Once()
		m.hasher.EXPECT().Hash("secret1").Return("$2a$hash", nil).Once()
		m.ids.EXPECT().NewID("acct").Return("acct_01").Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.ledger.EXPECT().OpenAccount(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == "acct_01" && a.Email == "mia@example.com" && a.PasswordHash == "$2a$hash"
		})).RunAndReturn(func(_ context.Context, a *entity.Account) (*entity.Account, error) {
			require.NoError(t, a.Credit(50, fixedTime))
			return a, nil
		}).Once()
		m.tokens.EXPECT().Issue("acct_01").Return("jwt-token", expiry, nil).Once()

		// Act
		res, err := uc.Register(ctx, input)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", res.Token)
		assert.Equal(t, expiry, res.ExpiresAt)
		assert.Equal(t, int64(50), res.Account.Balance())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		uc, m := setup(t)
		existing := entity.RestoreAccount("acct_00", "mia@example.com", "other", "", 0, 0, 1, fixedTime, fixedTime)
		m.accounts.EXPECT().GetByEmail(mock.Anything, "mia@example.com").Return(existing, nil).Once()

		res, err := uc.Register(ctx, input)

		assert.Nil(t, res)
		assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
		assert.Equal(t, errs.CodeDuplicateAccount, errs.ErrorCode(err))
	})

	t.Run("Invalid input never reaches the store", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.Register(ctx, usecase.RegisterInput{Email: "mia@example.com", Username: "mia", Password: "123"})

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	acct := entity.RestoreAccount("acct_01", "mia@example.com", "mia", "$2a$hash", 50, 0, 1, now, now)

	t.Run("Valid credentials", func(t *testing.T) {
		uc, m := setup(t)
		m.accounts.EXPECT().GetByEmail(mock.Anything, "mia@example.com").Return(acct, nil).Once()
		m.hasher.EXPECT().Compare("$2a$hash", "secret1").Return(nil).Once()
		m.tokens.EXPECT().Issue("acct_01").Return("jwt", now, nil).Once()

		res, err := uc.Login(ctx, "MIA@example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "jwt", res.Token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		uc, m := setup(t)
		m.accounts.EXPECT().GetByEmail(mock.Anything, "mia@example.com").Return(acct, nil).Once()
		m.hasher.EXPECT().Compare("$2a$hash", "nope").Return(errors.New("mismatch")).Once()

		_, err := uc.Login(ctx, "mia@example.com", "nope")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("Unknown email", func(t *testing.T) {
		uc, m := setup(t)
		m.accounts.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrAccountNotFound).Once()

		_, err := uc.Login(ctx, "ghost@example.com", "secret1")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Valid token", func(t *testing.T) {
		uc, m := setup(t)
		m.tokens.EXPECT().Resolve("good").Return("acct_01", nil).Once()
		m.accounts.EXPECT().GetByID(mock.Anything, "acct_01").
			Return(entity.RestoreAccount("acct_01", "", "", "", 0, 0, 1, now, now), nil).Once()

		id, err := uc.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, "acct_01", id)
	})

	t.Run("Bad token", func(t *testing.T) {
		uc, m := setup(t)
		m.tokens.EXPECT().Resolve("bad").Return("", errs.ErrInvalidToken).Once()

		_, err := uc.Authenticate(ctx, "bad")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Token of a deleted account", func(t *testing.T) {
		uc, m := setup(t)
		m.tokens.EXPECT().Resolve("stale").Return("acct_gone", nil).Once()
		m.accounts.EXPECT().GetByID(mock.Anything, "acct_gone").Return(nil, errs.ErrAccountNotFound).Once()

		_, err := uc.Authenticate(ctx, "stale")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}

func TestMe(t *testing.T) {
	uc, m := setup(t)
	m.ledger.EXPECT().Summary(mock.Anything, "acct_01").
		Return(&usecase.AccountSummary{AccountID: "acct_01", Balance: 42, Level: 1, UnlockTier: 1}, nil).Once()
	m.personas.EXPECT().ListByAccount(mock.Anything, "acct_01").
		Return([]*entity.Persona{{ID: "prs_1"}, {ID: "prs_2"}}, nil).Once()

	summary, err := uc.Me(context.Background(), "acct_01")

	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.Balance)
	assert.Equal(t, 2, summary.Personas)
}

func TestDelete(t *testing.T) {
	t.Run("Committed on success", func(t *testing.T) {
		uc, m := setup(t)
		m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) { return ctx, nil }).Once()
		m.accounts.EXPECT().Delete(mock.Anything, "acct_01").Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		assert.NoError(t, uc.Delete(context.Background(), "acct_01"))
	})

	t.Run("Rolled back on failure", func(t *testing.T) {
		uc, m := setup(t)
		m.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) { return ctx, nil }).Once()
		m.accounts.EXPECT().Delete(mock.Anything, "acct_01").Return(errs.ErrAccountNotFound).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		err := uc.Delete(context.Background(), "acct_01")

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
