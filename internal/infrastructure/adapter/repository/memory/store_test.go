package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
)

var fixedTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newAccount(t *testing.T, id, email, username string) *entity.Account {
	t.Helper()
	a, err := entity.NewAccount(id, email, username, "hash", 0, fixedTime)
	require.NoError(t, err)
	return a
}

func TestUnitOfWorkRollbackRestoresState(t *testing.T) {
	// Arrange
	ctx := context.Background()
	uow := NewUnitOfWork(NewStore())
	accounts := uow.GetAccountRepository(ctx)
	require.NoError(t, accounts.Create(ctx, newAccount(t, "acct_1", "a@x.io", "alice")))

	// Act
	failure := errors.New("boom")
	err := persistence.Transact(ctx, uow, func(txCtx context.Context) error {
		acct, err := uow.GetAccountRepository(txCtx).GetByIDForUpdate(txCtx, "acct_1")
		require.NoError(t, err)
		require.NoError(t, acct.Credit(100, fixedTime))
		require.NoError(t, uow.GetAccountRepository(txCtx).UpdateLedgerState(txCtx, acct))
		return failure
	})

	// Assert
	assert.ErrorIs(t, err, failure)
	acct, err := accounts.GetByID(ctx, "acct_1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), acct.Balance())
}

func TestUnitOfWorkRollbackOnPanic(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewStore())
	require.NoError(t, uow.GetAccountRepository(ctx).Create(ctx, newAccount(t, "acct_1", "a@x.io", "alice")))

	assert.Panics(t, func() {
		_ = persistence.Transact(ctx, uow, func(txCtx context.Context) error {
			require.NoError(t, uow.GetAccountRepository(txCtx).Delete(txCtx, "acct_1"))
			panic("fulfilment crashed")
		})
	})

	// the store lock was released and the delete undone
	_, err := uow.GetAccountRepository(ctx).GetByID(ctx, "acct_1")
	assert.NoError(t, err)
}

func TestUnitOfWorkErrors(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewStore())

	t.Run("Nested begin", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = uow.Rollback(txCtx) }()

		_, err = uow.Begin(txCtx)
		assert.ErrorIs(t, err, errs.ErrNestedTransaction)
	})

	t.Run("Commit without begin", func(t *testing.T) {
		assert.ErrorIs(t, uow.Commit(ctx), errs.ErrNoTransaction)
	})

	t.Run("Row lock outside a unit of work", func(t *testing.T) {
		_, err := uow.GetAccountRepository(ctx).GetByIDForUpdate(ctx, "acct_1")
		assert.ErrorIs(t, err, errs.ErrNoTransaction)
	})
}

func TestAccountUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitOfWork(NewStore()).GetAccountRepository(ctx)
	require.NoError(t, repo.Create(ctx, newAccount(t, "acct_1", "a@x.io", "alice")))

	err := repo.Create(ctx, newAccount(t, "acct_2", "A@X.io", "other"))
	assert.ErrorIs(t, err, errs.ErrDuplicateAccount)

	err = repo.Create(ctx, newAccount(t, "acct_3", "b@x.io", "alice"))
	assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
}

func TestTransactionReferenceIsUniquePerKind(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitOfWork(NewStore()).GetTransactionRepository(ctx)

	purchase, _ := entity.NewTransaction("txn_1", "acct_1", entity.KindPurchase, 100, "", "pi_1", 100, fixedTime)
	again, _ := entity.NewTransaction("txn_2", "acct_1", entity.KindPurchase, 100, "", "pi_1", 200, fixedTime)
	refund, _ := entity.NewTransaction("txn_3", "acct_1", entity.KindRefund, 100, "", "pi_1", 200, fixedTime)
	unreferenced, _ := entity.NewTransaction("txn_4", "acct_1", entity.KindUsage, 1, "", "", 199, fixedTime)
	unreferenced2, _ := entity.NewTransaction("txn_5", "acct_1", entity.KindUsage, 1, "", "", 198, fixedTime)

	require.NoError(t, repo.Create(ctx, purchase))
	assert.ErrorIs(t, repo.Create(ctx, again), errs.ErrDuplicateTransaction)
	assert.NoError(t, repo.Create(ctx, refund))
	assert.NoError(t, repo.Create(ctx, unreferenced))
	assert.NoError(t, repo.Create(ctx, unreferenced2))

	found, err := repo.FindByReference(ctx, entity.KindPurchase, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "txn_1", found.ID)

	list, err := repo.ListByAccount(ctx, "acct_1", entity.Page{Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "txn_5", list[0].ID)

	sum, err := repo.SumByAccount(ctx, "acct_1")
	require.NoError(t, err)
	assert.Equal(t, int64(198), sum)
}

func TestConversationOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitOfWork(NewStore()).GetConversationRepository(ctx)

	for i, content := range []string{"one", "two", "three", "four"} {
		turn := entity.NewUserTurn(content, "prs_1", content, fixedTime.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.Append(ctx, turn))
	}
	require.NoError(t, repo.Append(ctx, entity.NewUserTurn("x", "prs_2", "other persona", fixedTime)))

	recent, err := repo.ListRecent(ctx, "prs_1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "three", recent[0].Content)
	assert.Equal(t, "four", recent[1].Content)

	pageTwo, err := repo.ListPage(ctx, "prs_1", entity.Page{Limit: 3, Offset: 3})
	require.NoError(t, err)
	require.Len(t, pageTwo, 1)
	assert.Equal(t, "four", pageTwo[0].Content)
}

func TestAccountDeleteCascades(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewStore())
	require.NoError(t, uow.GetAccountRepository(ctx).Create(ctx, newAccount(t, "acct_1", "a@x.io", "alice")))

	persona, err := entity.NewPersona("prs_1", "acct_1", entity.PersonaInput{Name: "Ava"}, fixedTime)
	require.NoError(t, err)
	require.NoError(t, uow.GetPersonaRepository(ctx).Create(ctx, persona))
	require.NoError(t, uow.GetConversationRepository(ctx).Append(ctx, entity.NewUserTurn("msg_1", "prs_1", "hi", fixedTime)))
	require.NoError(t, uow.GetImageRepository(ctx).Create(ctx, &entity.GeneratedImage{ID: "img_1", AccountID: "acct_1", PersonaID: "prs_1"}))

	require.NoError(t, uow.GetAccountRepository(ctx).Delete(ctx, "acct_1"))

	_, err = uow.GetPersonaRepository(ctx).GetOwned(ctx, "acct_1", "prs_1")
	assert.ErrorIs(t, err, errs.ErrPersonaNotFound)
	turns, _ := uow.GetConversationRepository(ctx).ListRecent(ctx, "prs_1", 10)
	assert.Empty(t, turns)
	_, err = uow.GetImageRepository(ctx).ToggleLike(ctx, "acct_1", "img_1")
	assert.ErrorIs(t, err, errs.ErrImageNotFound)
}

func TestPaymentEventRecordedOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitOfWork(NewStore()).GetPaymentEventRepository(ctx)

	first, err := repo.Record(ctx, &entity.PaymentEvent{ID: "evt_1"})
	require.NoError(t, err)
	second, err := repo.Record(ctx, &entity.PaymentEvent{ID: "evt_1"})
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestPackagesAreSortedAndFiltered(t *testing.T) {
	ctx := context.Background()
	pkgs := entity.DefaultCreditPackages()
	pkgs[0].Active = false
	repo := NewUnitOfWork(NewStore(pkgs...)).GetPackageRepository(ctx)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 4)
	assert.Equal(t, "basic", active[0].ID)

	_, err = repo.GetActive(ctx, "starter")
	assert.ErrorIs(t, err, errs.ErrPackageNotFound)
}
