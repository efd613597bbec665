package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/logger"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func setupUnitOfWork(t *testing.T) persistence.UnitOfWork {
	t.Helper()
	return database.NewTestDBManager(t, logger.NewNoopLogger()).UnitOfWork()
}

func seedAccount(t *testing.T, uow persistence.UnitOfWork, id, email, username string, balance int64) *entity.Account {
	t.Helper()
	ctx := context.Background()
	a, err := entity.NewAccount(id, email, username, "hash", balance, baseTime)
	require.NoError(t, err)
	require.NoError(t, uow.GetAccountRepository(ctx).Create(ctx, a))
	return a
}

func seedPersona(t *testing.T, uow persistence.UnitOfWork, id, accountID string) *entity.Persona {
	t.Helper()
	ctx := context.Background()
	p, err := entity.NewPersona(id, accountID, entity.PersonaInput{Name: "Mia", Age: 25}, baseTime)
	require.NoError(t, err)
	require.NoError(t, uow.GetPersonaRepository(ctx).Create(ctx, p))
	return p
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and lookups", func(t *testing.T) {
		// Arrange
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "Alice@Example.com", "alice", 50)
		repo := uow.GetAccountRepository(ctx)

		// Act
		byID, errID := repo.GetByID(ctx, "acct_1")
		byEmail, errEmail := repo.GetByEmail(ctx, " ALICE@example.com ")
		byName, errName := repo.GetByUsername(ctx, "alice")

		// Assert
		require.NoError(t, errID)
		require.NoError(t, errEmail)
		require.NoError(t, errName)
		assert.Equal(t, "alice@example.com", byID.Email)
		assert.Equal(t, int64(50), byID.Balance())
		assert.Equal(t, 1, byID.Level)
		assert.Equal(t, "acct_1", byEmail.ID)
		assert.Equal(t, "acct_1", byName.ID)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)

		dup, err := entity.NewAccount("acct_2", "a@x.io", "bob", "hash", 0, baseTime)
		require.NoError(t, err)

		err = uow.GetAccountRepository(ctx).Create(ctx, dup)
		assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
	})

	t.Run("Not found", func(t *testing.T) {
		uow := setupUnitOfWork(t)

		_, err := uow.GetAccountRepository(ctx).GetByID(ctx, "acct_missing")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Locking read requires a transaction", func(t *testing.T) {
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)

		_, err := uow.GetAccountRepository(ctx).GetByIDForUpdate(ctx, "acct_1")
		assert.ErrorIs(t, err, errs.ErrNoTransaction)
	})

	t.Run("Update ledger state", func(t *testing.T) {
		// Arrange
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 100)

		// Act
		err := persistence.Transact(ctx, uow, func(txCtx context.Context) error {
			repo := uow.GetAccountRepository(txCtx)
			a, err := repo.GetByIDForUpdate(txCtx, "acct_1")
			if err != nil {
				return err
			}
			if err := a.Debit(30, baseTime.Add(time.Minute)); err != nil {
				return err
			}
			a.Level = 2
			return repo.UpdateLedgerState(txCtx, a)
		})

		// Assert
		require.NoError(t, err)
		a, err := uow.GetAccountRepository(ctx).GetByID(ctx, "acct_1")
		require.NoError(t, err)
		assert.Equal(t, int64(70), a.Balance())
		assert.Equal(t, int64(30), a.LifetimeSpend())
		assert.Equal(t, 2, a.Level)
	})

	t.Run("Delete cascades to owned records", func(t *testing.T) {
		// Arrange
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		seedPersona(t, uow, "prs_1", "acct_1")
		require.NoError(t, uow.GetConversationRepository(ctx).Append(ctx, entity.NewUserTurn("turn_1", "prs_1", "hi", baseTime)))
		txn, err := entity.NewTransaction("txn_1", "acct_1", entity.KindSignupBonus, 10, "bonus", "acct_1", 10, baseTime)
		require.NoError(t, err)
		require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, txn))
		require.NoError(t, uow.GetReservationRepository(ctx).MarkFulfilled(ctx, &entity.Fulfillment{
			ReservationID: "rsv_1", AccountID: "acct_1", Kind: "text", CreatedAt: baseTime,
		}))

		// Act
		err = uow.GetAccountRepository(ctx).Delete(ctx, "acct_1")

		// Assert
		require.NoError(t, err)
		_, err = uow.GetPersonaRepository(ctx).GetOwned(ctx, "acct_1", "prs_1")
		assert.ErrorIs(t, err, errs.ErrPersonaNotFound)
		sum, err := uow.GetTransactionRepository(ctx).SumByAccount(ctx, "acct_1")
		require.NoError(t, err)
		assert.Zero(t, sum)
		assert.ErrorIs(t, uow.GetAccountRepository(ctx).Delete(ctx, "acct_1"), errs.ErrAccountNotFound)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	newTxn := func(t *testing.T, id string, kind entity.TransactionKind, amount int64, reference string, at time.Time) *entity.Transaction {
		t.Helper()
		txn, err := entity.NewTransaction(id, "acct_1", kind, amount, string(kind), reference, 0, at)
		require.NoError(t, err)
		return txn
	}

	t.Run("Reference uniqueness per kind", func(t *testing.T) {
		// Arrange
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		repo := uow.GetTransactionRepository(ctx)
		require.NoError(t, repo.Create(ctx, newTxn(t, "txn_1", entity.KindPurchase, 100, "pi_1", baseTime)))

		// Act
		dupRef := repo.Create(ctx, newTxn(t, "txn_2", entity.KindPurchase, 100, "pi_1", baseTime))
		otherKind := repo.Create(ctx, newTxn(t, "txn_3", entity.KindRefund, 5, "pi_1", baseTime))
		dupID := repo.Create(ctx, newTxn(t, "txn_1", entity.KindUsage, 5, "", baseTime))

		// Assert
		assert.ErrorIs(t, dupRef, errs.ErrDuplicateTransaction)
		assert.NoError(t, otherKind)
		assert.ErrorIs(t, dupID, errs.ErrDuplicateEntry)
	})

	t.Run("Empty references never conflict", func(t *testing.T) {
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		repo := uow.GetTransactionRepository(ctx)

		require.NoError(t, repo.Create(ctx, newTxn(t, "txn_1", entity.KindUsage, 5, "", baseTime)))
		assert.NoError(t, repo.Create(ctx, newTxn(t, "txn_2", entity.KindUsage, 5, "", baseTime)))
	})

	t.Run("Find, list and sum", func(t *testing.T) {
		// Arrange
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		repo := uow.GetTransactionRepository(ctx)
		require.NoError(t, repo.Create(ctx, newTxn(t, "txn_1", entity.KindSignupBonus, 100, "acct_1", baseTime)))
		require.NoError(t, repo.Create(ctx, newTxn(t, "txn_2", entity.KindUsage, 30, "res_1", baseTime.Add(time.Second))))
		require.NoError(t, repo.Create(ctx, newTxn(t, "txn_3", entity.KindRefund, 30, "res_1", baseTime.Add(2*time.Second))))

		// Act
		found, findErr := repo.FindByReference(ctx, entity.KindUsage, "res_1")
		_, missingErr := repo.FindByReference(ctx, entity.KindPurchase, "res_1")
		all, listErr := repo.ListByAccount(ctx, "acct_1", entity.Page{})
		page, pageErr := repo.ListByAccount(ctx, "acct_1", entity.Page{Limit: 1, Offset: 1})
		sum, sumErr := repo.SumByAccount(ctx, "acct_1")

		// Assert
		require.NoError(t, findErr)
		assert.Equal(t, "txn_2", found.ID)
		assert.Equal(t, int64(-30), found.Amount)
		assert.ErrorIs(t, missingErr, errs.ErrTransactionNotFound)
		require.NoError(t, listErr)
		require.Len(t, all, 3)
		assert.Equal(t, "txn_3", all[0].ID)
		require.NoError(t, pageErr)
		require.Len(t, page, 1)
		assert.Equal(t, "txn_2", page[0].ID)
		require.NoError(t, sumErr)
		assert.Equal(t, int64(100), sum)
	})
}

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()

	usage := func(t *testing.T, id, reference string, at time.Time) *entity.Transaction {
		t.Helper()
		txn, err := entity.NewTransaction(id, "acct_1", entity.KindUsage, 7, "image", reference, 0, at)
		require.NoError(t, err)
		return txn
	}

	t.Run("Only reservations with neither delivery nor refund are unsettled", func(t *testing.T) {
		// Arrange
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		txns := uow.GetTransactionRepository(ctx)
		reservations := uow.GetReservationRepository(ctx)

		require.NoError(t, txns.Create(ctx, usage(t, "txn_1", "rsv_delivered", baseTime)))
		require.NoError(t, reservations.MarkFulfilled(ctx, &entity.Fulfillment{
			ReservationID: "rsv_delivered", AccountID: "acct_1", Kind: "image", CreatedAt: baseTime,
		}))

		require.NoError(t, txns.Create(ctx, usage(t, "txn_2", "rsv_refunded", baseTime)))
		refund, err := entity.NewTransaction("txn_3", "acct_1", entity.KindRefund, 7, "refund", "rsv_refunded", 0, baseTime)
		require.NoError(t, err)
		require.NoError(t, txns.Create(ctx, refund))

		require.NoError(t, txns.Create(ctx, usage(t, "txn_4", "rsv_orphan", baseTime.Add(time.Second))))
		require.NoError(t, txns.Create(ctx, usage(t, "txn_5", "rsv_older", baseTime)))
		require.NoError(t, txns.Create(ctx, usage(t, "txn_6", "", baseTime)))
		require.NoError(t, txns.Create(ctx, usage(t, "txn_7", "rsv_recent", baseTime.Add(time.Hour))))

		// Act
		unsettled, err := reservations.ListUnsettled(ctx, baseTime.Add(time.Minute), 10)
		limited, limitErr := reservations.ListUnsettled(ctx, baseTime.Add(time.Minute), 1)

		// Assert
		require.NoError(t, err)
		require.Len(t, unsettled, 2)
		assert.Equal(t, "rsv_older", unsettled[0].Reference)
		assert.Equal(t, "rsv_orphan", unsettled[1].Reference)
		assert.Equal(t, int64(-7), unsettled[1].Amount)
		require.NoError(t, limitErr)
		require.Len(t, limited, 1)
		assert.Equal(t, "rsv_older", limited[0].Reference)
	})

	t.Run("Delivery survives persona deletion", func(t *testing.T) {
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		seedPersona(t, uow, "prs_1", "acct_1")
		require.NoError(t, uow.GetTransactionRepository(ctx).Create(ctx, usage(t, "txn_1", "rsv_1", baseTime)))
		require.NoError(t, uow.GetReservationRepository(ctx).MarkFulfilled(ctx, &entity.Fulfillment{
			ReservationID: "rsv_1", AccountID: "acct_1", Kind: "text", CreatedAt: baseTime,
		}))

		require.NoError(t, uow.GetPersonaRepository(ctx).Delete(ctx, "acct_1", "prs_1"))
		unsettled, err := uow.GetReservationRepository(ctx).ListUnsettled(ctx, baseTime.Add(time.Hour), 10)

		require.NoError(t, err)
		assert.Empty(t, unsettled)
	})

	t.Run("A reservation is fulfilled once", func(t *testing.T) {
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		f := &entity.Fulfillment{ReservationID: "rsv_1", AccountID: "acct_1", Kind: "text", CreatedAt: baseTime}
		require.NoError(t, uow.GetReservationRepository(ctx).MarkFulfilled(ctx, f))

		err := uow.GetReservationRepository(ctx).MarkFulfilled(ctx, f)

		assert.ErrorIs(t, err, errs.ErrDuplicateEntry)
	})
}

func TestPersonaAndConversationRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("Ownership is enforced", func(t *testing.T) {
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		seedAccount(t, uow, "acct_2", "b@x.io", "bob", 0)
		seedPersona(t, uow, "prs_1", "acct_1")
		repo := uow.GetPersonaRepository(ctx)

		_, err := repo.GetOwned(ctx, "acct_2", "prs_1")
		assert.ErrorIs(t, err, errs.ErrPersonaNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "acct_2", "prs_1"), errs.ErrPersonaNotFound)

		list, err := repo.ListByAccount(ctx, "acct_1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Image count", func(t *testing.T) {
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		seedPersona(t, uow, "prs_1", "acct_1")
		repo := uow.GetPersonaRepository(ctx)

		require.NoError(t, repo.IncrementImageCount(ctx, "prs_1"))
		require.NoError(t, repo.IncrementImageCount(ctx, "prs_1"))

		p, err := repo.GetOwned(ctx, "acct_1", "prs_1")
		require.NoError(t, err)
		assert.Equal(t, 2, p.ImagesGenerated)
	})

	t.Run("Recent turns are returned oldest first", func(t *testing.T) {
		// Arrange
		uow := setupUnitOfWork(t)
		seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
		seedPersona(t, uow, "prs_1", "acct_1")
		turns := uow.GetConversationRepository(ctx)
		for i, content := range []string{"one", "two", "three", "four"} {
			turn := entity.NewUserTurn("turn_"+content, "prs_1", content, baseTime.Add(time.Duration(i)*time.Second))
			require.NoError(t, turns.Append(ctx, turn))
		}
		img := entity.NewImageTurn("turn_img", "prs_1", "beach", "https://cdn/x.png", 30, baseTime.Add(time.Minute))
		require.NoError(t, turns.Append(ctx, img))

		// Act
		recent, recentErr := turns.ListRecent(ctx, "prs_1", 3)
		page, pageErr := turns.ListPage(ctx, "prs_1", entity.Page{Limit: 2, Offset: 1})

		// Assert
		require.NoError(t, recentErr)
		require.Len(t, recent, 3)
		assert.Equal(t, "three", recent[0].Content)
		assert.Equal(t, "four", recent[1].Content)
		assert.True(t, recent[2].IsImage)
		assert.Equal(t, entity.ImagePlaceholder, recent[2].ContextContent())
		require.NoError(t, pageErr)
		require.Len(t, page, 2)
		assert.Equal(t, "two", page[0].Content)
		assert.Equal(t, "three", page[1].Content)
	})
}

func TestImageRepository(t *testing.T) {
	ctx := context.Background()
	uow := setupUnitOfWork(t)
	seedAccount(t, uow, "acct_1", "a@x.io", "alice", 0)
	seedAccount(t, uow, "acct_2", "b@x.io", "bob", 0)
	seedPersona(t, uow, "prs_1", "acct_1")
	seedPersona(t, uow, "prs_2", "acct_1")
	repo := uow.GetImageRepository(ctx)

	for i, personaID := range []string{"prs_1", "prs_2", "prs_1"} {
		require.NoError(t, repo.Create(ctx, &entity.GeneratedImage{
			ID:        "img_" + string(rune('a'+i)),
			AccountID: "acct_1",
			PersonaID: personaID,
			Prompt:    "beach",
			Cost:      30,
			URL:       "https://cdn/x.png",
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		}))
	}

	t.Run("Gallery filters and orders", func(t *testing.T) {
		all, err := repo.ListByAccount(ctx, "acct_1", "", entity.Page{Limit: 10})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "img_c", all[0].ID)

		one, err := repo.ListByAccount(ctx, "acct_1", "prs_2", entity.Page{Limit: 10})
		require.NoError(t, err)
		require.Len(t, one, 1)
		assert.Equal(t, "img_b", one[0].ID)
	})

	t.Run("Toggle like", func(t *testing.T) {
		liked, err := repo.ToggleLike(ctx, "acct_1", "img_a")
		require.NoError(t, err)
		assert.True(t, liked)

		liked, err = repo.ToggleLike(ctx, "acct_1", "img_a")
		require.NoError(t, err)
		assert.False(t, liked)

		_, err = repo.ToggleLike(ctx, "acct_2", "img_a")
		assert.ErrorIs(t, err, errs.ErrImageNotFound)
	})
}

func TestPaymentRepositories(t *testing.T) {
	ctx := context.Background()
	uow := setupUnitOfWork(t)

	t.Run("Seeded packages", func(t *testing.T) {
		packages, err := uow.GetPackageRepository(ctx).ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, packages, 5)
		assert.Equal(t, "starter", packages[0].ID)
		assert.Equal(t, "9.99", packages[0].PriceEUR.StringFixed(2))

		pkg, err := uow.GetPackageRepository(ctx).GetActive(ctx, "popular")
		require.NoError(t, err)
		assert.Equal(t, int64(660), pkg.TotalCredits())

		_, err = uow.GetPackageRepository(ctx).GetActive(ctx, "platinum")
		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
	})

	t.Run("Events are recorded once", func(t *testing.T) {
		event := &entity.PaymentEvent{
			ID:            "evt_1",
			Provider:      "stripe",
			Type:          "checkout.session.completed",
			CorrelationID: "pi_1",
			Payload:       []byte(`{"id":"evt_1"}`),
			ReceivedAt:    baseTime,
		}
		repo := uow.GetPaymentEventRepository(ctx)

		fresh, err := repo.Record(ctx, event)
		require.NoError(t, err)
		assert.True(t, fresh)

		fresh, err = repo.Record(ctx, event)
		require.NoError(t, err)
		assert.False(t, fresh)
	})
}
