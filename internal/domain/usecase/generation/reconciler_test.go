package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/pricing"
	mockcore "github.com/amirhossein-jamali/companion-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/companion-ledger/mocks/port/persistence"
	mockusecase "github.com/amirhossein-jamali/companion-ledger/mocks/port/usecase"
)

func clockAt(t *testing.T, now time.Time) *mockcore.MockTimeProvider {
	t.Helper()
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	return clock
}

func TestReconcilerSweep(t *testing.T) {
	ctx := context.Background()
	later := fixedTime.Add(time.Hour)

	t.Run("Orphaned reservation is refunded once", func(t *testing.T) {
		// Arrange
		f := newFixture(t, pricing.DefaultConfig())
		f.seed(t, "acct_1", 0)
		// the process stopped after the debit committed
		_, err := f.ledger.Debit(ctx, "acct_1", 7, "image interrupted by a restart", "rsv_orphan")
		require.NoError(t, err)
		rec := NewReconciler(f.uow, f.ledger, clockAt(t, later), f.logger, ReconcilerConfig{After: 15 * time.Minute})

		// Act
		refunded, err := rec.Sweep(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, refunded)
		acct := f.account(t, "acct_1")
		assert.Equal(t, int64(50), acct.Balance())
		assert.Equal(t, int64(7), acct.LifetimeSpend())
		assert.Equal(t, []entity.TransactionKind{entity.KindSignupBonus, entity.KindUsage, entity.KindRefund}, f.kinds(t, "acct_1"))

		refund, err := f.uow.GetTransactionRepository(ctx).FindByReference(ctx, entity.KindRefund, "rsv_orphan")
		require.NoError(t, err)
		assert.Equal(t, int64(7), refund.Amount)

		again, err := rec.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, again)
		assert.Len(t, f.kinds(t, "acct_1"), 3)
	})

	t.Run("Delivered and refunded reservations are left alone", func(t *testing.T) {
		f := newFixture(t, pricing.DefaultConfig())
		persona := f.seed(t, "acct_1", 0)
		f.responder.EXPECT().Reply(mock.Anything, mock.Anything, mock.Anything).Return("hi", nil).Once()
		f.responder.EXPECT().Reply(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("down")).Once()

		_, err := f.svc.SendMessage(ctx, "acct_1", persona.ID, "first")
		require.NoError(t, err)
		_, err = f.svc.SendMessage(ctx, "acct_1", persona.ID, "second")
		require.Error(t, err)

		// the persona and its turns are gone, the delivery record is not
		require.NoError(t, f.uow.GetPersonaRepository(ctx).Delete(ctx, "acct_1", persona.ID))

		rec := NewReconciler(f.uow, f.ledger, clockAt(t, later), f.logger, ReconcilerConfig{After: 15 * time.Minute})
		refunded, err := rec.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, refunded)
		assert.Equal(t, int64(49), f.account(t, "acct_1").Balance())
	})

	t.Run("Recent reservation may still be in flight", func(t *testing.T) {
		f := newFixture(t, pricing.DefaultConfig())
		f.seed(t, "acct_1", 0)
		_, err := f.ledger.Debit(ctx, "acct_1", 7, "image in progress", "rsv_recent")
		require.NoError(t, err)

		rec := NewReconciler(f.uow, f.ledger, clockAt(t, fixedTime.Add(5*time.Minute)), f.logger, ReconcilerConfig{After: 15 * time.Minute})
		refunded, err := rec.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, refunded)
		assert.Equal(t, int64(43), f.account(t, "acct_1").Balance())
	})

	t.Run("Sweep pages through every batch", func(t *testing.T) {
		f := newFixture(t, pricing.DefaultConfig())
		f.seed(t, "acct_1", 0)
		for _, ref := range []string{"rsv_a", "rsv_b", "rsv_c", "rsv_d", "rsv_e"} {
			_, err := f.ledger.Debit(ctx, "acct_1", 1, "message", ref)
			require.NoError(t, err)
		}

		rec := NewReconciler(f.uow, f.ledger, clockAt(t, later), f.logger, ReconcilerConfig{After: time.Minute, Batch: 2})
		refunded, err := rec.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 5, refunded)
		assert.Equal(t, int64(50), f.account(t, "acct_1").Balance())
		assert.Empty(t, f.unsettled(t))
	})

	t.Run("Failed refund is logged and left for the next sweep", func(t *testing.T) {
		// Arrange
		entry := &entity.Transaction{ID: "txn_1", AccountID: "acct_1", Amount: -7, Kind: entity.KindUsage, Reference: "rsv_x", CreatedAt: fixedTime}

		reservations := mockpersistence.NewMockReservationRepository(t)
		reservations.EXPECT().ListUnsettled(mock.Anything, later.Add(-15*time.Minute), 100).
			Return([]*entity.Transaction{entry}, nil).Once()
		uow := mockpersistence.NewMockUnitOfWork(t)
		uow.EXPECT().GetReservationRepository(mock.Anything).Return(reservations).Once()

		ledgerMock := mockusecase.NewMockLedgerUseCase(t)
		ledgerMock.EXPECT().Refund(mock.Anything, "acct_1", int64(7), mock.Anything, "rsv_x").
			Return(nil, errors.New("database unavailable")).Once()

		logger := mockcore.NewMockLogger(t)
		logger.EXPECT().Error("Failed to refund unsettled reservation", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["reservation_id"] == "rsv_x"
		})).Once()

		rec := NewReconciler(uow, ledgerMock, clockAt(t, later), logger, ReconcilerConfig{})

		// Act
		refunded, err := rec.Sweep(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, refunded)
	})

	t.Run("Listing failure is returned", func(t *testing.T) {
		reservations := mockpersistence.NewMockReservationRepository(t)
		reservations.EXPECT().ListUnsettled(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()
		uow := mockpersistence.NewMockUnitOfWork(t)
		uow.EXPECT().GetReservationRepository(mock.Anything).Return(reservations).Once()

		rec := NewReconciler(uow, mockusecase.NewMockLedgerUseCase(t), clockAt(t, later), mockcore.NewMockLogger(t), ReconcilerConfig{})
		_, err := rec.Sweep(ctx)

		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestReconcilerStartStop(t *testing.T) {
	// Arrange
	f := newFixture(t, pricing.DefaultConfig())
	persona := f.seed(t, "acct_1", 0)
	f.images.EXPECT().Generate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, gateway.ImageRequest) (string, error) {
			// a stuck debit, as if the compensation never ran
			_, err := f.ledger.Debit(context.Background(), "acct_1", 3, "lost request", "rsv_lost")
			require.NoError(t, err)
			return "https://fal.media/ok.jpg", nil
		}).Once()
	_, err := f.svc.GenerateImage(context.Background(), "acct_1", persona.ID, "portrait", 0)
	require.NoError(t, err)
	require.Equal(t, int64(50-7-3), f.account(t, "acct_1").Balance())

	rec := NewReconciler(f.uow, f.ledger, clockAt(t, fixedTime.Add(time.Hour)), f.logger, ReconcilerConfig{
		After:    time.Minute,
		Interval: 10 * time.Millisecond,
	})

	// Act
	rec.Start(context.Background())
	defer rec.Stop()

	// Assert
	require.Eventually(t, func() bool {
		return f.account(t, "acct_1").Balance() == 50-7
	}, time.Second, 10*time.Millisecond)

	rec.Stop()
	rec.Stop()
	assert.Equal(t, []entity.TransactionKind{
		entity.KindSignupBonus, entity.KindUsage, entity.KindUsage, entity.KindRefund,
	}, f.kinds(t, "acct_1"))
}
