package payment

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/pricing"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/repository/memory"
	mockcore "github.com/amirhossein-jamali/companion-ledger/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/companion-ledger/mocks/port/gateway"
)

var fixedTime = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

var urls = gateway.CheckoutURLs{Success: "https://app/success", Cancel: "https://app/cancel"}

type fixture struct {
	uc        *PaymentUseCase
	ledger    *ledger.Service
	processor *mockgateway.MockPaymentProcessor
	store     *memory.Store
}

func setup(t *testing.T) *fixture {
	t.Helper()

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	var seq atomic.Int64
	mockIDs := mockcore.NewMockIDGenerator(t)
	mockIDs.EXPECT().NewID(mock.Anything).RunAndReturn(func(prefix string) string {
		return fmt.Sprintf("%s_%04d", prefix, seq.Add(1))
	}).Maybe()

	mockMetrics := mockcore.NewMockMetrics(t)
	mockMetrics.EXPECT().LedgerOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()

	store := memory.NewStore(entity.DefaultCreditPackages()...)
	uow := memory.NewUnitOfWork(store)
	ledgerSvc := ledger.NewService(uow, pricing.Default(), mockIDs, mockTime, mockLogger, mockMetrics)
	processor := mockgateway.NewMockPaymentProcessor(t)

	return &fixture{
		uc:        NewPaymentUseCase(uow, ledgerSvc, processor, urls, mockTime, mockLogger),
		ledger:    ledgerSvc,
		processor: processor,
		store:     store,
	}
}

func (f *fixture) open(t *testing.T, id string) *entity.Account {
	t.Helper()
	acct, err := entity.NewAccount(id, id+"@example.com", "user-"+id, "hash", 0, fixedTime)
	require.NoError(t, err)
	opened, err := f.ledger.OpenAccount(context.Background(), acct)
	require.NoError(t, err)
	return opened
}

func purchaseEvent(id, accountID, correlationID string, credits int64) *entity.PaymentEvent {
	return &entity.PaymentEvent{
		ID:            id,
		Provider:      "stripe",
		Type:          "checkout.session.completed",
		AccountID:     accountID,
		PackageID:     "popular",
		Credits:       credits,
		CorrelationID: correlationID,
	}
}

func TestPackages(t *testing.T) {
	f := setup(t)

	packages, err := f.uc.Packages(context.Background())

	require.NoError(t, err)
	require.Len(t, packages, 5)
	assert.Equal(t, "starter", packages[0].ID)
	assert.Equal(t, "vip", packages[4].ID)
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates session for active package", func(t *testing.T) {
		// Arrange
		f := setup(t)
		f.open(t, "acct_1")
		f.processor.EXPECT().Checkout(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == "acct_1"
		}), mock.MatchedBy(func(p *entity.CreditPackage) bool {
			return p.ID == "basic" && p.TotalCredits() == 260
		}), urls).Return(&entity.CheckoutSession{ID: "cs_1", URL: "https://pay/cs_1"}, nil).Once()

		// Act
		session, err := f.uc.Checkout(ctx, "acct_1", "basic")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "https://pay/cs_1", session.URL)
	})

	t.Run("Unknown package", func(t *testing.T) {
		f := setup(t)
		f.open(t, "acct_1")

		_, err := f.uc.Checkout(ctx, "acct_1", "platinum")

		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
	})

	t.Run("Unknown account", func(t *testing.T) {
		f := setup(t)

		_, err := f.uc.Checkout(ctx, "acct_missing", "basic")

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("No processor configured", func(t *testing.T) {
		f := setup(t)
		uc := NewPaymentUseCase(memory.NewUnitOfWork(f.store), f.ledger, nil, urls, nil, nil)

		_, err := uc.Checkout(ctx, "acct_1", "basic")

		assert.ErrorIs(t, err, errs.ErrPaymentNotConfigured)
	})
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"id":"evt_1"}`)

	t.Run("Credits purchase once across redeliveries", func(t *testing.T) {
		// Arrange
		f := setup(t)
		f.open(t, "acct_1")
		f.processor.EXPECT().ParseEvent(payload, "sig").
			RunAndReturn(func([]byte, string) (*entity.PaymentEvent, error) {
				return purchaseEvent("evt_1", "acct_1", "pi_1", 660), nil
			}).Twice()

		// Act
		first, err := f.uc.HandleWebhook(ctx, payload, "sig")
		require.NoError(t, err)
		second, err := f.uc.HandleWebhook(ctx, payload, "sig")
		require.NoError(t, err)

		// Assert
		assert.True(t, first.Credited)
		assert.False(t, first.Duplicate)
		assert.Equal(t, int64(50+660), first.Balance)
		assert.Equal(t, fixedTime, first.Event.ReceivedAt)

		assert.False(t, second.Credited)
		assert.True(t, second.Duplicate)
		assert.Equal(t, int64(50+660), second.Balance)
	})

	t.Run("Distinct event with same payment id is not credited twice", func(t *testing.T) {
		f := setup(t)
		f.open(t, "acct_1")
		f.processor.EXPECT().ParseEvent(mock.Anything, mock.Anything).
			Return(purchaseEvent("evt_1", "acct_1", "pi_1", 100), nil).Once()
		f.processor.EXPECT().ParseEvent(mock.Anything, mock.Anything).
			Return(purchaseEvent("evt_2", "acct_1", "pi_1", 100), nil).Once()

		_, err := f.uc.HandleWebhook(ctx, payload, "sig")
		require.NoError(t, err)
		second, err := f.uc.HandleWebhook(ctx, payload, "sig")

		require.NoError(t, err)
		assert.True(t, second.Duplicate)
		assert.Equal(t, int64(150), second.Balance)
	})

	t.Run("Non purchase events are recorded only", func(t *testing.T) {
		f := setup(t)
		f.open(t, "acct_1")
		f.processor.EXPECT().ParseEvent(mock.Anything, mock.Anything).
			Return(&entity.PaymentEvent{ID: "evt_9", Provider: "stripe", Type: "checkout.session.expired"}, nil).Once()

		result, err := f.uc.HandleWebhook(ctx, payload, "sig")

		require.NoError(t, err)
		assert.False(t, result.Credited)
		assert.False(t, result.Duplicate)
	})

	t.Run("Unknown account is ignored", func(t *testing.T) {
		f := setup(t)
		f.processor.EXPECT().ParseEvent(mock.Anything, mock.Anything).
			Return(purchaseEvent("evt_1", "acct_gone", "pi_1", 100), nil).Once()

		result, err := f.uc.HandleWebhook(ctx, payload, "sig")

		require.NoError(t, err)
		assert.False(t, result.Credited)
	})

	t.Run("Invalid signature", func(t *testing.T) {
		f := setup(t)
		f.processor.EXPECT().ParseEvent(mock.Anything, "bad").Return(nil, errs.ErrInvalidPaymentEvent).Once()

		_, err := f.uc.HandleWebhook(ctx, payload, "bad")

		assert.ErrorIs(t, err, errs.ErrInvalidPaymentEvent)
	})
}
