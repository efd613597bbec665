package payment

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// PaymentUseCase sells credit packages through a payment processor
type PaymentUseCase struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	processor    gateway.PaymentProcessor
	urls         gateway.CheckoutURLs
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPaymentUseCase creates a new payment use case. processor may be nil when
// no payment provider is configured; packages can still be listed.
func NewPaymentUseCase(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	processor gateway.PaymentProcessor,
	urls gateway.CheckoutURLs,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		uow:          uow,
		ledger:       ledger,
		processor:    processor,
		urls:         urls,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.PaymentUseCase = (*PaymentUseCase)(nil)

// Packages lists the active credit packages
func (u *PaymentUseCase) Packages(ctx context.Context) ([]*entity.CreditPackage, error) {
	return u.uow.GetPackageRepository(ctx).ListActive(ctx)
}

// Checkout creates a hosted checkout session for an active package
func (u *PaymentUseCase) Checkout(ctx context.Context, accountID, packageID string) (*entity.CheckoutSession, error) {
	if u.processor == nil {
		return nil, errs.ErrPaymentNotConfigured
	}

	account, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	pkg, err := u.uow.GetPackageRepository(ctx).GetActive(ctx, packageID)
	if err != nil {
		return nil, err
	}

	session, err := u.processor.Checkout(ctx, account, pkg, u.urls)
	if err != nil {
		u.logger.Error("Failed to create checkout session", map[string]any{
			"account_id": accountID,
			"package_id": packageID,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Checkout session created", map[string]any{
		"account_id": accountID,
		"package_id": packageID,
		"session_id": session.ID,
	})
	return session, nil
}

// HandleWebhook verifies a payment notification and credits completed purchases.
// Crediting is idempotent on the provider's payment id, so redelivered
// notifications never credit twice.
func (u *PaymentUseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) (*usecase.WebhookResult, error) {
	if u.processor == nil {
		return nil, errs.ErrPaymentNotConfigured
	}

	event, err := u.processor.ParseEvent(payload, signature)
	if err != nil {
		u.logger.Warn("Rejected payment notification", map[string]any{"error": err.Error()})
		return nil, err
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = u.timeProvider.Now()
	}

	result := &usecase.WebhookResult{Event: event}

	if event.IsPurchase() {
		if err := u.credit(ctx, event, result); err != nil {
			return nil, err
		}
	}

	fresh, err := u.uow.GetPaymentEventRepository(ctx).Record(ctx, event)
	if err != nil {
		// The credit is already committed; a missing audit row must not trigger a redelivery
		u.logger.Warn("Failed to record payment event", map[string]any{
			"event_id": event.ID,
			"error":    err.Error(),
		})
	} else if !fresh {
		result.Duplicate = true
	}

	return result, nil
}

func (u *PaymentUseCase) credit(ctx context.Context, event *entity.PaymentEvent, result *usecase.WebhookResult) error {
	if _, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, event.AccountID); err != nil {
		if errs.IsNotFoundError(err) {
			u.logger.Warn("Payment for unknown account ignored", map[string]any{
				"event_id":   event.ID,
				"account_id": event.AccountID,
			})
			return nil
		}
		return err
	}

	description := fmt.Sprintf("Purchase of %d credits", event.Credits)
	if event.PackageID != "" {
		description = fmt.Sprintf("Purchase: %s package", event.PackageID)
	}

	applied, err := u.ledger.ApplyPurchase(ctx, event.AccountID, event.Credits, event.CorrelationID, description)
	if err != nil {
		u.logger.Error("Failed to credit purchase", map[string]any{
			"event_id":       event.ID,
			"account_id":     event.AccountID,
			"correlation_id": event.CorrelationID,
			"error":          err.Error(),
		})
		return err
	}

	result.Credited = !applied.Duplicate
	result.Duplicate = applied.Duplicate
	result.Balance = applied.Account.Balance()

	if result.Credited {
		u.logger.Info("Purchase credited", map[string]any{
			"event_id":   event.ID,
			"account_id": event.AccountID,
			"credits":    event.Credits,
			"balance":    result.Balance,
		})
	}
	return nil
}
