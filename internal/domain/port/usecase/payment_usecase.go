package usecase

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// WebhookResult reports what a payment notification did
type WebhookResult struct {
	Event     *entity.PaymentEvent
	Credited  bool
	Duplicate bool
	Balance   int64
}

// PaymentUseCase sells credit packages
type PaymentUseCase interface {
	Packages(ctx context.Context) ([]*entity.CreditPackage, error)
	Checkout(ctx context.Context, accountID, packageID string) (*entity.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}
