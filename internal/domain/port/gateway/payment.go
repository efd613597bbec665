package gateway

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// CheckoutURLs are the pages the hosted checkout redirects to
type CheckoutURLs struct {
	Success string
	Cancel  string
}

// PaymentProcessor creates hosted checkouts and verifies their notifications
type PaymentProcessor interface {
	// Checkout creates a hosted checkout session for one package
	Checkout(ctx context.Context, account *entity.Account, pkg *entity.CreditPackage, urls CheckoutURLs) (*entity.CheckoutSession, error)

	// ParseEvent verifies the signature and decodes the notification.
	// Events that do not complete a purchase are returned with IsPurchase() false.
	//
	// Possible errors:
	// - ErrInvalidPaymentEvent: If the signature or payload is invalid
	ParseEvent(payload []byte, signature string) (*entity.PaymentEvent, error)
}
