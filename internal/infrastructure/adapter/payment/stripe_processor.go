// Package payment implements the PaymentProcessor port with Stripe Checkout.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
)

// Provider is the name recorded on payment events
const Provider = "stripe"

// Metadata keys attached to checkout sessions
const (
	metaAccountID = "account_id"
	metaPackageID = "package_id"
	metaCredits   = "credits"
)

// Config holds Stripe settings
type Config struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

// StripeProcessor implements gateway.PaymentProcessor
type StripeProcessor struct {
	sessions      session.Client
	webhookSecret string
	currency      string
	logger        coreport.Logger
}

// NewStripeProcessor creates a processor. backend may be nil to use Stripe's API.
func NewStripeProcessor(cfg Config, backend stripe.Backend, logger coreport.Logger) (*StripeProcessor, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret is required")
	}
	if cfg.Currency == "" {
		cfg.Currency = string(stripe.CurrencyEUR)
	}
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}

	return &StripeProcessor{
		sessions:      session.Client{B: backend, Key: cfg.SecretKey},
		webhookSecret: cfg.WebhookSecret,
		currency:      strings.ToLower(cfg.Currency),
		logger:        logger,
	}, nil
}

var _ gateway.PaymentProcessor = (*StripeProcessor)(nil)

// Checkout creates a one-off payment session for the package
func (p *StripeProcessor) Checkout(ctx context.Context, account *entity.Account, pkg *entity.CreditPackage, urls gateway.CheckoutURLs) (*entity.CheckoutSession, error) {
	lineItem := &stripe.CheckoutSessionLineItemParams{Quantity: stripe.Int64(1)}
	if pkg.ProviderPrice != "" {
		lineItem.Price = stripe.String(pkg.ProviderPrice)
	} else {
		lineItem.PriceData = &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(p.currency),
			UnitAmount: stripe.Int64(pkg.PriceMinorUnits()),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(fmt.Sprintf("%s - %d credits", pkg.Name, pkg.TotalCredits())),
			},
		}
	}

	metadata := map[string]string{
		metaAccountID: account.ID,
		metaPackageID: pkg.ID,
		metaCredits:   strconv.FormatInt(pkg.TotalCredits(), 10),
	}
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:         []*stripe.CheckoutSessionLineItemParams{lineItem},
		SuccessURL:        stripe.String(urls.Success),
		CancelURL:         stripe.String(urls.Cancel),
		ClientReferenceID: stripe.String(account.ID),
		CustomerEmail:     stripe.String(account.Email),
		Metadata:          metadata,
	}
	params.Context = ctx

	s, err := p.sessions.New(params)
	if err != nil {
		p.logger.Error("Failed to create checkout session", map[string]any{
			"account_id": account.ID,
			"package_id": pkg.ID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &entity.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseEvent verifies the Stripe-Signature header and decodes the event
func (p *StripeProcessor) ParseEvent(payload []byte, signature string) (*entity.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPaymentEvent, err.Error())
	}

	out := &entity.PaymentEvent{
		ID:       event.ID,
		Provider: Provider,
		Type:     string(event.Type),
		Payload:  payload,
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPaymentEvent, err.Error())
		}
		// Delayed payment methods complete the session before the money arrives
		if s.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
			return out, nil
		}
		fillPurchase(out, &s)
	}
	return out, nil
}

func fillPurchase(out *entity.PaymentEvent, s *stripe.CheckoutSession) {
	out.AccountID = s.ClientReferenceID
	if out.AccountID == "" {
		out.AccountID = s.Metadata[metaAccountID]
	}
	out.PackageID = s.Metadata[metaPackageID]
	out.Credits, _ = strconv.ParseInt(s.Metadata[metaCredits], 10, 64)

	out.CorrelationID = s.ID
	if s.PaymentIntent != nil && s.PaymentIntent.ID != "" {
		out.CorrelationID = s.PaymentIntent.ID
	}
}
