package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/logger"
)

const webhookSecret = "whsec_test"

func newProcessor(t *testing.T, handler http.HandlerFunc) *StripeProcessor {
	t.Helper()
	var backend stripe.Backend
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		backend = stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(srv.URL),
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		})
	}
	p, err := NewStripeProcessor(Config{SecretKey: "sk_test_123", WebhookSecret: webhookSecret}, backend, logger.NewNoopLogger())
	require.NoError(t, err)
	return p
}

func signedEvent(t *testing.T, eventType string, object map[string]any) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_1",
		"object":      "event",
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    webhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestCheckout(t *testing.T) {
	acct, err := entity.NewAccount("acct_1", "a@x.io", "alice", "hash", 0, time.Now())
	require.NoError(t, err)
	pkg := &entity.CreditPackage{ID: "popular", Name: "Popular", Credits: 600, BonusCredits: 60, PriceEUR: decimal.RequireFromString("39.99"), Active: true}
	urls := gateway.CheckoutURLs{Success: "https://app/success", Cancel: "https://app/cancel"}

	t.Run("Creates a priced session", func(t *testing.T) {
		// Arrange
		p := newProcessor(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "payment", r.PostForm.Get("mode"))
			assert.Equal(t, "acct_1", r.PostForm.Get("client_reference_id"))
			assert.Equal(t, "3999", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "eur", r.PostForm.Get("line_items[0][price_data][currency]"))
			assert.Equal(t, "660", r.PostForm.Get("metadata[credits]"))
			assert.Equal(t, "popular", r.PostForm.Get("metadata[package_id]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
		})

		// Act
		s, err := p.Checkout(context.Background(), acct, pkg, urls)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", s.ID)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", s.URL)
	})

	t.Run("Provider error", func(t *testing.T) {
		p := newProcessor(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"bad currency"}}`))
		})

		_, err := p.Checkout(context.Background(), acct, pkg, urls)
		assert.Error(t, err)
	})
}

func TestParseEvent(t *testing.T) {
	p := newProcessor(t, nil)

	t.Run("Paid session becomes a purchase", func(t *testing.T) {
		// Arrange
		payload, sig := signedEvent(t, "checkout.session.completed", map[string]any{
			"id":                  "cs_test_1",
			"object":              "checkout.session",
			"payment_status":      "paid",
			"client_reference_id": "acct_1",
			"payment_intent":      "pi_123",
			"metadata":            map[string]string{"package_id": "popular", "credits": "660", "account_id": "acct_1"},
		})

		// Act
		event, err := p.ParseEvent(payload, sig)

		// Assert
		require.NoError(t, err)
		assert.True(t, event.IsPurchase())
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, Provider, event.Provider)
		assert.Equal(t, "acct_1", event.AccountID)
		assert.Equal(t, "popular", event.PackageID)
		assert.Equal(t, int64(660), event.Credits)
		assert.Equal(t, "pi_123", event.CorrelationID)
	})

	t.Run("Unpaid session is not a purchase", func(t *testing.T) {
		payload, sig := signedEvent(t, "checkout.session.completed", map[string]any{
			"id":             "cs_test_2",
			"object":         "checkout.session",
			"payment_status": "unpaid",
			"metadata":       map[string]string{"credits": "100", "account_id": "acct_1"},
		})

		event, err := p.ParseEvent(payload, sig)

		require.NoError(t, err)
		assert.False(t, event.IsPurchase())
	})

	t.Run("Unrelated event", func(t *testing.T) {
		payload, sig := signedEvent(t, "customer.created", map[string]any{"id": "cus_1", "object": "customer"})

		event, err := p.ParseEvent(payload, sig)

		require.NoError(t, err)
		assert.Equal(t, "customer.created", event.Type)
		assert.False(t, event.IsPurchase())
	})

	t.Run("Bad signature", func(t *testing.T) {
		payload, _ := signedEvent(t, "customer.created", map[string]any{"id": "cus_1"})

		_, err := p.ParseEvent(payload, "t=1,v1=deadbeef")
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentEvent)
	})
}

func TestNewStripeProcessor(t *testing.T) {
	_, err := NewStripeProcessor(Config{SecretKey: "sk"}, nil, logger.NewNoopLogger())
	assert.Error(t, err)
}
