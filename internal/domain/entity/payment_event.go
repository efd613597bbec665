package entity

import "time"

// PaymentEvent is a verified notification from the payment processor
type PaymentEvent struct {
	ID            string // Provider event id
	Provider      string
	Type          string
	AccountID     string
	PackageID     string
	Credits       int64
	CorrelationID string // Provider payment id used for idempotent crediting
	Payload       []byte
	ReceivedAt    time.Time
}

// IsPurchase reports whether the event carries a completed purchase
func (e *PaymentEvent) IsPurchase() bool {
	return e.AccountID != "" && e.Credits > 0 && e.CorrelationID != ""
}

// CheckoutSession is a hosted checkout created for a credit package
type CheckoutSession struct {
	ID  string
	URL string
}
