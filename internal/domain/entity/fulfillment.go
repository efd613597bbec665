package entity

import "time"

// Fulfillment marks a paid reservation as delivered. Usage entries whose
// reservation has neither a fulfillment nor a refund are unsettled.
type Fulfillment struct {
	ReservationID string
	AccountID     string
	Kind          string // text or image
	CreatedAt     time.Time
}
