package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// ReservationRepository tracks the settlement of paid generation reservations
type ReservationRepository interface {
	// MarkFulfilled records that a reservation produced its delivered turn
	//
	// Possible errors:
	// - ErrDuplicateEntry: If the reservation was already marked
	MarkFulfilled(ctx context.Context, fulfillment *entity.Fulfillment) error

	// ListUnsettled returns usage entries created before the cutoff whose
	// reservation has neither a fulfillment nor a refund, oldest first
	ListUnsettled(ctx context.Context, before time.Time, limit int) ([]*entity.Transaction, error)
}
