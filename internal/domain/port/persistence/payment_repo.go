package persistence

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// PackageRepository reads the credit package catalogue
type PackageRepository interface {
	// ListActive returns purchasable packages ordered for display
	ListActive(ctx context.Context) ([]*entity.CreditPackage, error)

	// GetActive returns one purchasable package
	//
	// Possible errors:
	// - ErrPackageNotFound: If the package doesn't exist or is inactive
	GetActive(ctx context.Context, id string) (*entity.CreditPackage, error)
}

// PaymentEventRepository retains verified payment notifications
type PaymentEventRepository interface {
	// Record stores the event. It returns false when the event id was already recorded.
	Record(ctx context.Context, event *entity.PaymentEvent) (bool, error)
}
