package model

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// Fulfillment records a delivered reservation. It belongs to the account so it
// outlives the persona whose turn it paid for.
type Fulfillment struct {
	ReservationID string    `gorm:"primaryKey;size:64"`
	AccountID     string    `gorm:"not null;size:64;index"`
	Kind          string    `gorm:"not null;size:20"`
	CreatedAt     time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Fulfillment
func (Fulfillment) TableName() string {
	return "fulfillments"
}

// FromFulfillment converts a fulfillment to its row
func FromFulfillment(f *entity.Fulfillment) *Fulfillment {
	return &Fulfillment{
		ReservationID: f.ReservationID,
		AccountID:     f.AccountID,
		Kind:          f.Kind,
		CreatedAt:     f.CreatedAt,
	}
}
