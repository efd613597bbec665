package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// CreditPackage represents a purchasable bundle
type CreditPackage struct {
	ID            string          `gorm:"primaryKey;size:32"`
	Name          string          `gorm:"not null;size:50"`
	Credits       int64           `gorm:"not null"`
	BonusCredits  int64           `gorm:"not null;default:0"`
	PriceEUR      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ProviderPrice string          `gorm:"size:100"`
	Active        bool            `gorm:"not null;default:true"`
	SortOrder     int             `gorm:"not null;default:0"`
}

// TableName specifies the table name for CreditPackage
func (CreditPackage) TableName() string {
	return "credit_packages"
}

// FromPackage converts a package entity to its row
func FromPackage(p *entity.CreditPackage) *CreditPackage {
	return &CreditPackage{
		ID:            p.ID,
		Name:          p.Name,
		Credits:       p.Credits,
		BonusCredits:  p.BonusCredits,
		PriceEUR:      p.PriceEUR,
		ProviderPrice: p.ProviderPrice,
		Active:        p.Active,
		SortOrder:     p.SortOrder,
	}
}

// ToEntity rebuilds the package entity
func (m *CreditPackage) ToEntity() *entity.CreditPackage {
	return &entity.CreditPackage{
		ID:            m.ID,
		Name:          m.Name,
		Credits:       m.Credits,
		BonusCredits:  m.BonusCredits,
		PriceEUR:      m.PriceEUR,
		ProviderPrice: m.ProviderPrice,
		Active:        m.Active,
		SortOrder:     m.SortOrder,
	}
}

// PaymentEvent retains every verified provider notification
type PaymentEvent struct {
	ID            string         `gorm:"primaryKey;size:255"`
	Provider      string         `gorm:"not null;size:20"`
	Type          string         `gorm:"not null;size:100"`
	AccountID     string         `gorm:"size:64;index"`
	PackageID     string         `gorm:"size:32"`
	Credits       int64          `gorm:"not null;default:0"`
	CorrelationID string         `gorm:"size:255;index"`
	Payload       datatypes.JSON `gorm:"not null"`
	ReceivedAt    time.Time      `gorm:"not null"`
}

// TableName specifies the table name for PaymentEvent
func (PaymentEvent) TableName() string {
	return "payment_events"
}

// FromPaymentEvent converts an event to its row. A non-JSON payload is stored as null.
func FromPaymentEvent(e *entity.PaymentEvent) *PaymentEvent {
	payload := datatypes.JSON("null")
	if json.Valid(e.Payload) {
		payload = datatypes.JSON(e.Payload)
	}
	return &PaymentEvent{
		ID:            e.ID,
		Provider:      e.Provider,
		Type:          e.Type,
		AccountID:     e.AccountID,
		PackageID:     e.PackageID,
		Credits:       e.Credits,
		CorrelationID: e.CorrelationID,
		Payload:       payload,
		ReceivedAt:    e.ReceivedAt,
	}
}
