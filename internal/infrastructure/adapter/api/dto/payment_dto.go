package dto

import "github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"

// PackageResponse represents a purchasable credit package
type PackageResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Credits      int64  `json:"credits"`
	BonusCredits int64  `json:"bonusCredits"`
	TotalCredits int64  `json:"totalCredits"`
	PriceEUR     string `json:"priceEur"`
}

// NewPackageResponse converts a credit package. Prices are rendered with two decimals.
func NewPackageResponse(p *entity.CreditPackage) PackageResponse {
	return PackageResponse{
		ID:           p.ID,
		Name:         p.Name,
		Credits:      p.Credits,
		BonusCredits: p.BonusCredits,
		TotalCredits: p.TotalCredits(),
		PriceEUR:     p.PriceEUR.StringFixed(2),
	}
}

// CheckoutRequest represents the API request for buying a package
type CheckoutRequest struct {
	PackageID string `json:"packageId" binding:"required"`
}

// CheckoutResponse carries the hosted checkout page
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// WebhookResponse acknowledges a payment notification
type WebhookResponse struct {
	Received  bool   `json:"received"`
	EventID   string `json:"eventId"`
	Credited  bool   `json:"credited"`
	Duplicate bool   `json:"duplicate"`
}
