package entity

import "github.com/shopspring/decimal"

// CreditPackage is a purchasable bundle of credits
type CreditPackage struct {
	ID            string
	Name          string
	Credits       int64
	BonusCredits  int64
	PriceEUR      decimal.Decimal
	ProviderPrice string // Price id configured at the payment provider, optional
	Active        bool
	SortOrder     int
}

// TotalCredits returns the credits granted on purchase
func (p *CreditPackage) TotalCredits() int64 {
	return p.Credits + p.BonusCredits
}

// PriceMinorUnits returns the price in euro cents, rounded half-up
func (p *CreditPackage) PriceMinorUnits() int64 {
	return p.PriceEUR.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// DefaultCreditPackages returns the catalogue seeded on first migration
func DefaultCreditPackages() []CreditPackage {
	return []CreditPackage{
		{ID: "starter", Name: "Starter", Credits: 100, BonusCredits: 0, PriceEUR: decimal.RequireFromString("9.99"), Active: true, SortOrder: 1},
		{ID: "basic", Name: "Basic", Credits: 250, BonusCredits: 10, PriceEUR: decimal.RequireFromString("19.99"), Active: true, SortOrder: 2},
		{ID: "popular", Name: "Popular", Credits: 600, BonusCredits: 60, PriceEUR: decimal.RequireFromString("39.99"), Active: true, SortOrder: 3},
		{ID: "pro", Name: "Pro", Credits: 1500, BonusCredits: 300, PriceEUR: decimal.RequireFromString("89.99"), Active: true, SortOrder: 4},
		{ID: "vip", Name: "VIP", Credits: 4000, BonusCredits: 1200, PriceEUR: decimal.RequireFromString("199.99"), Active: true, SortOrder: 5},
	}
}
