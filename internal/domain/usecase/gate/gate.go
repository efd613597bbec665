package gate

import (
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/pricing"
)

// Decision is a granted authorization for one content level
type Decision struct {
	Level entity.ContentLevel
	Tier  int // Unlock tier of the account when it was authorized
}

// Gate decides whether an account's lifetime spend unlocks a content level.
// It reads account state only and never touches the ledger.
type Gate struct {
	pricing *pricing.Pricing
}

// NewGate creates a gate over the given price list
func NewGate(p *pricing.Pricing) *Gate {
	return &Gate{pricing: p}
}

// Authorize returns the decision for level, or an AccessDeniedError carrying
// the tier and spend the account is missing
func (g *Gate) Authorize(level int, account *entity.Account) (*Decision, error) {
	lvl, err := g.pricing.Level(level)
	if err != nil {
		return nil, err
	}

	table := g.pricing.UnlockTable()
	current := table.Level(account.LifetimeSpend())
	if lvl.MinTier <= current {
		return &Decision{Level: lvl, Tier: current}, nil
	}

	required, _ := table.Threshold(lvl.MinTier)
	return nil, &errs.AccessDeniedError{
		AccountID:     account.ID,
		Level:         lvl.Level,
		CurrentTier:   current,
		RequiredTier:  lvl.MinTier,
		CurrentSpend:  account.LifetimeSpend(),
		RequiredSpend: required,
	}
}
