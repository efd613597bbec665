// Package pricing holds the immutable price list and spend tables of the ledger.
package pricing

import (
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/tier"
)

// Default prices and balances
const (
	DefaultTextCost       int64 = 1
	DefaultOpeningBalance int64 = 0
	DefaultSignupBonus    int64 = 50
)

// DefaultLevels returns the content levels used when none are configured
func DefaultLevels() []entity.ContentLevel {
	return []entity.ContentLevel{
		{Level: 0, Name: "safe", Cost: 7, MinTier: 1},
		{Level: 1, Name: "suggestive", Cost: 10, MinTier: 2},
		{Level: 2, Name: "explicit", Cost: 15, MinTier: 3},
	}
}

// Config is the raw pricing input, usually decoded from configuration
type Config struct {
	TextCost           int64
	Levels             []entity.ContentLevel
	LevelThresholds    []tier.Threshold
	UnlockThresholds   []tier.Threshold
	OpeningBalance     int64
	SignupBonus        int64
	RefundReducesSpend bool
}

// DefaultConfig returns the built-in pricing
func DefaultConfig() Config {
	return Config{
		TextCost:         DefaultTextCost,
		Levels:           DefaultLevels(),
		LevelThresholds:  tier.DefaultThresholds(),
		UnlockThresholds: tier.DefaultThresholds(),
		OpeningBalance:   DefaultOpeningBalance,
		SignupBonus:      DefaultSignupBonus,
	}
}

// Pricing is a validated, read-only price list shared by the ledger, gate and orchestrator
type Pricing struct {
	textCost           int64
	levels             map[int]entity.ContentLevel
	levelTable         tier.Table
	unlockTable        tier.Table
	openingBalance     int64
	signupBonus        int64
	refundReducesSpend bool
}

// New validates cfg and returns a Pricing that does not share memory with it
func New(cfg Config) (*Pricing, error) {
	if cfg.TextCost <= 0 {
		return nil, errs.WrapValidationError("textCost", "must be positive", errs.ErrInvalidAmount)
	}
	if cfg.OpeningBalance < 0 {
		return nil, errs.WrapValidationError("openingBalance", "must not be negative", errs.ErrInvalidAmount)
	}
	if cfg.SignupBonus < 0 {
		return nil, errs.WrapValidationError("signupBonus", "must not be negative", errs.ErrInvalidAmount)
	}
	if len(cfg.Levels) == 0 {
		return nil, errs.NewValidationError("levels", "at least one content level is required")
	}

	levelTable, err := tier.NewTable(cfg.LevelThresholds)
	if err != nil {
		return nil, fmt.Errorf("level table: %w", err)
	}
	unlockTable, err := tier.NewTable(cfg.UnlockThresholds)
	if err != nil {
		return nil, fmt.Errorf("unlock table: %w", err)
	}

	levels := make(map[int]entity.ContentLevel, len(cfg.Levels))
	for _, lvl := range cfg.Levels {
		if _, dup := levels[lvl.Level]; dup {
			return nil, errs.NewValidationError("levels", fmt.Sprintf("level %d is defined twice", lvl.Level))
		}
		if lvl.Cost <= 0 {
			return nil, errs.WrapValidationError("levels", fmt.Sprintf("level %d cost must be positive", lvl.Level), errs.ErrInvalidAmount)
		}
		if _, ok := unlockTable.Threshold(lvl.MinTier); !ok {
			return nil, errs.NewValidationError("levels", fmt.Sprintf("level %d requires unknown tier %d", lvl.Level, lvl.MinTier))
		}
		levels[lvl.Level] = lvl
	}

	return &Pricing{
		textCost:           cfg.TextCost,
		levels:             levels,
		levelTable:         levelTable,
		unlockTable:        unlockTable,
		openingBalance:     cfg.OpeningBalance,
		signupBonus:        cfg.SignupBonus,
		refundReducesSpend: cfg.RefundReducesSpend,
	}, nil
}

// Default returns the built-in pricing
func Default() *Pricing {
	p, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return p
}

// TextCost is the price of one text reply
func (p *Pricing) TextCost() int64 { return p.textCost }

// OpeningBalance is the unlogged balance of a new account
func (p *Pricing) OpeningBalance() int64 { return p.openingBalance }

// SignupBonus is credited, and logged, when an account is opened
func (p *Pricing) SignupBonus() int64 { return p.signupBonus }

// RefundReducesSpend reports whether refunds lower lifetime spend
func (p *Pricing) RefundReducesSpend() bool { return p.refundReducesSpend }

// LevelTable maps lifetime spend to the displayed level
func (p *Pricing) LevelTable() tier.Table { return p.levelTable }

// UnlockTable maps lifetime spend to the content unlock tier
func (p *Pricing) UnlockTable() tier.Table { return p.unlockTable }

// Level looks up a content level
func (p *Pricing) Level(level int) (entity.ContentLevel, error) {
	lvl, ok := p.levels[level]
	if !ok {
		return entity.ContentLevel{}, errs.WrapValidationError("level",
			fmt.Sprintf("content level %d is not offered", level), errs.ErrUnknownContentLevel)
	}
	return lvl, nil
}

// Levels returns all content levels ordered by level
func (p *Pricing) Levels() []entity.ContentLevel {
	out := make([]entity.ContentLevel, 0, len(p.levels))
	for _, lvl := range p.levels {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}
