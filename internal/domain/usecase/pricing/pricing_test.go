package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/tier"
)

func TestDefaultPricing(t *testing.T) {
	p := Default()

	assert.Equal(t, int64(1), p.TextCost())
	assert.Equal(t, int64(0), p.OpeningBalance())
	assert.Equal(t, int64(50), p.SignupBonus())
	assert.False(t, p.RefundReducesSpend())

	explicit, err := p.Level(2)
	require.NoError(t, err)
	assert.Equal(t, int64(15), explicit.Cost)
	assert.Equal(t, 3, explicit.MinTier)

	levels := p.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{levels[0].Level, levels[1].Level, levels[2].Level})
}

func TestUnknownLevel(t *testing.T) {
	_, err := Default().Level(7)

	assert.ErrorIs(t, err, errs.ErrUnknownContentLevel)
	assert.True(t, errs.IsValidationError(err))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero text cost", func(c *Config) { c.TextCost = 0 }},
		{"negative opening balance", func(c *Config) { c.OpeningBalance = -1 }},
		{"no levels", func(c *Config) { c.Levels = nil }},
		{"duplicate level", func(c *Config) { c.Levels = append(c.Levels, c.Levels[0]) }},
		{"zero level cost", func(c *Config) { c.Levels[0].Cost = 0 }},
		{"unknown tier", func(c *Config) { c.Levels[2].MinTier = 9 }},
		{"bad unlock table", func(c *Config) { c.UnlockThresholds = []tier.Threshold{{Spend: 5, Level: 1}} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			p, err := New(cfg)

			assert.Nil(t, p)
			assert.True(t, errs.IsValidationError(err), "got %v", err)
		})
	}
}

func TestPricingIsIsolatedFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	p, err := New(cfg)
	require.NoError(t, err)

	cfg.Levels[0] = entity.ContentLevel{Level: 0, Cost: 999, MinTier: 1}
	cfg.UnlockThresholds[1].Spend = 1

	safe, err := p.Level(0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), safe.Cost)
	assert.Equal(t, 1, p.UnlockTable().Level(1))
}
