package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		kind     TransactionKind
		amount   int64
		expected int64
	}{
		{"Signup bonus is positive", KindSignupBonus, 50, 50},
		{"Purchase is positive", KindPurchase, 100, 100},
		{"Refund is positive", KindRefund, 15, 15},
		{"Usage is negative", KindUsage, 15, -15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewTransaction("txn_1", "acct_1", tc.kind, tc.amount, "desc", "ref", 42, fixedTime)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, tx.Amount)
			assert.Equal(t, tc.amount, tx.Magnitude())
			assert.Equal(t, StatusCompleted, tx.Status)
			assert.Equal(t, int64(42), tx.BalanceAfter)
			assert.Equal(t, tc.kind.IsCredit(), tx.IsCredit())
			assert.Equal(t, !tc.kind.IsCredit(), tx.IsDebit())
		})
	}

	t.Run("Invalid kind", func(t *testing.T) {
		_, err := NewTransaction("txn_1", "acct_1", TransactionKind("bonus"), 10, "", "", 0, fixedTime)
		assert.ErrorIs(t, err, errs.ErrInvalidKind)
	})

	t.Run("Zero amount", func(t *testing.T) {
		_, err := NewTransaction("txn_1", "acct_1", KindPurchase, 0, "", "", 0, fixedTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Missing account", func(t *testing.T) {
		_, err := NewTransaction("txn_1", "", KindPurchase, 10, "", "", 0, fixedTime)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
