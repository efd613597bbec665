package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
)

// TransactionKind classifies a ledger entry
type TransactionKind string

// Transaction kinds
const (
	KindSignupBonus TransactionKind = "signup_bonus"
	KindPurchase    TransactionKind = "purchase"
	KindUsage       TransactionKind = "usage"
	KindRefund      TransactionKind = "refund"
)

// IsValid checks if the kind is one of the defined values
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindSignupBonus, KindPurchase, KindUsage, KindRefund:
		return true
	}
	return false
}

// IsCredit reports whether entries of this kind add credits
func (k TransactionKind) IsCredit() bool {
	return k == KindSignupBonus || k == KindPurchase || k == KindRefund
}

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusCompleted TransactionStatus = "completed"
)

// Transaction is an immutable ledger audit entry
type Transaction struct {
	ID           string            // Unique identifier (txn_...)
	AccountID    string            // Owning account
	Amount       int64             // Signed: positive adds credits, negative consumes them
	Kind         TransactionKind   // signup_bonus, purchase, usage or refund
	Description  string            // Human readable description
	Reference    string            // Payment correlation id, reservation id or account id; optional
	Status       TransactionStatus // Always completed once appended
	BalanceAfter int64             // Account balance right after this entry
	CreatedAt    time.Time         // When the entry was appended
}

// NewTransaction creates a ledger entry whose sign follows its kind
func NewTransaction(id, accountID string, kind TransactionKind, amount int64, description, reference string, balanceAfter int64, now time.Time) (*Transaction, error) {
	if id == "" || accountID == "" {
		return nil, errs.NewValidationError("transaction", "id and account id are required")
	}
	if !kind.IsValid() {
		return nil, errs.ErrInvalidKind
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	signed := amount
	if !kind.IsCredit() {
		signed = -amount
	}

	return &Transaction{
		ID:           id,
		AccountID:    accountID,
		Amount:       signed,
		Kind:         kind,
		Description:  description,
		Reference:    reference,
		Status:       StatusCompleted,
		BalanceAfter: balanceAfter,
		CreatedAt:    now,
	}, nil
}

// IsCredit returns true if the entry added credits
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if the entry consumed credits
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// Magnitude returns the absolute amount
func (t *Transaction) Magnitude() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}
