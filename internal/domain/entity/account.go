package entity

import (
	"math"
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
)

// Registration limits
const (
	MinPasswordLength = 6
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// Account represents a registered user and their ledger state
type Account struct {
	ID           string    // Opaque identifier (acct_...)
	Email        string    // Unique, lowercased
	Username     string    // Unique display handle
	PasswordHash string    // Produced by the password hasher, never the raw password
	balance      int64     // Spendable credits, never negative after a committed operation
	spend        int64     // Lifetime spend, only increased by debits
	Level        int       // Displayed level, re-derivable from lifetime spend
	CreatedAt    time.Time // When the account was registered
	UpdatedAt    time.Time // When the ledger state last changed
}

// NewAccount creates an account with an opening balance.
// The signup bonus is credited separately so it appears in the transaction log.
func NewAccount(id, email, username, passwordHash string, openingBalance int64, now time.Time) (*Account, error) {
	if id == "" {
		return nil, errs.NewValidationError("id", "must not be empty")
	}
	if openingBalance < 0 {
		return nil, errs.WrapValidationError("openingBalance", "must not be negative", errs.ErrInvalidAmount)
	}

	return &Account{
		ID:           id,
		Email:        NormalizeEmail(email),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		balance:      openingBalance,
		Level:        1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted state
func RestoreAccount(id, email, username, passwordHash string, balance, lifetimeSpend int64, level int, createdAt, updatedAt time.Time) *Account {
	return &Account{
		ID:           id,
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		balance:      balance,
		spend:        lifetimeSpend,
		Level:        level,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Balance returns the spendable credits
func (a *Account) Balance() int64 {
	return a.balance
}

// LifetimeSpend returns the total credits ever consumed
func (a *Account) LifetimeSpend() int64 {
	return a.spend
}

// CanAfford reports whether a debit of amount would succeed
func (a *Account) CanAfford(amount int64) bool {
	return amount > 0 && a.balance >= amount
}

// Credit adds credits to the balance
func (a *Account) Credit(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if a.balance > math.MaxInt64-amount {
		return errs.ErrAmountOverflow
	}

	a.balance += amount
	a.UpdatedAt = now
	return nil
}

// Debit consumes credits and records them as lifetime spend.
// Nothing changes when the balance is too low.
func (a *Account) Debit(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if a.balance < amount {
		return errs.NewInsufficientFundsError(a.ID, amount, a.balance)
	}
	if a.spend > math.MaxInt64-amount {
		return errs.ErrAmountOverflow
	}

	a.balance -= amount
	a.spend += amount
	a.UpdatedAt = now
	return nil
}

// Refund returns credits. Lifetime spend is only reduced when reduceSpend is set,
// and never below zero.
func (a *Account) Refund(amount int64, reduceSpend bool, now time.Time) error {
	if err := a.Credit(amount, now); err != nil {
		return err
	}

	if reduceSpend {
		a.spend -= min(a.spend, amount)
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistration checks the credentials submitted at signup
func ValidateRegistration(email, username, password string) error {
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return errs.NewValidationError("email", "must be a valid email address")
	}

	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return errs.NewValidationError("username", "must be between 3 and 50 characters")
	}

	if len(password) < MinPasswordLength {
		return errs.NewValidationError("password", "must be at least 6 characters")
	}

	return nil
}
