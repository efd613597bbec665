package model

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// Account represents the database model for accounts
type Account struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Email         string    `gorm:"not null;size:255;uniqueIndex"`
	Username      string    `gorm:"not null;size:50;uniqueIndex"`
	PasswordHash  string    `gorm:"not null;size:255"`
	Balance       int64     `gorm:"not null;default:0;check:chk_accounts_balance,balance >= 0"`
	LifetimeSpend int64     `gorm:"not null;default:0;check:chk_accounts_spend,lifetime_spend >= 0"`
	Level         int       `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// FromAccount converts an account entity to its row
func FromAccount(a *entity.Account) *Account {
	return &Account{
		ID:            a.ID,
		Email:         a.Email,
		Username:      a.Username,
		PasswordHash:  a.PasswordHash,
		Balance:       a.Balance(),
		LifetimeSpend: a.LifetimeSpend(),
		Level:         a.Level,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToEntity rebuilds the account entity
func (m *Account) ToEntity() *entity.Account {
	return entity.RestoreAccount(m.ID, m.Email, m.Username, m.PasswordHash, m.Balance, m.LifetimeSpend, m.Level, m.CreatedAt, m.UpdatedAt)
}
