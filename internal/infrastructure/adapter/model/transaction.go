package model

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// Transaction represents the database model for ledger entries.
// (kind, reference) is unique for non-empty references; see the migration.
type Transaction struct {
	ID           string    `gorm:"primaryKey;size:64"`
	AccountID    string    `gorm:"not null;size:64;index:idx_transactions_account_created,priority:1"`
	Amount       int64     `gorm:"not null"`
	Kind         string    `gorm:"not null;size:20"`
	Description  string    `gorm:"type:text"`
	Reference    string    `gorm:"not null;default:'';size:255"`
	Status       string    `gorm:"not null;size:20"`
	BalanceAfter int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_transactions_account_created,priority:2"`

	Account Account `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// FromTransaction converts a ledger entry to its row
func FromTransaction(t *entity.Transaction) *Transaction {
	return &Transaction{
		ID:           t.ID,
		AccountID:    t.AccountID,
		Amount:       t.Amount,
		Kind:         string(t.Kind),
		Description:  t.Description,
		Reference:    t.Reference,
		Status:       string(t.Status),
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
}

// ToEntity rebuilds the ledger entry
func (m *Transaction) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		AccountID:    m.AccountID,
		Amount:       m.Amount,
		Kind:         entity.TransactionKind(m.Kind),
		Description:  m.Description,
		Reference:    m.Reference,
		Status:       entity.TransactionStatus(m.Status),
		BalanceAfter: m.BalanceAfter,
		CreatedAt:    m.CreatedAt,
	}
}
