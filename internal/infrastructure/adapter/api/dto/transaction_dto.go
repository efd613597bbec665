package dto

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// TransactionResponse represents a ledger entry
type TransactionResponse struct {
	ID           string    `json:"id"`
	Amount       int64     `json:"amount"`
	Kind         string    `json:"kind"`
	Description  string    `json:"description"`
	Reference    string    `json:"reference,omitempty"`
	Status       string    `json:"status"`
	BalanceAfter int64     `json:"balanceAfter"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewTransactionResponse converts a ledger entry
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Amount:       t.Amount,
		Kind:         string(t.Kind),
		Description:  t.Description,
		Reference:    t.Reference,
		Status:       string(t.Status),
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
}
