package dto

import (
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// RegisterRequest represents the API request for signing up
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AccountResponse is the balance view of an account
type AccountResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	Balance       int64  `json:"balance"`
	LifetimeSpend int64  `json:"lifetimeSpend"`
	Level         int    `json:"level"`
	UnlockTier    int    `json:"unlockTier"`
	NextLevelAt   *int64 `json:"nextLevelAt,omitempty"`
	NextUnlockAt  *int64 `json:"nextUnlockAt,omitempty"`
	Personas      int    `json:"personas"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

// NewAccountResponse converts an account summary
func NewAccountResponse(s *usecase.AccountSummary) AccountResponse {
	return AccountResponse{
		ID:            s.AccountID,
		Email:         s.Email,
		Username:      s.Username,
		Balance:       s.Balance,
		LifetimeSpend: s.LifetimeSpend,
		Level:         s.Level,
		UnlockTier:    s.UnlockTier,
		NextLevelAt:   s.NextLevelAt,
		NextUnlockAt:  s.NextUnlockAt,
		Personas:      s.Personas,
	}
}

// NewAuthResponse converts an auth result. Tier fields are left for /me.
func NewAuthResponse(r *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		Account: AccountResponse{
			ID:            r.Account.ID,
			Email:         r.Account.Email,
			Username:      r.Account.Username,
			Balance:       r.Account.Balance(),
			LifetimeSpend: r.Account.LifetimeSpend(),
			Level:         r.Account.Level,
		},
	}
}
