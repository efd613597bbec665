package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
)

// RegisterInput holds signup credentials
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// AuthResult is returned after a successful signup or login
type AuthResult struct {
	Account   *entity.Account
	Token     string
	ExpiresAt time.Time
}

// AccountUseCase manages registration, authentication and account lifecycle
type AccountUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Authenticate resolves a bearer token to an existing account id
	Authenticate(ctx context.Context, token string) (string, error)

	Me(ctx context.Context, accountID string) (*AccountSummary, error)
	Delete(ctx context.Context, accountID string) error
}
