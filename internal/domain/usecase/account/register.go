package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// Register creates an account, credits the signup bonus and issues a token
func (u *AccountUseCase) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error) {
	if err := entity.ValidateRegistration(in.Email, in.Username, in.Password); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	accounts := u.uow.GetAccountRepository(ctx)

	// Check uniqueness up front for a precise message; the unique index still decides races
	if _, err := accounts.GetByEmail(ctx, email); err == nil {
		return nil, errs.WrapValidationError("email", "is already registered", errs.ErrDuplicateAccount)
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}
	if _, err := accounts.GetByUsername(ctx, username); err == nil {
		return nil, errs.WrapValidationError("username", "is already taken", errs.ErrDuplicateAccount)
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	acct, err := entity.NewAccount(u.ids.NewID(coreport.PrefixAccount), email, username, hash, u.openingBalance, u.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	acct, err = u.ledger.OpenAccount(ctx, acct)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := u.tokens.Issue(acct.ID)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"account_id": acct.ID,
			"error":      err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	u.logger.Info("Account registered", map[string]any{
		"account_id": acct.ID,
		"username":   acct.Username,
	})

	return &usecase.AuthResult{Account: acct, Token: token, ExpiresAt: expiresAt}, nil
}
