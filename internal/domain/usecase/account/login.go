package account

import (
	"context"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// Login verifies credentials and issues a token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	acct, err := u.uow.GetAccountRepository(ctx).GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	if err := u.hasher.Compare(acct.PasswordHash, password); err != nil {
		u.logger.Info("Login rejected", map[string]any{"account_id": acct.ID})
		return nil, errs.ErrUnauthenticated
	}

	token, expiresAt, err := u.tokens.Issue(acct.ID)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	return &usecase.AuthResult{Account: acct, Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate resolves a bearer token to the id of an existing account
func (u *AccountUseCase) Authenticate(ctx context.Context, token string) (string, error) {
	accountID, err := u.tokens.Resolve(token)
	if err != nil {
		return "", errs.ErrInvalidToken
	}

	if _, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, accountID); err != nil {
		if errs.IsNotFoundError(err) {
			return "", errs.ErrInvalidToken
		}
		return "", err
	}

	return accountID, nil
}
