package account

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// Me returns the account summary with its persona count
func (u *AccountUseCase) Me(ctx context.Context, accountID string) (*usecase.AccountSummary, error) {
	var summary *usecase.AccountSummary
	var personas int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = u.ledger.Summary(gctx, accountID)
		return err
	})
	g.Go(func() error {
		list, err := u.uow.GetPersonaRepository(gctx).ListByAccount(gctx, accountID)
		personas = len(list)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.Personas = personas
	return summary, nil
}

// Delete removes the account and everything it owns
func (u *AccountUseCase) Delete(ctx context.Context, accountID string) error {
	err := persistence.Transact(ctx, u.uow, func(txCtx context.Context) error {
		return u.uow.GetAccountRepository(txCtx).Delete(txCtx, accountID)
	})
	if err != nil {
		return err
	}

	u.logger.Info("Account deleted", map[string]any{"account_id": accountID})
	return nil
}
