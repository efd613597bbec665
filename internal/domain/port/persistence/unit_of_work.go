package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Repositories bound to the transaction carried by ctx, if any
	GetAccountRepository(ctx context.Context) AccountRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetPersonaRepository(ctx context.Context) PersonaRepository
	GetConversationRepository(ctx context.Context) ConversationRepository
	GetImageRepository(ctx context.Context) ImageRepository
	GetPackageRepository(ctx context.Context) PackageRepository
	GetPaymentEventRepository(ctx context.Context) PaymentEventRepository
	GetReservationRepository(ctx context.Context) ReservationRepository
}

// Transact runs fn inside a unit of work. The work is committed when fn
// returns nil and rolled back otherwise, including when fn panics.
func Transact(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = uow.Rollback(txCtx)
			panic(r)
		}
	}()

	if err = fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}

	return uow.Commit(txCtx)
}
