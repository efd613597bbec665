package account

import (
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// AccountUseCase implements registration, authentication and account lifecycle
type AccountUseCase struct {
	uow            persistence.UnitOfWork
	ledger         usecase.LedgerUseCase
	hasher         gateway.PasswordHasher
	tokens         gateway.TokenIssuer
	ids            coreport.IDGenerator
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	openingBalance int64
}

// NewAccountUseCase creates a new account use case instance
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	hasher gateway.PasswordHasher,
	tokens gateway.TokenIssuer,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	openingBalance int64,
) *AccountUseCase {
	return &AccountUseCase{
		uow:            uow,
		ledger:         ledger,
		hasher:         hasher,
		tokens:         tokens,
		ids:            ids,
		timeProvider:   timeProvider,
		logger:         logger,
		openingBalance: openingBalance,
	}
}

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)
