package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/pricing"
)

// History page bounds
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Ledger outcomes reported to metrics
const (
	OutcomeApplied   = "applied"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// RetryPolicy bounds the retries of a ledger unit of work that lost a lock or
// serialization race. Nothing is committed by a failed attempt.
type RetryPolicy struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy is used unless WithRetryPolicy is called
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxTries:        5,
		InitialInterval: 20 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
	}
}

// Service is the single owner of account balances.
// Every mutation locks the account row, applies the change and appends
// its transaction in one unit of work.
type Service struct {
	uow     persistence.UnitOfWork
	pricing *pricing.Pricing
	ids     coreport.IDGenerator
	clock   coreport.TimeProvider
	logger  coreport.Logger
	metrics coreport.Metrics
	retry   RetryPolicy
}

// NewService creates a new ledger service
func NewService(
	uow persistence.UnitOfWork,
	prices *pricing.Pricing,
	ids coreport.IDGenerator,
	clock coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *Service {
	return &Service{
		uow:     uow,
		pricing: prices,
		ids:     ids,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
		retry:   DefaultRetryPolicy(),
	}
}

// WithRetryPolicy overrides the retry policy
func (s *Service) WithRetryPolicy(p RetryPolicy) *Service {
	if p.MaxTries == 0 {
		p.MaxTries = 1
	}
	s.retry = p
	return s
}

// mutation describes one ledger entry and the entity change that produces it
type mutation struct {
	accountID   string
	kind        entity.TransactionKind
	amount      int64
	description string
	reference   string
	apply       func(acct *entity.Account, now time.Time) error
}

// idempotent reports whether a second mutation with the same reference must be a no-op
func (m mutation) idempotent() bool {
	return m.reference != "" && m.kind != entity.KindUsage
}

func (s *Service) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.InitialInterval
	b.MaxInterval = s.retry.MaxInterval
	return b
}

// execute runs m in a unit of work, retrying only lock and serialization conflicts
func (s *Service) execute(ctx context.Context, m mutation) (*usecase.LedgerResult, error) {
	operation := func() (*usecase.LedgerResult, error) {
		res, err := s.attempt(ctx, m)
		if err == nil {
			return res, nil
		}
		if errs.IsConcurrentUpdateError(err) {
			s.logger.Debug("Ledger conflict, retrying", map[string]any{
				"account_id": m.accountID,
				"kind":       string(m.kind),
			})
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	res, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(s.retry.MaxTries),
	)

	// a concurrent writer inserted the same reference first
	if err != nil && m.idempotent() && errors.Is(err, errs.ErrDuplicateTransaction) {
		res, err = s.duplicateResult(ctx, m)
	}

	switch {
	case err == nil && res.Duplicate:
		s.metrics.LedgerOperation(string(m.kind), OutcomeDuplicate, m.amount)
		s.logger.Info("Ledger reference already applied", map[string]any{
			"account_id":     m.accountID,
			"kind":           string(m.kind),
			"reference":      m.reference,
			"transaction_id": res.Transaction.ID,
		})
	case err == nil:
		s.metrics.LedgerOperation(string(m.kind), OutcomeApplied, m.amount)
		s.logger.Info("Ledger entry applied", map[string]any{
			"account_id":     m.accountID,
			"kind":           string(m.kind),
			"amount":         res.Transaction.Amount,
			"balance_after":  res.Transaction.BalanceAfter,
			"transaction_id": res.Transaction.ID,
		})
	case errs.IsInsufficientFundsError(err) || errs.IsValidationError(err) || errs.IsNotFoundError(err):
		s.metrics.LedgerOperation(string(m.kind), OutcomeRejected, m.amount)
		fields := map[string]any{"account_id": m.accountID, "kind": string(m.kind), "amount": m.amount}
		var loggable coreport.LoggableError
		if errors.As(err, &loggable) {
			for k, v := range loggable.LogFields() {
				fields[k] = v
			}
		}
		s.logger.Warn("Ledger entry rejected", fields)
	default:
		s.metrics.LedgerOperation(string(m.kind), OutcomeFailed, m.amount)
		s.logger.Error("Ledger entry failed", map[string]any{
			"account_id": m.accountID,
			"kind":       string(m.kind),
			"amount":     m.amount,
			"reference":  m.reference,
			"error":      err.Error(),
		})
	}

	return res, err
}

func (s *Service) attempt(ctx context.Context, m mutation) (*usecase.LedgerResult, error) {
	var res *usecase.LedgerResult

	err := persistence.Transact(ctx, s.uow, func(txCtx context.Context) error {
		accounts := s.uow.GetAccountRepository(txCtx)
		txns := s.uow.GetTransactionRepository(txCtx)

		acct, err := accounts.GetByIDForUpdate(txCtx, m.accountID)
		if err != nil {
			return err
		}

		if m.idempotent() {
			existing, err := txns.FindByReference(txCtx, m.kind, m.reference)
			if err == nil {
				res = &usecase.LedgerResult{Account: acct, Transaction: existing, Duplicate: true}
				return nil
			}
			if !errors.Is(err, errs.ErrTransactionNotFound) {
				return err
			}
		}

		now := s.clock.Now()
		if err := m.apply(acct, now); err != nil {
			return err
		}
		acct.Level = s.pricing.LevelTable().Level(acct.LifetimeSpend())

		if err := accounts.UpdateLedgerState(txCtx, acct); err != nil {
			return err
		}

		txn, err := entity.NewTransaction(
			s.ids.NewID(coreport.PrefixTransaction),
			acct.ID, m.kind, m.amount, m.description, m.reference, acct.Balance(), now,
		)
		if err != nil {
			return err
		}
		if err := txns.Create(txCtx, txn); err != nil {
			return err
		}

		res = &usecase.LedgerResult{Account: acct, Transaction: txn}
		return nil
	})

	return res, err
}

func (s *Service) duplicateResult(ctx context.Context, m mutation) (*usecase.LedgerResult, error) {
	existing, err := s.uow.GetTransactionRepository(ctx).FindByReference(ctx, m.kind, m.reference)
	if err != nil {
		return nil, err
	}
	acct, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, m.accountID)
	if err != nil {
		return nil, err
	}
	return &usecase.LedgerResult{Account: acct, Transaction: existing, Duplicate: true}, nil
}

// Credit adds credits with an entry of a crediting kind
func (s *Service) Credit(ctx context.Context, accountID string, amount int64, kind entity.TransactionKind, description, reference string) (*usecase.LedgerResult, error) {
	if !kind.IsCredit() {
		return nil, errs.WrapValidationError("kind", fmt.Sprintf("%q does not add credits", kind), errs.ErrInvalidKind)
	}
	if kind == entity.KindRefund {
		return s.Refund(ctx, accountID, amount, description, reference)
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return s.execute(ctx, mutation{
		accountID:   accountID,
		kind:        kind,
		amount:      amount,
		description: description,
		reference:   reference,
		apply: func(acct *entity.Account, now time.Time) error {
			return acct.Credit(amount, now)
		},
	})
}

// Debit consumes credits. On InsufficientFundsError nothing is written.
func (s *Service) Debit(ctx context.Context, accountID string, amount int64, description, reference string) (*usecase.LedgerResult, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return s.execute(ctx, mutation{
		accountID:   accountID,
		kind:        entity.KindUsage,
		amount:      amount,
		description: description,
		reference:   reference,
		apply: func(acct *entity.Account, now time.Time) error {
			return acct.Debit(amount, now)
		},
	})
}

// Refund returns credits. Refunds sharing a reference are applied once.
func (s *Service) Refund(ctx context.Context, accountID string, amount int64, description, reference string) (*usecase.LedgerResult, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	reduceSpend := s.pricing.RefundReducesSpend()
	return s.execute(ctx, mutation{
		accountID:   accountID,
		kind:        entity.KindRefund,
		amount:      amount,
		description: description,
		reference:   reference,
		apply: func(acct *entity.Account, now time.Time) error {
			return acct.Refund(amount, reduceSpend, now)
		},
	})
}

// ApplyPurchase credits a purchase once per payment correlation id
func (s *Service) ApplyPurchase(ctx context.Context, accountID string, amount int64, correlationID, description string) (*usecase.LedgerResult, error) {
	if correlationID == "" {
		return nil, errs.NewValidationError("correlationId", "is required for purchases")
	}
	return s.Credit(ctx, accountID, amount, entity.KindPurchase, description, correlationID)
}

// OpenAccount persists account and credits the signup bonus in the same unit of work
func (s *Service) OpenAccount(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	bonus := s.pricing.SignupBonus()

	err := persistence.Transact(ctx, s.uow, func(txCtx context.Context) error {
		if bonus > 0 {
			if err := account.Credit(bonus, account.CreatedAt); err != nil {
				return err
			}
		}
		account.Level = s.pricing.LevelTable().Level(account.LifetimeSpend())

		if err := s.uow.GetAccountRepository(txCtx).Create(txCtx, account); err != nil {
			return err
		}
		if bonus == 0 {
			return nil
		}

		txn, err := entity.NewTransaction(
			s.ids.NewID(coreport.PrefixTransaction),
			account.ID, entity.KindSignupBonus, bonus, "Welcome bonus", account.ID, account.Balance(), account.CreatedAt,
		)
		if err != nil {
			return err
		}
		return s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn)
	})
	if err != nil {
		s.logger.Warn("Failed to open account", map[string]any{
			"account_id": account.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.metrics.LedgerOperation(string(entity.KindSignupBonus), OutcomeApplied, bonus)
	s.logger.Info("Account opened", map[string]any{
		"account_id": account.ID,
		"balance":    account.Balance(),
	})
	return account, nil
}

// Summary returns the balance view of an account
func (s *Service) Summary(ctx context.Context, accountID string) (*usecase.AccountSummary, error) {
	acct, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.Summarize(acct), nil
}

// Summarize derives the tier information of an already loaded account
func (s *Service) Summarize(acct *entity.Account) *usecase.AccountSummary {
	spend := acct.LifetimeSpend()
	summary := &usecase.AccountSummary{
		AccountID:     acct.ID,
		Email:         acct.Email,
		Username:      acct.Username,
		Balance:       acct.Balance(),
		LifetimeSpend: spend,
		Level:         s.pricing.LevelTable().Level(spend),
		UnlockTier:    s.pricing.UnlockTable().Level(spend),
	}
	if next, ok := s.pricing.LevelTable().Next(spend); ok {
		summary.NextLevelAt = &next.Spend
	}
	if next, ok := s.pricing.UnlockTable().Next(spend); ok {
		summary.NextUnlockAt = &next.Spend
	}
	return summary
}

// History returns transactions newest first
func (s *Service) History(ctx context.Context, accountID string, page entity.Page) ([]*entity.Transaction, error) {
	return s.uow.GetTransactionRepository(ctx).ListByAccount(ctx, accountID, page.Normalize(DefaultHistoryLimit, MaxHistoryLimit))
}
