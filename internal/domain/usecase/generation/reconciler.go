package generation

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
)

// ReconcilerConfig tunes the recovery of unsettled reservations
type ReconcilerConfig struct {
	// After is the age at which a reservation with neither a delivered turn
	// nor a refund is refunded. It must exceed the longest generation plus
	// the refund budget, or a request still in flight could be refunded.
	After    time.Duration
	Interval time.Duration
	Batch    int
}

// DefaultReconcilerConfig returns the default recovery settings
func DefaultReconcilerConfig() ReconcilerConfig {
	return ReconcilerConfig{
		After:    15 * time.Minute,
		Interval: 5 * time.Minute,
		Batch:    100,
	}
}

// Reconciler refunds reservations whose request never settled, either because
// the compensating refund gave up or because the process stopped between the
// debit and the delivery
type Reconciler struct {
	uow    persistence.UnitOfWork
	ledger usecase.LedgerUseCase
	clock  coreport.TimeProvider
	logger coreport.Logger
	cfg    ReconcilerConfig

	stopOnce sync.Once
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewReconciler creates a new reconciler
func NewReconciler(uow persistence.UnitOfWork, ledger usecase.LedgerUseCase, clock coreport.TimeProvider, logger coreport.Logger, cfg ReconcilerConfig) *Reconciler {
	defaults := DefaultReconcilerConfig()
	if cfg.After <= 0 {
		cfg.After = defaults.After
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.Batch <= 0 {
		cfg.Batch = defaults.Batch
	}

	return &Reconciler{
		uow:    uow,
		ledger: ledger,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
	}
}

// Sweep refunds every unsettled reservation older than the configured age and
// returns how many it refunded. A reservation whose refund fails is logged
// and picked up again by the next sweep.
func (r *Reconciler) Sweep(ctx context.Context) (int, error) {
	cutoff := r.clock.Now().Add(-r.cfg.After)
	repo := r.uow.GetReservationRepository(ctx)

	refunded := 0
	for {
		entries, err := repo.ListUnsettled(ctx, cutoff, r.cfg.Batch)
		if err != nil {
			return refunded, fmt.Errorf("list unsettled reservations: %w", err)
		}

		progressed := false
		for _, entry := range entries {
			res, err := r.ledger.Refund(ctx, entry.AccountID, entry.Magnitude(), "Refund for unsettled generation", entry.Reference)
			if err != nil {
				if ctx.Err() != nil {
					return refunded, ctx.Err()
				}
				r.logger.Error("Failed to refund unsettled reservation", map[string]any{
					"reservation_id": entry.Reference,
					"account_id":     entry.AccountID,
					"amount":         entry.Magnitude(),
					"error":          err.Error(),
				})
				continue
			}

			progressed = true
			if !res.Duplicate {
				refunded++
				r.logger.Warn("Unsettled reservation refunded", map[string]any{
					"reservation_id": entry.Reference,
					"account_id":     entry.AccountID,
					"amount":         entry.Magnitude(),
					"debited_at":     entry.CreatedAt,
				})
			}
		}

		if !progressed || len(entries) < r.cfg.Batch {
			return refunded, nil
		}
	}
}

// Start sweeps immediately and then every interval until Stop is called or
// ctx is done
func (r *Reconciler) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()
		for {
			if _, err := r.Sweep(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("Reservation sweep failed", map[string]any{"error": err.Error()})
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the running sweep and waits for it. Safe to call more than once.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() {
		if r.cancel == nil {
			return
		}
		r.cancel()
		<-r.done
	})
}
