// Package memory is an in-process persistence adapter. A unit of work holds
// the store lock from Begin until Commit or Rollback, so all units of work
// are serialized and a rollback restores the snapshot taken at Begin.
package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
)

type txKey struct{}

type memTx struct {
	store  *Store
	backup *state
	done   bool
}

type state struct {
	accounts     []*entity.Account
	transactions []*entity.Transaction
	personas     []*entity.Persona
	turns        []*entity.ConversationTurn
	images       []*entity.GeneratedImage
	packages     []*entity.CreditPackage
	events       []*entity.PaymentEvent
	fulfillments []*entity.Fulfillment
}

func (s *state) clone() *state {
	c := &state{
		accounts:     make([]*entity.Account, len(s.accounts)),
		transactions: append([]*entity.Transaction(nil), s.transactions...),
		personas:     make([]*entity.Persona, len(s.personas)),
		turns:        append([]*entity.ConversationTurn(nil), s.turns...),
		images:       make([]*entity.GeneratedImage, len(s.images)),
		packages:     append([]*entity.CreditPackage(nil), s.packages...),
		events:       append([]*entity.PaymentEvent(nil), s.events...),
		fulfillments: append([]*entity.Fulfillment(nil), s.fulfillments...),
	}
	// mutable records are copied, append-only ones are shared
	for i, a := range s.accounts {
		cp := *a
		c.accounts[i] = &cp
	}
	for i, p := range s.personas {
		cp := *p
		c.personas[i] = &cp
	}
	for i, img := range s.images {
		cp := *img
		c.images[i] = &cp
	}
	return c
}

// Store holds all records in memory
type Store struct {
	mu   sync.Mutex
	data *state
}

// NewStore creates an empty store seeded with the given credit packages
func NewStore(packages ...entity.CreditPackage) *Store {
	s := &Store{data: &state{}}
	for i := range packages {
		pkg := packages[i]
		s.data.packages = append(s.data.packages, &pkg)
	}
	return s
}

func (s *Store) activeTx(ctx context.Context) *memTx {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	if !ok || tx.store != s || tx.done {
		return nil
	}
	return tx
}

// run executes fn against the store state, taking the lock unless ctx carries
// this store's unit of work, which already holds it
func (s *Store) run(ctx context.Context, fn func(d *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.activeTx(ctx) != nil {
		return fn(s.data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// UnitOfWork implements persistence.UnitOfWork over a Store
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork creates a unit of work for the store
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin locks the store and snapshots its state
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if u.store.activeTx(ctx) != nil {
		return ctx, errs.ErrNestedTransaction
	}
	if err := ctx.Err(); err != nil {
		return ctx, err
	}

	u.store.mu.Lock()
	tx := &memTx{store: u.store, backup: u.store.data.clone()}
	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit keeps the changes and releases the store
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := u.store.activeTx(ctx)
	if tx == nil {
		return errs.ErrNoTransaction
	}
	tx.done = true
	tx.backup = nil
	u.store.mu.Unlock()
	return nil
}

// Rollback restores the snapshot and releases the store
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := u.store.activeTx(ctx)
	if tx == nil {
		return errs.ErrNoTransaction
	}
	u.store.data = tx.backup
	tx.done = true
	u.store.mu.Unlock()
	return nil
}

// GetAccountRepository returns the account repository
func (u *UnitOfWork) GetAccountRepository(_ context.Context) persistence.AccountRepository {
	return &AccountRepository{store: u.store}
}

// GetTransactionRepository returns the transaction repository
func (u *UnitOfWork) GetTransactionRepository(_ context.Context) persistence.TransactionRepository {
	return &TransactionRepository{store: u.store}
}

// GetPersonaRepository returns the persona repository
func (u *UnitOfWork) GetPersonaRepository(_ context.Context) persistence.PersonaRepository {
	return &PersonaRepository{store: u.store}
}

// GetConversationRepository returns the conversation repository
func (u *UnitOfWork) GetConversationRepository(_ context.Context) persistence.ConversationRepository {
	return &ConversationRepository{store: u.store}
}

// GetImageRepository returns the image repository
func (u *UnitOfWork) GetImageRepository(_ context.Context) persistence.ImageRepository {
	return &ImageRepository{store: u.store}
}

// GetPackageRepository returns the package repository
func (u *UnitOfWork) GetPackageRepository(_ context.Context) persistence.PackageRepository {
	return &PackageRepository{store: u.store}
}

// GetPaymentEventRepository returns the payment event repository
func (u *UnitOfWork) GetPaymentEventRepository(_ context.Context) persistence.PaymentEventRepository {
	return &PaymentEventRepository{store: u.store}
}

// GetReservationRepository returns the reservation repository
func (u *UnitOfWork) GetReservationRepository(_ context.Context) persistence.ReservationRepository {
	return &ReservationRepository{store: u.store}
}

func page[T any](items []T, p entity.Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return append([]T(nil), items[p.Offset:end]...)
}

func reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}
	return out
}
