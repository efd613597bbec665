package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
)

// AccountRepository is the in-memory account store
type AccountRepository struct{ store *Store }

func copyAccount(a *entity.Account) *entity.Account {
	cp := *a
	return &cp
}

func findAccount(d *state, match func(a *entity.Account) bool) (int, *entity.Account) {
	for i, a := range d.accounts {
		if match(a) {
			return i, a
		}
	}
	return -1, nil
}

// Create saves a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.store.run(ctx, func(d *state) error {
		_, existing := findAccount(d, func(a *entity.Account) bool {
			return a.ID == account.ID || a.Email == account.Email || a.Username == account.Username
		})
		if existing != nil {
			return errs.ErrDuplicateAccount
		}
		d.accounts = append(d.accounts, copyAccount(account))
		return nil
	})
}

func (r *AccountRepository) get(ctx context.Context, match func(a *entity.Account) bool) (*entity.Account, error) {
	var out *entity.Account
	err := r.store.run(ctx, func(d *state) error {
		_, a := findAccount(d, match)
		if a == nil {
			return errs.ErrAccountNotFound
		}
		out = copyAccount(a)
		return nil
	})
	return out, err
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.get(ctx, func(a *entity.Account) bool { return a.ID == id })
}

// GetByIDForUpdate retrieves an account inside a unit of work, which already holds the store lock
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Account, error) {
	if r.store.activeTx(ctx) == nil {
		return nil, errs.ErrNoTransaction
	}
	return r.GetByID(ctx, id)
}

// GetByEmail retrieves an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	email = entity.NormalizeEmail(email)
	return r.get(ctx, func(a *entity.Account) bool { return a.Email == email })
}

// GetByUsername retrieves an account by username
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.get(ctx, func(a *entity.Account) bool { return a.Username == username })
}

// UpdateLedgerState persists the ledger fields of the account
func (r *AccountRepository) UpdateLedgerState(ctx context.Context, account *entity.Account) error {
	return r.store.run(ctx, func(d *state) error {
		i, _ := findAccount(d, func(a *entity.Account) bool { return a.ID == account.ID })
		if i < 0 {
			return errs.ErrAccountNotFound
		}
		d.accounts[i] = copyAccount(account)
		return nil
	})
}

// Delete removes the account and everything it owns
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return r.store.run(ctx, func(d *state) error {
		i, _ := findAccount(d, func(a *entity.Account) bool { return a.ID == id })
		if i < 0 {
			return errs.ErrAccountNotFound
		}

		owned := map[string]bool{}
		for _, p := range d.personas {
			if p.AccountID == id {
				owned[p.ID] = true
			}
		}

		d.images = slices.DeleteFunc(d.images, func(img *entity.GeneratedImage) bool { return img.AccountID == id })
		d.turns = slices.DeleteFunc(d.turns, func(t *entity.ConversationTurn) bool { return owned[t.PersonaID] })
		d.personas = slices.DeleteFunc(d.personas, func(p *entity.Persona) bool { return p.AccountID == id })
		d.fulfillments = slices.DeleteFunc(d.fulfillments, func(f *entity.Fulfillment) bool { return f.AccountID == id })
		d.transactions = slices.DeleteFunc(d.transactions, func(t *entity.Transaction) bool { return t.AccountID == id })
		d.accounts = slices.Delete(d.accounts, i, i+1)
		return nil
	})
}

// TransactionRepository is the in-memory transaction log
type TransactionRepository struct{ store *Store }

// Create appends a transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.store.run(ctx, func(d *state) error {
		for _, t := range d.transactions {
			if t.ID == transaction.ID {
				return errs.ErrDuplicateEntry
			}
			if transaction.Reference != "" && t.Kind == transaction.Kind && t.Reference == transaction.Reference {
				return errs.ErrDuplicateTransaction
			}
		}
		cp := *transaction
		d.transactions = append(d.transactions, &cp)
		return nil
	})
}

// FindByReference returns the entry of kind carrying reference
func (r *TransactionRepository) FindByReference(ctx context.Context, kind entity.TransactionKind, reference string) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := r.store.run(ctx, func(d *state) error {
		for _, t := range d.transactions {
			if t.Kind == kind && t.Reference == reference {
				cp := *t
				out = &cp
				return nil
			}
		}
		return errs.ErrTransactionNotFound
	})
	return out, err
}

// ListByAccount returns entries newest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, p entity.Page) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.store.run(ctx, func(d *state) error {
		var mine []*entity.Transaction
		for _, t := range d.transactions {
			if t.AccountID == accountID {
				mine = append(mine, t)
			}
		}
		out = page(reversed(mine), p)
		return nil
	})
	return out, err
}

// SumByAccount sums the signed amounts of the account
func (r *TransactionRepository) SumByAccount(ctx context.Context, accountID string) (int64, error) {
	var sum int64
	err := r.store.run(ctx, func(d *state) error {
		for _, t := range d.transactions {
			if t.AccountID == accountID {
				sum += t.Amount
			}
		}
		return nil
	})
	return sum, err
}

// PersonaRepository is the in-memory persona store
type PersonaRepository struct{ store *Store }

// Create saves a persona
func (r *PersonaRepository) Create(ctx context.Context, persona *entity.Persona) error {
	return r.store.run(ctx, func(d *state) error {
		for _, p := range d.personas {
			if p.ID == persona.ID {
				return errs.ErrDuplicateEntry
			}
		}
		cp := *persona
		d.personas = append(d.personas, &cp)
		return nil
	})
}

// GetOwned retrieves a persona owned by accountID
func (r *PersonaRepository) GetOwned(ctx context.Context, accountID, personaID string) (*entity.Persona, error) {
	var out *entity.Persona
	err := r.store.run(ctx, func(d *state) error {
		for _, p := range d.personas {
			if p.ID == personaID && p.AccountID == accountID {
				cp := *p
				out = &cp
				return nil
			}
		}
		return errs.ErrPersonaNotFound
	})
	return out, err
}

// ListByAccount returns personas newest first
func (r *PersonaRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Persona, error) {
	var out []*entity.Persona
	err := r.store.run(ctx, func(d *state) error {
		for _, p := range reversed(d.personas) {
			if p.AccountID == accountID {
				cp := *p
				out = append(out, &cp)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return nil
	})
	return out, err
}

// Delete removes an owned persona with its turns and images
func (r *PersonaRepository) Delete(ctx context.Context, accountID, personaID string) error {
	return r.store.run(ctx, func(d *state) error {
		i := slices.IndexFunc(d.personas, func(p *entity.Persona) bool {
			return p.ID == personaID && p.AccountID == accountID
		})
		if i < 0 {
			return errs.ErrPersonaNotFound
		}
		d.turns = slices.DeleteFunc(d.turns, func(t *entity.ConversationTurn) bool { return t.PersonaID == personaID })
		d.images = slices.DeleteFunc(d.images, func(img *entity.GeneratedImage) bool { return img.PersonaID == personaID })
		d.personas = slices.Delete(d.personas, i, i+1)
		return nil
	})
}

// IncrementImageCount bumps the delivered image counter
func (r *PersonaRepository) IncrementImageCount(ctx context.Context, personaID string) error {
	return r.store.run(ctx, func(d *state) error {
		for _, p := range d.personas {
			if p.ID == personaID {
				p.ImagesGenerated++
				return nil
			}
		}
		return errs.ErrPersonaNotFound
	})
}

// ConversationRepository is the in-memory turn log
type ConversationRepository struct{ store *Store }

// Append saves a turn
func (r *ConversationRepository) Append(ctx context.Context, turn *entity.ConversationTurn) error {
	return r.store.run(ctx, func(d *state) error {
		cp := *turn
		d.turns = append(d.turns, &cp)
		return nil
	})
}

func (r *ConversationRepository) forPersona(d *state, personaID string) []*entity.ConversationTurn {
	var out []*entity.ConversationTurn
	for _, t := range d.turns {
		if t.PersonaID == personaID {
			out = append(out, t)
		}
	}
	return out
}

// ListRecent returns the last limit turns, oldest first
func (r *ConversationRepository) ListRecent(ctx context.Context, personaID string, limit int) ([]*entity.ConversationTurn, error) {
	var out []*entity.ConversationTurn
	err := r.store.run(ctx, func(d *state) error {
		turns := r.forPersona(d, personaID)
		if limit > 0 && len(turns) > limit {
			turns = turns[len(turns)-limit:]
		}
		out = append([]*entity.ConversationTurn(nil), turns...)
		return nil
	})
	return out, err
}

// ListPage returns turns oldest first
func (r *ConversationRepository) ListPage(ctx context.Context, personaID string, p entity.Page) ([]*entity.ConversationTurn, error) {
	var out []*entity.ConversationTurn
	err := r.store.run(ctx, func(d *state) error {
		out = page(r.forPersona(d, personaID), p)
		return nil
	})
	return out, err
}

// ImageRepository is the in-memory gallery
type ImageRepository struct{ store *Store }

// Create saves an image
func (r *ImageRepository) Create(ctx context.Context, image *entity.GeneratedImage) error {
	return r.store.run(ctx, func(d *state) error {
		cp := *image
		d.images = append(d.images, &cp)
		return nil
	})
}

// ListByAccount returns images newest first
func (r *ImageRepository) ListByAccount(ctx context.Context, accountID, personaID string, p entity.Page) ([]*entity.GeneratedImage, error) {
	var out []*entity.GeneratedImage
	err := r.store.run(ctx, func(d *state) error {
		var mine []*entity.GeneratedImage
		for _, img := range reversed(d.images) {
			if img.AccountID == accountID && (personaID == "" || img.PersonaID == personaID) {
				cp := *img
				mine = append(mine, &cp)
			}
		}
		out = page(mine, p)
		return nil
	})
	return out, err
}

// ToggleLike flips the liked flag of an owned image
func (r *ImageRepository) ToggleLike(ctx context.Context, accountID, imageID string) (bool, error) {
	var liked bool
	err := r.store.run(ctx, func(d *state) error {
		for _, img := range d.images {
			if img.ID == imageID && img.AccountID == accountID {
				img.Liked = !img.Liked
				liked = img.Liked
				return nil
			}
		}
		return errs.ErrImageNotFound
	})
	return liked, err
}

// PackageRepository serves the seeded catalogue
type PackageRepository struct{ store *Store }

// ListActive returns active packages by sort order
func (r *PackageRepository) ListActive(ctx context.Context) ([]*entity.CreditPackage, error) {
	var out []*entity.CreditPackage
	err := r.store.run(ctx, func(d *state) error {
		for _, p := range d.packages {
			if p.Active {
				cp := *p
				out = append(out, &cp)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
		return nil
	})
	return out, err
}

// GetActive returns an active package
func (r *PackageRepository) GetActive(ctx context.Context, id string) (*entity.CreditPackage, error) {
	var out *entity.CreditPackage
	err := r.store.run(ctx, func(d *state) error {
		for _, p := range d.packages {
			if p.ID == id && p.Active {
				cp := *p
				out = &cp
				return nil
			}
		}
		return errs.ErrPackageNotFound
	})
	return out, err
}

// PaymentEventRepository retains payment events
type PaymentEventRepository struct{ store *Store }

// Record stores the event once per event id
func (r *PaymentEventRepository) Record(ctx context.Context, event *entity.PaymentEvent) (bool, error) {
	inserted := false
	err := r.store.run(ctx, func(d *state) error {
		for _, e := range d.events {
			if e.ID == event.ID {
				return nil
			}
		}
		cp := *event
		d.events = append(d.events, &cp)
		inserted = true
		return nil
	})
	return inserted, err
}

// ReservationRepository tracks delivered reservations
type ReservationRepository struct{ store *Store }

// MarkFulfilled records a delivered reservation once
func (r *ReservationRepository) MarkFulfilled(ctx context.Context, fulfillment *entity.Fulfillment) error {
	return r.store.run(ctx, func(d *state) error {
		for _, f := range d.fulfillments {
			if f.ReservationID == fulfillment.ReservationID {
				return errs.ErrDuplicateEntry
			}
		}
		cp := *fulfillment
		d.fulfillments = append(d.fulfillments, &cp)
		return nil
	})
}

// ListUnsettled returns old usage entries with neither a refund nor a fulfillment, oldest first
func (r *ReservationRepository) ListUnsettled(ctx context.Context, before time.Time, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.store.run(ctx, func(d *state) error {
		settled := map[string]bool{}
		for _, f := range d.fulfillments {
			settled[f.ReservationID] = true
		}
		for _, t := range d.transactions {
			if t.Kind == entity.KindRefund && t.Reference != "" {
				settled[t.Reference] = true
			}
		}

		for _, t := range d.transactions {
			if t.Kind != entity.KindUsage || t.Reference == "" || settled[t.Reference] || !t.CreatedAt.Before(before) {
				continue
			}
			cp := *t
			out = append(out, &cp)
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}
