package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/gate"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/pricing"
)

// Kinds of paid generation
const (
	KindText  = "text"
	KindImage = "image"
)

// Terminal states of a generation request
const (
	StateRejected   = "rejected"
	StateFulfilled  = "fulfilled"
	StateRolledBack = "rolled_back"
)

// MaxScenarioLength bounds the image scenario text
const MaxScenarioLength = 1000

// Config tunes the orchestrator
type Config struct {
	ContextWindow    int           // Turns handed to the responder
	ResponderTimeout time.Duration // Zero means the caller's deadline only
	ImageTimeout     time.Duration
	MirrorTimeout    time.Duration // Bounds copying a delivered image into owned storage
	RefundTimeout    time.Duration // Budget for the compensating refund, detached from the caller
	RefundMaxTries   uint
}

// DefaultConfig returns the default orchestrator settings
func DefaultConfig() Config {
	return Config{
		ContextWindow:    10,
		ResponderTimeout: 60 * time.Second,
		ImageTimeout:     180 * time.Second,
		MirrorTimeout:    60 * time.Second,
		RefundTimeout:    15 * time.Second,
		RefundMaxTries:   5,
	}
}

// Service reserves credits before calling a generator and refunds them when the
// call does not produce a delivered turn
type Service struct {
	uow       persistence.UnitOfWork
	ledger    usecase.LedgerUseCase
	gate      *gate.Gate
	pricing   *pricing.Pricing
	responder gateway.Responder
	images    gateway.ImageProvider
	mirror    gateway.ImageStore
	ids       coreport.IDGenerator
	clock     coreport.TimeProvider
	logger    coreport.Logger
	metrics   coreport.Metrics
	cfg       Config
}

// NewService creates a new generation orchestrator
func NewService(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	prices *pricing.Pricing,
	responder gateway.Responder,
	images gateway.ImageProvider,
	ids coreport.IDGenerator,
	clock coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	cfg Config,
) *Service {
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = DefaultConfig().ContextWindow
	}
	if cfg.RefundTimeout <= 0 {
		cfg.RefundTimeout = DefaultConfig().RefundTimeout
	}
	if cfg.MirrorTimeout <= 0 {
		cfg.MirrorTimeout = DefaultConfig().MirrorTimeout
	}
	if cfg.RefundMaxTries == 0 {
		cfg.RefundMaxTries = DefaultConfig().RefundMaxTries
	}

	return &Service{
		uow:       uow,
		ledger:    ledger,
		gate:      gate.NewGate(prices),
		pricing:   prices,
		responder: responder,
		images:    images,
		ids:       ids,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
		cfg:       cfg,
	}
}

// WithImageStore mirrors delivered images into owned storage
func (s *Service) WithImageStore(store gateway.ImageStore) *Service {
	s.mirror = store
	return s
}

// reservation is a committed debit awaiting fulfilment
type reservation struct {
	id        string
	kind      string
	accountID string
	amount    int64
	balance   int64
	fulfilled bool
}

func (s *Service) reserve(ctx context.Context, kind, accountID string, amount int64, description string) (*reservation, error) {
	id := s.ids.NewID(coreport.PrefixReservation)

	res, err := s.ledger.Debit(ctx, accountID, amount, description, id)
	if err != nil {
		s.metrics.GenerationOutcome(kind, StateRejected)
		return nil, err
	}

	return &reservation{
		id:        id,
		kind:      kind,
		accountID: accountID,
		amount:    amount,
		balance:   res.Account.Balance(),
	}, nil
}

// settle runs deferred after a reservation. An unfulfilled reservation,
// including one interrupted by a panic, is refunded and reported as a
// GenerationFailedError.
func (s *Service) settle(ctx context.Context, r *reservation, errp *error) {
	recovered := recover()
	if recovered == nil && r.fulfilled {
		s.metrics.GenerationOutcome(r.kind, StateFulfilled)
		return
	}

	cause := *errp
	if recovered != nil {
		cause = fmt.Errorf("panic during %s generation: %v", r.kind, recovered)
	}
	if cause == nil {
		cause = errors.New("generation did not complete")
	}

	refunded := s.compensate(ctx, r, cause)
	s.metrics.GenerationOutcome(r.kind, StateRolledBack)

	if recovered != nil {
		panic(recovered)
	}
	*errp = errs.NewGenerationFailedError(r.kind, r.id, refunded, cause)
}

// compensate refunds r on a context that survives the caller's cancellation
func (s *Service) compensate(ctx context.Context, r *reservation, cause error) bool {
	refundCtx, cancel := s.clock.WithTimeout(context.WithoutCancel(ctx), coreport.Duration(s.cfg.RefundTimeout))
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 2 * time.Second

	description := fmt.Sprintf("Refund for failed %s generation", r.kind)
	_, err := backoff.Retry(refundCtx, func() (*usecase.LedgerResult, error) {
		res, err := s.ledger.Refund(refundCtx, r.accountID, r.amount, description, r.id)
		if err != nil && (errs.IsValidationError(err) || errs.IsNotFoundError(err)) {
			return nil, backoff.Permanent(err)
		}
		return res, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(s.cfg.RefundMaxTries))

	if err != nil {
		s.logger.Error("Refund failed, reservation left unsettled", map[string]any{
			"reservation_id": r.id,
			"account_id":     r.accountID,
			"amount":         r.amount,
			"kind":           r.kind,
			"cause":          cause.Error(),
			"error":          err.Error(),
		})
		return false
	}

	s.logger.Warn("Generation failed, reservation refunded", map[string]any{
		"reservation_id": r.id,
		"account_id":     r.accountID,
		"amount":         r.amount,
		"kind":           r.kind,
		"cause":          cause.Error(),
	})
	return true
}

// fulfil marks r delivered in the unit of work that stores its turn
func (s *Service) fulfil(txCtx context.Context, r *reservation, now time.Time) error {
	return s.uow.GetReservationRepository(txCtx).MarkFulfilled(txCtx, &entity.Fulfillment{
		ReservationID: r.id,
		AccountID:     r.accountID,
		Kind:          r.kind,
		CreatedAt:     now,
	})
}

func (s *Service) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return s.clock.WithTimeout(ctx, coreport.Duration(d))
}

// SendMessage charges the text cost, stores the user's turn and returns the persona's reply
func (s *Service) SendMessage(ctx context.Context, accountID, personaID, text string) (result *usecase.MessageResult, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.NewValidationError("message", "must not be empty")
	}
	if len(text) > entity.MaxMessageLength {
		return nil, errs.NewValidationError("message", fmt.Sprintf("must be at most %d characters", entity.MaxMessageLength))
	}

	persona, err := s.uow.GetPersonaRepository(ctx).GetOwned(ctx, accountID, personaID)
	if err != nil {
		return nil, err
	}

	cost := s.pricing.TextCost()
	r, err := s.reserve(ctx, KindText, accountID, cost, fmt.Sprintf("Message to %s", persona.Name))
	if err != nil {
		return nil, err
	}
	defer s.settle(ctx, r, &err)

	turns := s.uow.GetConversationRepository(ctx)
	userTurn := entity.NewUserTurn(s.ids.NewID(coreport.PrefixMessage), persona.ID, text, s.clock.Now())
	if err := turns.Append(ctx, userTurn); err != nil {
		return nil, fmt.Errorf("store user turn: %w", err)
	}

	recent, err := turns.ListRecent(ctx, persona.ID, s.cfg.ContextWindow)
	if err != nil {
		return nil, fmt.Errorf("load context window: %w", err)
	}

	callCtx, cancel := s.withTimeout(ctx, s.cfg.ResponderTimeout)
	defer cancel()

	started := s.clock.Now()
	reply, err := s.responder.Reply(callCtx, Directive(persona.Context()), contextWindow(recent))
	s.metrics.ObserveGeneration(KindText, s.clock.Since(started))
	if err != nil {
		return nil, fmt.Errorf("responder: %w", err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, errors.New("responder returned an empty reply")
	}

	replyTurn := entity.NewReplyTurn(s.ids.NewID(coreport.PrefixMessage), persona.ID, reply, cost, s.clock.Now())
	// the reply is paid for, keep it even if the caller went away
	err = persistence.Transact(context.WithoutCancel(ctx), s.uow, func(txCtx context.Context) error {
		if err := s.uow.GetConversationRepository(txCtx).Append(txCtx, replyTurn); err != nil {
			return err
		}
		return s.fulfil(txCtx, r, replyTurn.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("store reply turn: %w", err)
	}

	r.fulfilled = true
	return &usecase.MessageResult{
		UserTurn: userTurn,
		Reply:    replyTurn,
		Cost:     cost,
		Balance:  r.balance,
	}, nil
}

// GenerateImage authorizes the content level, charges its cost and delivers an image turn
func (s *Service) GenerateImage(ctx context.Context, accountID, personaID, scenario string, level int) (result *usecase.ImageResult, err error) {
	scenario = strings.TrimSpace(scenario)
	if scenario == "" {
		return nil, errs.NewValidationError("scenario", "must not be empty")
	}
	if len(scenario) > MaxScenarioLength {
		return nil, errs.NewValidationError("scenario", fmt.Sprintf("must be at most %d characters", MaxScenarioLength))
	}

	persona, err := s.uow.GetPersonaRepository(ctx).GetOwned(ctx, accountID, personaID)
	if err != nil {
		return nil, err
	}
	account, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	decision, err := s.gate.Authorize(level, account)
	if err != nil {
		s.metrics.GenerationOutcome(KindImage, StateRejected)
		s.logger.Info("Image request denied", map[string]any{
			"account_id": accountID,
			"level":      level,
			"error":      err.Error(),
		})
		return nil, err
	}

	cost := decision.Level.Cost
	r, err := s.reserve(ctx, KindImage, accountID, cost,
		fmt.Sprintf("%s image of %s", decision.Level.Name, persona.Name))
	if err != nil {
		return nil, err
	}
	defer s.settle(ctx, r, &err)

	callCtx, cancel := s.withTimeout(ctx, s.cfg.ImageTimeout)
	defer cancel()

	started := s.clock.Now()
	url, err := s.images.Generate(callCtx, gateway.ImageRequest{
		Visual:   persona.Context().Appearance,
		Scenario: scenario,
		Level:    decision.Level.Level,
		Seed:     persona.Seed,
	})
	s.metrics.ObserveGeneration(KindImage, s.clock.Since(started))
	if err != nil {
		return nil, fmt.Errorf("image provider: %w", err)
	}
	if url == "" {
		return nil, errors.New("image provider returned no url")
	}

	if s.mirror != nil {
		mirrorCtx, cancelMirror := s.withTimeout(context.WithoutCancel(ctx), s.cfg.MirrorTimeout)
		mirrored, mirrorErr := s.mirror.Mirror(mirrorCtx, url)
		cancelMirror()
		if mirrorErr != nil {
			s.logger.Warn("Image mirror failed, keeping provider url", map[string]any{
				"reservation_id": r.id,
				"error":          mirrorErr.Error(),
			})
		} else {
			url = mirrored
		}
	}

	now := s.clock.Now()
	image := &entity.GeneratedImage{
		ID:        s.ids.NewID(coreport.PrefixImage),
		AccountID: accountID,
		PersonaID: persona.ID,
		Prompt:    scenario,
		Level:     decision.Level.Level,
		Cost:      cost,
		URL:       url,
		CreatedAt: now,
	}
	turn := entity.NewImageTurn(s.ids.NewID(coreport.PrefixMessage), persona.ID, scenario, url, cost, now)

	err = persistence.Transact(context.WithoutCancel(ctx), s.uow, func(txCtx context.Context) error {
		if err := s.uow.GetImageRepository(txCtx).Create(txCtx, image); err != nil {
			return err
		}
		if err := s.uow.GetConversationRepository(txCtx).Append(txCtx, turn); err != nil {
			return err
		}
		if err := s.uow.GetPersonaRepository(txCtx).IncrementImageCount(txCtx, persona.ID); err != nil {
			return err
		}
		return s.fulfil(txCtx, r, now)
	})
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	r.fulfilled = true
	return &usecase.ImageResult{
		Image:   image,
		Turn:    turn,
		Cost:    cost,
		Balance: r.balance,
	}, nil
}
