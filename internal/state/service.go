package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arand/kharcha/internal/budget"
	"github.com/arand/kharcha/internal/expense"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=state

// Store is the key-value persistence sink. Get returns (nil, nil) for a
// missing key. Implementations must not panic on I/O failure; the service
// treats every storage error as soft and keeps running in memory.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

// Service holds the single live aggregate and serializes every transition.
// Each successful transition is written through to the store; a failed write
// is logged and ignored so budgeting keeps working without durable storage.
type Service struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
	state State
}

// Option configures a Service.
type Option func(*Service)

// WithClock substitutes the wall-clock reader, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.state = Default(s.now())

	return s
}

// Load hydrates the aggregate from storage. Missing fields take their
// defaults and the budget is recomputed fresh so date-dependent figures
// reflect today, not the day of the last write. A read failure leaves the
// default state in place.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		slog.Error("failed to read saved state, starting fresh", "error", err)
		return nil
	}

	if raw == nil {
		return nil
	}

	var saved State
	if err := json.Unmarshal(raw, &saved); err != nil {
		slog.Error("failed to decode saved state, starting fresh", "error", err)
		return nil
	}

	s.state = normalized(saved, s.now())

	return nil
}

// Current returns a copy of the aggregate.
func (s *Service) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// SetIncome replaces the monthly income and recomputes the budget.
func (s *Service) SetIncome(ctx context.Context, amount int64) (State, error) {
	if amount < 0 {
		return s.Current(), fmt.Errorf("%w: income must not be negative", expense.ErrValidation)
	}

	return s.dispatch(ctx, SetIncome{Amount: amount})
}

// SetConfig replaces the allocation fractions.
func (s *Service) SetConfig(ctx context.Context, cfg budget.Config) (State, error) {
	if err := cfg.Validate(); err != nil {
		return s.Current(), fmt.Errorf("%w: %v", expense.ErrValidation, err)
	}

	return s.dispatch(ctx, SetConfig{Config: cfg})
}

// AddExpense validates params, creates the expense, and appends it unless
// its effective month is locked.
func (s *Service) AddExpense(ctx context.Context, params expense.CreateParams) (expense.Expense, error) {
	if err := expense.ValidateParams(params); err != nil {
		return expense.Expense{}, err
	}

	e := expense.New(params, s.now())

	if _, err := s.dispatch(ctx, AddExpense{Expense: e}); err != nil {
		return expense.Expense{}, err
	}

	return e, nil
}

// ImportExpenses adds a parsed batch, skipping rows that fail validation or
// fall in locked months. It returns the expenses actually added.
func (s *Service) ImportExpenses(ctx context.Context, batch []expense.CreateParams) ([]expense.Expense, error) {
	var added []expense.Expense

	for _, params := range batch {
		e, err := s.AddExpense(ctx, params)
		if err != nil {
			slog.Warn("skipping imported expense", "description", params.Description, "error", err)
			continue
		}

		added = append(added, e)
	}

	return added, nil
}

// DeleteExpense removes an expense unless its month is locked. Deleting an
// unknown id is a no-op.
func (s *Service) DeleteExpense(ctx context.Context, id uuid.UUID) (State, error) {
	return s.dispatch(ctx, DeleteExpense{ID: id})
}

// CompleteMonth locks the current month, snapshots it, rolls its savings
// into the carryover balance, and advances to the next month. Completing an
// already-completed month is a no-op.
func (s *Service) CompleteMonth(ctx context.Context) (State, error) {
	return s.dispatch(ctx, CompleteMonth{})
}

// Recalculate refreshes date-dependent derived values.
func (s *Service) Recalculate(ctx context.Context) (State, error) {
	return s.dispatch(ctx, Recalculate{})
}

// Reset returns the aggregate to its empty default and clears storage.
func (s *Service) Reset(ctx context.Context) (State, error) {
	next, err := s.dispatch(ctx, Reset{})
	if err != nil {
		return next, err
	}

	if err := s.store.Clear(ctx, StorageKey); err != nil {
		slog.Error("failed to clear saved state", "error", err)
	}

	return next, nil
}

func (s *Service) dispatch(ctx context.Context, action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Apply(s.state, action, s.now())
	if err != nil {
		return s.state, err
	}

	s.state = next
	s.persist(ctx)

	return next, nil
}

func (s *Service) persist(ctx context.Context) {
	raw, err := json.Marshal(s.state)
	if err != nil {
		slog.Error("failed to encode state", "error", err)
		return
	}

	if err := s.store.Set(ctx, StorageKey, raw); err != nil {
		slog.Error("failed to persist state", "error", err)
	}
}
