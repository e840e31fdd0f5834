package goal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/arand/kharcha/internal/state"
)

// StorageKey is independent of the main aggregate's key: the goal record is
// small, ad hoc, and deliberately not coupled to the budget lifecycle.
const StorageKey = "goalCalculator"

// Service persists and recalls the single goal record.
type Service struct {
	store state.Store
}

func NewService(store state.Store) *Service {
	return &Service{store: store}
}

// Get returns the saved goal, or a zero Goal when none was saved or the
// read failed (storage failures are soft here, same as the main aggregate).
func (s *Service) Get(ctx context.Context) Goal {
	raw, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		slog.Error("failed to read saved goal", "error", err)
		return Goal{}
	}

	if raw == nil {
		return Goal{}
	}

	var g Goal
	if err := json.Unmarshal(raw, &g); err != nil {
		slog.Error("failed to decode saved goal", "error", err)
		return Goal{}
	}

	return g
}

// Save stores the goal record.
func (s *Service) Save(ctx context.Context, g Goal) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding goal: %w", err)
	}

	if err := s.store.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}

	return nil
}
