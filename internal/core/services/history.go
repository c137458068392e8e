package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/ports/driven"
	"github.com/custodia-labs/fraction/internal/core/ports/driving"
	"github.com/custodia-labs/fraction/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// errNoHistoryStore is returned when no history store was wired.
var errNoHistoryStore = errors.New("history store not configured")

// HistoryService exposes recorded calculations.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns up to limit calculations, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if s.store == nil {
		return nil, errNoHistoryStore
	}
	calcs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return calcs, nil
}

// Get retrieves a calculation by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Calculation, error) {
	if s.store == nil {
		return nil, errNoHistoryStore
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// Clear removes all calculations.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, errNoHistoryStore
	}
	n, err := s.store.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	logger.Debug("Cleared %d history entries", n)
	return n, nil
}
