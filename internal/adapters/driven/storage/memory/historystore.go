package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu    sync.RWMutex
	calcs map[string]domain.Calculation
	seq   map[string]int
	next  int
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		calcs: make(map[string]domain.Calculation),
		seq:   make(map[string]int),
	}
}

// Save stores or replaces a calculation.
func (s *HistoryStore) Save(_ context.Context, calc domain.Calculation) error {
	if calc.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.calcs[calc.ID]; !exists {
		s.seq[calc.ID] = s.next
		s.next++
	}
	s.calcs[calc.ID] = calc
	return nil
}

// Get retrieves a calculation by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	calc, ok := s.calcs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &calc, nil
}

// List returns up to limit calculations, newest first.
// Entries with equal timestamps keep reverse insertion order.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Calculation, 0, len(s.calcs))
	for _, calc := range s.calcs {
		result = append(result, calc)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return s.seq[result[i].ID] > s.seq[result[j].ID]
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all calculations.
func (s *HistoryStore) Clear(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.calcs)
	s.calcs = make(map[string]domain.Calculation)
	s.seq = make(map[string]int)
	return n, nil
}
