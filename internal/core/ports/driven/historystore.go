package driven

import (
	"context"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

// HistoryStore persists recorded calculations.
type HistoryStore interface {
	// Save stores a calculation.
	Save(ctx context.Context, calc domain.Calculation) error

	// Get retrieves a calculation by ID.
	// Returns domain.ErrNotFound if no entry has the ID.
	Get(ctx context.Context, id string) (*domain.Calculation, error)

	// List returns up to limit calculations, newest first.
	// A limit of zero or less returns all entries.
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Clear removes all calculations and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
