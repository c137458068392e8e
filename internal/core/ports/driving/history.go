package driving

import (
	"context"

	"github.com/custodia-labs/fraction/internal/core/domain"
)

// HistoryService exposes recorded calculations.
type HistoryService interface {
	// List returns up to limit calculations, newest first.
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Get retrieves a calculation by ID.
	Get(ctx context.Context, id string) (*domain.Calculation, error)

	// Clear removes all calculations and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
