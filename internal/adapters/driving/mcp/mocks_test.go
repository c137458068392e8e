package mcp

import (
	"context"
	"testing"

	"github.com/custodia-labs/fraction/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/services"
)

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	calcs []domain.Calculation
	calc  *domain.Calculation
	err   error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.Calculation, error) {
	return m.calcs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Calculation, error) {
	return m.calc, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) (int, error) {
	return len(m.calcs), m.err
}

// newTestPorts wires real services over in-memory stores.
func newTestPorts(t *testing.T) *Ports {
	t.Helper()
	settings := services.NewSettingsService(memory.NewConfigStore())
	history := memory.NewHistoryStore()
	return &Ports{
		Calculator: services.NewCalculatorService(history, settings),
		Primes:     services.NewPrimeService(settings),
		History:    services.NewHistoryService(history),
	}
}
