package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/ports/driven"
	"github.com/custodia-labs/fraction/internal/core/ports/driving"
	"github.com/custodia-labs/fraction/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService evaluates expressions and records them in the history.
type CalculatorService struct {
	history  driven.HistoryStore
	settings driving.SettingsService

	newID func() string
	now   func() time.Time
}

// NewCalculatorService creates a new calculator service.
// history and settings may be nil; without a history store nothing is recorded.
func NewCalculatorService(history driven.HistoryStore, settings driving.SettingsService) *CalculatorService {
	return &CalculatorService{
		history:  history,
		settings: settings,
		newID:    func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

// Evaluate parses and evaluates an expression such as "2/3 + 3/4".
func (s *CalculatorService) Evaluate(ctx context.Context, expression string) (domain.Result, error) {
	logger.Section("Evaluate")
	logger.Debug("Expression: %q", expression)

	expr, err := domain.ParseExpression(expression)
	if err != nil {
		return domain.Result{}, fmt.Errorf("parse expression: %w", err)
	}

	return s.evaluate(ctx, expr)
}

// Apply evaluates op on two already-parsed operands.
func (s *CalculatorService) Apply(
	ctx context.Context,
	op domain.Operation,
	a, b domain.Rational,
) (domain.Result, error) {
	if !op.IsValid() {
		return domain.Result{}, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, op)
	}
	return s.evaluate(ctx, domain.Expression{Left: a, Op: op, Right: b})
}

func (s *CalculatorService) evaluate(ctx context.Context, expr domain.Expression) (domain.Result, error) {
	logger.Debug("Normalised: %s", expr)

	res, err := domain.Evaluate(expr)
	if err != nil {
		return domain.Result{}, fmt.Errorf("evaluate %s: %w", expr, err)
	}
	logger.Debug("Result: %s", res)

	s.record(ctx, res)
	return res, nil
}

// record stores the result when history is available and enabled.
// A failed write is logged and does not fail the calculation.
func (s *CalculatorService) record(ctx context.Context, res domain.Result) {
	if s.history == nil {
		return
	}
	if s.settings != nil {
		settings, err := s.settings.Get()
		if err == nil && !settings.History.Enabled {
			logger.Debug("History disabled, not recording")
			return
		}
	}

	calc := domain.NewCalculation(s.newID(), res, s.now().UTC())
	if err := s.history.Save(ctx, calc); err != nil {
		logger.Warn("Failed to record calculation: %v", err)
		return
	}
	logger.Debug("Recorded calculation %s", calc.ID)
}
