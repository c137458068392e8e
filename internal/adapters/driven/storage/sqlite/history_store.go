package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/fraction/internal/core/domain"
	"github.com/custodia-labs/fraction/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

const selectCalculation = `
	SELECT id, operation, left_num, left_den, right_num, right_den, result, created_at
	FROM calculations`

// Save stores or replaces a calculation.
func (s *historyStore) Save(ctx context.Context, calc domain.Calculation) error {
	if calc.ID == "" {
		return fmt.Errorf("%w: calculation id is empty", domain.ErrInvalidInput)
	}
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO calculations (id, operation, left_num, left_den, right_num, right_den, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			operation = excluded.operation,
			left_num = excluded.left_num,
			left_den = excluded.left_den,
			right_num = excluded.right_num,
			right_den = excluded.right_den,
			result = excluded.result,
			created_at = excluded.created_at
	`, calc.ID, string(calc.Operation),
		calc.Left.Num(), calc.Left.Den(), calc.Right.Num(), calc.Right.Den(),
		calc.Result, calc.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving calculation: %w", err)
	}
	return nil
}

// Get retrieves a calculation by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.Calculation, error) {
	row := s.store.db.QueryRowContext(ctx, selectCalculation+" WHERE id = ?", id)

	calc, err := scanCalculation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return calc, nil
}

// List returns up to limit calculations, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx,
		selectCalculation+" ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("querying calculations: %w", err)
	}
	defer rows.Close()

	calcs := []domain.Calculation{}
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, *calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calculations: %w", err)
	}
	return calcs, nil
}

// Clear removes all calculations.
func (s *historyStore) Clear(ctx context.Context) (int, error) {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM calculations")
	if err != nil {
		return 0, fmt.Errorf("clearing calculations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared calculations: %w", err)
	}
	return int(n), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row rowScanner) (*domain.Calculation, error) {
	var (
		calc                                 domain.Calculation
		op                                   string
		leftNum, leftDen, rightNum, rightDen int64
		createdAt                            int64
	)

	err := row.Scan(&calc.ID, &op, &leftNum, &leftDen, &rightNum, &rightDen, &calc.Result, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning calculation: %w", err)
	}

	calc.Operation = domain.Operation(op)
	if calc.Left, err = domain.NewRational(leftNum, leftDen); err != nil {
		return nil, fmt.Errorf("calculation %s left operand: %w", calc.ID, err)
	}
	if calc.Right, err = domain.NewRational(rightNum, rightDen); err != nil {
		return nil, fmt.Errorf("calculation %s right operand: %w", calc.ID, err)
	}
	calc.CreatedAt = time.Unix(0, createdAt).UTC()

	return &calc, nil
}
