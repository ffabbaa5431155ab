package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/movement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// unifiedMovements joins the three movement kinds into one signed view.
// Receivable payments are always credits, payable payments always debits,
// manual movements carry their own direction.
const unifiedMovements = `
	SELECT 'receivable' AS source, id, payment_date AS date, amount, 'credit' AS direction,
	       COALESCE(NULLIF(notes, ''), 'Receivable payment') AS description, created_at
	FROM receivable_payments
	WHERE bank_account_id = $1
	UNION ALL
	SELECT 'payable', id, payment_date, amount, 'debit',
	       COALESCE(NULLIF(notes, ''), 'Payable payment'), created_at
	FROM payable_payments
	WHERE bank_account_id = $1
	UNION ALL
	SELECT 'manual', id, movement_date, amount, direction, description, created_at
	FROM manual_movements
	WHERE bank_account_id = $1
`

func (s *Store) ListMovements(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]movement.Movement, error) {
	query := `SELECT source, id, date, amount, direction, description, created_at
		FROM (` + unifiedMovements + `) m
		WHERE m.date >= $2 AND m.date <= $3
		ORDER BY m.date ASC, m.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	defer rows.Close()

	var movements []movement.Movement

	for rows.Next() {
		var (
			mv           movement.Movement
			sourceStr    string
			directionStr string
		)

		if err := rows.Scan(&sourceStr, &mv.SourceID, &mv.Date, &mv.Amount, &directionStr, &mv.Description, &mv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}

		mv.Source = movement.Source(sourceStr)
		mv.Direction = movement.Direction(directionStr)
		movements = append(movements, mv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movement rows: %w", err)
	}

	return movements, nil
}

func (s *Store) SumSignedBefore(ctx context.Context, accountID uuid.UUID, before time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN m.direction = 'credit' THEN m.amount ELSE -m.amount END), 0)
		FROM (` + unifiedMovements + `) m
		WHERE m.date < $2`

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, accountID, before).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing movements: %w", err)
	}

	return sum, nil
}

func (s *Store) CreateManualMovement(ctx context.Context, mv *movement.ManualMovement) error {
	query := `
		INSERT INTO manual_movements (bank_account_id, account_plan_item_id, movement_date, description, amount, direction, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		mv.BankAccountID,
		mv.AccountPlanItemID,
		mv.Date,
		mv.Description,
		mv.Amount,
		mv.Direction,
		mv.CreatedBy,
	).Scan(&mv.ID, &mv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating manual movement: %w", err)
	}

	return nil
}
