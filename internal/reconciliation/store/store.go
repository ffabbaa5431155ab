package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/movement"
	"github.com/ledgerkit/bankrec/internal/reconciliation"
	"github.com/ledgerkit/bankrec/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type reconcileTx struct {
	tx *sql.Tx
}

// Begin opens the critical section for one match. Referenced rows are
// locked with SELECT ... FOR UPDATE inside this transaction, so the
// already-linked re-check and the inserts see a stable view.
func (s *Store) Begin(ctx context.Context) (reconciliation.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reconcile tx: %w", err)
	}

	return &reconcileTx{tx: tx}, nil
}

func (t *reconcileTx) Commit() error   { return t.tx.Commit() }
func (t *reconcileTx) Rollback() error { return t.tx.Rollback() }

// movementQueries maps each source to the locked select producing the
// unified movement columns (id, date, amount, direction, description,
// created_at).
var movementQueries = map[movement.Source]string{
	movement.SourceReceivable: `
		SELECT id, payment_date, amount, 'credit', COALESCE(NULLIF(notes, ''), 'Receivable payment'), created_at
		FROM receivable_payments
		WHERE bank_account_id = $1 AND id = ANY($2)
		FOR UPDATE`,
	movement.SourcePayable: `
		SELECT id, payment_date, amount, 'debit', COALESCE(NULLIF(notes, ''), 'Payable payment'), created_at
		FROM payable_payments
		WHERE bank_account_id = $1 AND id = ANY($2)
		FOR UPDATE`,
	movement.SourceManual: `
		SELECT id, movement_date, amount, direction, description, created_at
		FROM manual_movements
		WHERE bank_account_id = $1 AND id = ANY($2)
		FOR UPDATE`,
}

func (t *reconcileTx) FetchMovements(ctx context.Context, accountID uuid.UUID, refs []movement.Ref) ([]movement.Movement, error) {
	var movements []movement.Movement

	for source, ids := range groupBySource(refs) {
		query, ok := movementQueries[source]
		if !ok {
			return nil, fmt.Errorf("unknown movement source: %s", source)
		}

		rows, err := t.tx.QueryContext(ctx, query, accountID, ids)
		if err != nil {
			return nil, fmt.Errorf("fetching %s movements: %w", source, err)
		}

		for rows.Next() {
			var (
				mv           movement.Movement
				directionStr string
			)

			if err := rows.Scan(&mv.SourceID, &mv.Date, &mv.Amount, &directionStr, &mv.Description, &mv.CreatedAt); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scanning %s movement: %w", source, err)
			}

			mv.Source = source
			mv.Direction = movement.Direction(directionStr)
			movements = append(movements, mv)
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("iterating %s movement rows: %w", source, err)
		}

		rows.Close()
	}

	return movements, nil
}

func (t *reconcileTx) FetchEntries(ctx context.Context, accountID uuid.UUID, ids []uuid.UUID) ([]*statement.Entry, error) {
	query := `
		SELECT id, bank_account_id, import_batch_id, posted_at, amount, direction, fit_id, txn_type, payee, memo, check_number, created_at
		FROM statement_entries
		WHERE bank_account_id = $1 AND id = ANY($2)
		FOR UPDATE`

	rows, err := t.tx.QueryContext(ctx, query, accountID, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching statement entries: %w", err)
	}
	defer rows.Close()

	var entries []*statement.Entry

	for rows.Next() {
		var (
			entry        statement.Entry
			directionStr string
		)

		if err := rows.Scan(
			&entry.ID, &entry.BankAccountID, &entry.ImportBatchID, &entry.PostedAt,
			&entry.Amount, &directionStr, &entry.FitID, &entry.Type, &entry.Payee,
			&entry.Memo, &entry.CheckNumber, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning statement entry: %w", err)
		}

		entry.Direction = movement.Direction(directionStr)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating statement entry rows: %w", err)
	}

	return entries, nil
}

func (t *reconcileTx) LinkedMovements(ctx context.Context, refs []movement.Ref) (map[movement.Ref]uuid.UUID, error) {
	linked := make(map[movement.Ref]uuid.UUID)

	query := `
		SELECT source_id, reconciliation_id
		FROM reconciliation_system_items
		WHERE source_type = $1 AND source_id = ANY($2)`

	for source, ids := range groupBySource(refs) {
		rows, err := t.tx.QueryContext(ctx, query, source, ids)
		if err != nil {
			return nil, fmt.Errorf("querying linked %s movements: %w", source, err)
		}

		for rows.Next() {
			var sourceID, recID uuid.UUID
			if err := rows.Scan(&sourceID, &recID); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scanning linked movement: %w", err)
			}

			linked[movement.Ref{Source: source, ID: sourceID}] = recID
		}

		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("iterating linked movement rows: %w", err)
		}

		rows.Close()
	}

	return linked, nil
}

func (t *reconcileTx) LinkedEntries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	query := `
		SELECT statement_entry_id, reconciliation_id
		FROM reconciliation_statement_items
		WHERE statement_entry_id = ANY($1)`

	rows, err := t.tx.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("querying linked entries: %w", err)
	}
	defer rows.Close()

	linked := make(map[uuid.UUID]uuid.UUID)

	for rows.Next() {
		var entryID, recID uuid.UUID
		if err := rows.Scan(&entryID, &recID); err != nil {
			return nil, fmt.Errorf("scanning linked entry: %w", err)
		}

		linked[entryID] = recID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating linked entry rows: %w", err)
	}

	return linked, nil
}

func (t *reconcileTx) CreateManualMovement(ctx context.Context, mv *movement.ManualMovement) error {
	query := `
		INSERT INTO manual_movements (bank_account_id, account_plan_item_id, movement_date, description, amount, direction, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
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

func (t *reconcileTx) CreateReconciliation(ctx context.Context, rec *reconciliation.Reconciliation, system []reconciliation.SystemItem, entries []reconciliation.StatementItem) error {
	query := `
		INSERT INTO reconciliations (bank_account_id, created_by, total_system, total_statement, difference, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		rec.BankAccountID,
		rec.CreatedBy,
		rec.TotalSystem,
		rec.TotalStatement,
		rec.Difference,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating reconciliation: %w", err)
	}

	systemQuery := `
		INSERT INTO reconciliation_system_items (reconciliation_id, source_type, source_id, amount, direction)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range system {
		system[i].ReconciliationID = rec.ID

		err := t.tx.QueryRowContext(ctx, systemQuery,
			rec.ID,
			system[i].Source,
			system[i].SourceID,
			system[i].Amount,
			system[i].Direction,
		).Scan(&system[i].ID)
		if err != nil {
			return fmt.Errorf("creating system item: %w", err)
		}
	}

	entryQuery := `
		INSERT INTO reconciliation_statement_items (reconciliation_id, statement_entry_id, amount, direction)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for i := range entries {
		entries[i].ReconciliationID = rec.ID

		err := t.tx.QueryRowContext(ctx, entryQuery,
			rec.ID,
			entries[i].StatementEntryID,
			entries[i].Amount,
			entries[i].Direction,
		).Scan(&entries[i].ID)
		if err != nil {
			return fmt.Errorf("creating statement item: %w", err)
		}
	}

	return nil
}

func groupBySource(refs []movement.Ref) map[movement.Source][]uuid.UUID {
	groups := make(map[movement.Source][]uuid.UUID)
	for _, ref := range refs {
		groups[ref.Source] = append(groups[ref.Source], ref.ID)
	}

	return groups
}

const selectReconciliationColumns = `id, bank_account_id, created_by, total_system, total_statement, difference, created_at`

func (s *Store) GetReconciliation(ctx context.Context, id uuid.UUID) (*reconciliation.Reconciliation, error) {
	query := `SELECT ` + selectReconciliationColumns + ` FROM reconciliations WHERE id = $1`

	var rec reconciliation.Reconciliation

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.BankAccountID, &rec.CreatedBy,
		&rec.TotalSystem, &rec.TotalStatement, &rec.Difference, &rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, reconciliation.ErrNotFound
		}

		return nil, fmt.Errorf("getting reconciliation: %w", err)
	}

	return &rec, nil
}

func (s *Store) ListReconciliations(ctx context.Context, accountID uuid.UUID) ([]*reconciliation.Reconciliation, error) {
	query := `SELECT ` + selectReconciliationColumns + `
		FROM reconciliations
		WHERE bank_account_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing reconciliations: %w", err)
	}
	defer rows.Close()

	var recs []*reconciliation.Reconciliation

	for rows.Next() {
		var rec reconciliation.Reconciliation

		if err := rows.Scan(
			&rec.ID, &rec.BankAccountID, &rec.CreatedBy,
			&rec.TotalSystem, &rec.TotalStatement, &rec.Difference, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning reconciliation: %w", err)
		}

		recs = append(recs, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reconciliation rows: %w", err)
	}

	return recs, nil
}

// DeleteReconciliation removes the reconciliation row; the item links
// cascade via foreign keys while the underlying movements and entries
// stay untouched and immediately eligible for rematching.
func (s *Store) DeleteReconciliation(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reconciliations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting reconciliation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if affected == 0 {
		return reconciliation.ErrNotFound
	}

	return nil
}
