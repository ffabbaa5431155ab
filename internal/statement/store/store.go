package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/movement"
	"github.com/ledgerkit/bankrec/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// importLockKey derives an advisory lock key from the account and the
// statement period, so concurrent uploads of the same statement
// serialize instead of both passing the dedup check.
func importLockKey(accountID uuid.UUID, start, end time.Time) int64 {
	h := fnv.New64a()
	h.Write(accountID[:])
	h.Write([]byte{0})
	h.Write([]byte(start.Format(time.DateOnly)))
	h.Write([]byte{0})
	h.Write([]byte(end.Format(time.DateOnly)))

	return int64(h.Sum64())
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context, accountID uuid.UUID, start, end time.Time) (statement.ImportTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	lockKey := importLockKey(accountID, start, end)
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{tx: tx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) ExistingFitIDs(ctx context.Context, accountID uuid.UUID) (map[string]struct{}, error) {
	query := `SELECT fit_id FROM statement_entries WHERE bank_account_id = $1 AND fit_id <> ''`

	rows, err := itx.tx.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("querying fit ids: %w", err)
	}
	defer rows.Close()

	fitIDs := make(map[string]struct{})

	for rows.Next() {
		var fitID string
		if err := rows.Scan(&fitID); err != nil {
			return nil, fmt.Errorf("scanning fit id: %w", err)
		}

		fitIDs[fitID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fit id rows: %w", err)
	}

	return fitIDs, nil
}

func (itx *importTx) ExistingSignatures(ctx context.Context, accountID uuid.UUID, start, end time.Time) (map[string]struct{}, error) {
	query := `SELECT posted_at, amount, direction, txn_type, payee, memo, check_number
		FROM statement_entries
		WHERE bank_account_id = $1 AND posted_at >= $2 AND posted_at <= $3`

	rows, err := itx.tx.QueryContext(ctx, query, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying signatures: %w", err)
	}
	defer rows.Close()

	signatures := make(map[string]struct{})

	for rows.Next() {
		var (
			entry        statement.Entry
			directionStr string
		)

		if err := rows.Scan(&entry.PostedAt, &entry.Amount, &directionStr,
			&entry.Type, &entry.Payee, &entry.Memo, &entry.CheckNumber); err != nil {
			return nil, fmt.Errorf("scanning signature row: %w", err)
		}

		entry.Direction = movement.Direction(directionStr)
		signatures[entry.Signature()] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating signature rows: %w", err)
	}

	return signatures, nil
}

func (itx *importTx) CreateBatch(ctx context.Context, batch *statement.ImportBatch) error {
	query := `
		INSERT INTO import_batches (bank_account_id, imported_by, original_filename, statement_start, statement_end, bank_id, account_number, accepted_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := itx.tx.QueryRowContext(ctx, query,
		batch.BankAccountID,
		batch.ImportedBy,
		batch.OriginalFilename,
		batch.StatementStart,
		batch.StatementEnd,
		batch.BankID,
		batch.AccountNumber,
		batch.AcceptedCount,
	).Scan(&batch.ID, &batch.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating import batch: %w", err)
	}

	return nil
}

func (itx *importTx) CreateEntries(ctx context.Context, entries []*statement.Entry) error {
	query := `
		INSERT INTO statement_entries (bank_account_id, import_batch_id, posted_at, amount, direction, fit_id, txn_type, payee, memo, check_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`

	for _, entry := range entries {
		err := itx.tx.QueryRowContext(ctx, query,
			entry.BankAccountID,
			entry.ImportBatchID,
			entry.PostedAt,
			entry.Amount,
			entry.Direction,
			entry.FitID,
			entry.Type,
			entry.Payee,
			entry.Memo,
			entry.CheckNumber,
		).Scan(&entry.ID, &entry.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating statement entry: %w", err)
		}
	}

	return nil
}

const selectEntryColumns = `
	e.id, e.bank_account_id, e.import_batch_id, e.posted_at, e.amount, e.direction,
	e.fit_id, e.txn_type, e.payee, e.memo, e.check_number, e.created_at
`

func (s *Store) ListEntries(ctx context.Context, filter statement.EntryFilter) ([]*statement.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM statement_entries e
		WHERE e.bank_account_id = $1`

	args := []any{filter.AccountID}
	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND e.posted_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND e.posted_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Reconciled != nil {
		if *filter.Reconciled {
			query += " AND EXISTS (SELECT 1 FROM reconciliation_statement_items i WHERE i.statement_entry_id = e.id)"
		} else {
			query += " AND NOT EXISTS (SELECT 1 FROM reconciliation_statement_items i WHERE i.statement_entry_id = e.id)"
		}
	}

	query += " ORDER BY e.posted_at ASC, e.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing statement entries: %w", err)
	}
	defer rows.Close()

	var entries []*statement.Entry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning statement entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating statement entry rows: %w", err)
	}

	return entries, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*statement.Entry, error) {
	var (
		entry        statement.Entry
		directionStr string
	)

	if err := s.Scan(
		&entry.ID, &entry.BankAccountID, &entry.ImportBatchID, &entry.PostedAt,
		&entry.Amount, &directionStr, &entry.FitID, &entry.Type, &entry.Payee,
		&entry.Memo, &entry.CheckNumber, &entry.CreatedAt,
	); err != nil {
		return nil, err
	}

	entry.Direction = movement.Direction(directionStr)

	return &entry, nil
}
