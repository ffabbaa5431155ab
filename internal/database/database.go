package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate creates the schema. Every statement is idempotent so the call
// is safe on startup. The unique indexes back the service-level dedup
// and exclusivity checks under concurrent writers.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bank_accounts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_name TEXT NOT NULL,
			agency TEXT NOT NULL DEFAULT '',
			account_number TEXT NOT NULL DEFAULT '',
			initial_balance BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS import_batches (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_account_id UUID NOT NULL REFERENCES bank_accounts(id),
			imported_by UUID,
			original_filename TEXT NOT NULL DEFAULT '',
			statement_start DATE NOT NULL,
			statement_end DATE NOT NULL,
			bank_id TEXT NOT NULL DEFAULT '',
			account_number TEXT NOT NULL DEFAULT '',
			accepted_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS statement_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_account_id UUID NOT NULL REFERENCES bank_accounts(id),
			import_batch_id UUID NOT NULL REFERENCES import_batches(id),
			posted_at DATE NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			direction TEXT NOT NULL CHECK (direction IN ('credit', 'debit')),
			fit_id TEXT NOT NULL DEFAULT '',
			txn_type TEXT NOT NULL DEFAULT '',
			payee TEXT NOT NULL DEFAULT '',
			memo TEXT NOT NULL DEFAULT '',
			check_number TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_statement_entries_fit_id
			ON statement_entries (bank_account_id, fit_id) WHERE fit_id <> ''`,
		`CREATE INDEX IF NOT EXISTS idx_statement_entries_account_posted
			ON statement_entries (bank_account_id, posted_at)`,

		`CREATE TABLE IF NOT EXISTS receivable_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_account_id UUID NOT NULL REFERENCES bank_accounts(id),
			payment_date DATE NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_receivable_payments_account_date
			ON receivable_payments (bank_account_id, payment_date)`,

		`CREATE TABLE IF NOT EXISTS payable_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_account_id UUID NOT NULL REFERENCES bank_accounts(id),
			payment_date DATE NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payable_payments_account_date
			ON payable_payments (bank_account_id, payment_date)`,

		`CREATE TABLE IF NOT EXISTS manual_movements (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_account_id UUID NOT NULL REFERENCES bank_accounts(id),
			account_plan_item_id UUID,
			movement_date DATE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			amount BIGINT NOT NULL CHECK (amount > 0),
			direction TEXT NOT NULL CHECK (direction IN ('credit', 'debit')),
			created_by UUID,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_manual_movements_account_date
			ON manual_movements (bank_account_id, movement_date)`,

		`CREATE TABLE IF NOT EXISTS reconciliations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			bank_account_id UUID NOT NULL REFERENCES bank_accounts(id),
			created_by UUID,
			total_system BIGINT NOT NULL,
			total_statement BIGINT NOT NULL,
			difference BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS reconciliation_system_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			reconciliation_id UUID NOT NULL REFERENCES reconciliations(id) ON DELETE CASCADE,
			source_type TEXT NOT NULL CHECK (source_type IN ('receivable', 'payable', 'manual')),
			source_id UUID NOT NULL,
			amount BIGINT NOT NULL,
			direction TEXT NOT NULL CHECK (direction IN ('credit', 'debit')),
			UNIQUE (source_type, source_id)
		)`,

		`CREATE TABLE IF NOT EXISTS reconciliation_statement_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			reconciliation_id UUID NOT NULL REFERENCES reconciliations(id) ON DELETE CASCADE,
			statement_entry_id UUID NOT NULL UNIQUE REFERENCES statement_entries(id),
			amount BIGINT NOT NULL,
			direction TEXT NOT NULL CHECK (direction IN ('credit', 'debit'))
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
	}

	return nil
}
