package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/bankaccount"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectAccountColumns = `id, bank_name, agency, account_number, initial_balance, created_at`

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*bankaccount.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM bank_accounts WHERE id = $1`

	var account bankaccount.Account

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.BankName, &account.Agency, &account.AccountNumber,
		&account.InitialBalance, &account.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bankaccount.ErrNotFound
		}

		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	return &account, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*bankaccount.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM bank_accounts ORDER BY bank_name ASC, account_number ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*bankaccount.Account

	for rows.Next() {
		var account bankaccount.Account

		if err := rows.Scan(
			&account.ID, &account.BankName, &account.Agency, &account.AccountNumber,
			&account.InitialBalance, &account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning bank account: %w", err)
		}

		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) CreateAccount(ctx context.Context, account *bankaccount.Account) error {
	query := `
		INSERT INTO bank_accounts (bank_name, agency, account_number, initial_balance, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		account.BankName,
		account.Agency,
		account.AccountNumber,
		account.InitialBalance,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bank account: %w", err)
	}

	return nil
}
