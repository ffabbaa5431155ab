package statement

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/bankaccount"
	"github.com/ledgerkit/bankrec/internal/ofx"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=statement

// Parser turns a raw statement upload into a normalized document.
type Parser interface {
	Parse(r io.Reader) (*ofx.Statement, error)
}

// AccountSource resolves the target bank account.
type AccountSource interface {
	Get(ctx context.Context, id uuid.UUID) (*bankaccount.Account, error)
}

type Repository interface {
	BeginImport(ctx context.Context, accountID uuid.UUID, start, end time.Time) (ImportTx, error)

	ListEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)
}

// ImportTx is the single atomic transaction wrapping one import: the
// dedup lookups, the batch row and the entry rows all commit together
// or not at all.
type ImportTx interface {
	// ExistingFitIDs returns every non-empty bank-issued id ever seen for
	// the account.
	ExistingFitIDs(ctx context.Context, accountID uuid.UUID) (map[string]struct{}, error)
	// ExistingSignatures returns the composite signatures of the account's
	// entries posted within [start, end].
	ExistingSignatures(ctx context.Context, accountID uuid.UUID, start, end time.Time) (map[string]struct{}, error)
	CreateBatch(ctx context.Context, batch *ImportBatch) error
	CreateEntries(ctx context.Context, entries []*Entry) error
	Commit() error
	Rollback() error
}

// EntryFilter narrows entry listings. Reconciled selects entries that
// are (or are not) currently linked to a reconciliation.
type EntryFilter struct {
	AccountID  uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Reconciled *bool
}

type Service struct {
	parser   Parser
	accounts AccountSource
	repo     Repository
}

func NewService(parser Parser, accounts AccountSource, repo Repository) *Service {
	return &Service{parser: parser, accounts: accounts, repo: repo}
}

// ImportResult summarises one statement upload.
type ImportResult struct {
	Batch    *ImportBatch
	Accepted int
	Skipped  int
}

// Import parses the upload, drops every transaction already on file for
// the account, and persists the remainder plus one batch row in a single
// transaction. A transaction is new only when its bank-issued id (if
// any) has never been seen for the account and its composite signature
// matches neither the stored entries in the statement period nor an
// earlier transaction in the same batch, which blocks re-uploading the
// identical file.
func (s *Service) Import(ctx context.Context, accountID uuid.UUID, importedBy uuid.NullUUID, filename string, r io.Reader) (*ImportResult, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolving account: %w", err)
	}

	stmt, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	itx, err := s.repo.BeginImport(ctx, account.ID, stmt.Start, stmt.End)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	fitIDs, err := itx.ExistingFitIDs(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("loading known fit ids: %w", err)
	}

	signatures, err := itx.ExistingSignatures(ctx, account.ID, stmt.Start, stmt.End)
	if err != nil {
		return nil, fmt.Errorf("loading known signatures: %w", err)
	}

	batchSignatures := make(map[string]struct{}, len(stmt.Transactions))

	var (
		accepted []*Entry
		skipped  int
	)

	for _, trn := range stmt.Transactions {
		entry := &Entry{
			BankAccountID: account.ID,
			PostedAt:      trn.PostedAt,
			Amount:        trn.Amount,
			Direction:     trn.Direction,
			FitID:         trn.FitID,
			Type:          trn.Type,
			Payee:         trn.Payee,
			Memo:          trn.Memo,
			CheckNumber:   trn.CheckNumber,
		}

		if isDuplicate(entry, fitIDs, signatures, batchSignatures) {
			skipped++
			continue
		}

		batchSignatures[entry.Signature()] = struct{}{}
		accepted = append(accepted, entry)
	}

	if len(accepted) == 0 {
		return nil, &EmptyImportError{Skipped: skipped + stmt.Skipped + stmt.Malformed}
	}

	batch := &ImportBatch{
		BankAccountID:    account.ID,
		ImportedBy:       importedBy,
		OriginalFilename: filename,
		StatementStart:   stmt.Start,
		StatementEnd:     stmt.End,
		BankID:           stmt.BankID,
		AccountNumber:    stmt.AccountNumber,
		AcceptedCount:    len(accepted),
	}
	if err := itx.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("creating import batch: %w", err)
	}

	for _, entry := range accepted {
		entry.ImportBatchID = batch.ID
	}

	if err := itx.CreateEntries(ctx, accepted); err != nil {
		return nil, fmt.Errorf("creating entries: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{
		Batch:    batch,
		Accepted: len(accepted),
		Skipped:  skipped + stmt.Skipped + stmt.Malformed,
	}, nil
}

func isDuplicate(entry *Entry, fitIDs, signatures, batchSignatures map[string]struct{}) bool {
	if entry.FitID != "" {
		if _, seen := fitIDs[entry.FitID]; seen {
			return true
		}
	}

	sig := entry.Signature()

	if _, seen := signatures[sig]; seen {
		return true
	}

	_, seen := batchSignatures[sig]

	return seen
}

// ListEntries returns statement entries for the reconciliation screens.
func (s *Service) ListEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}
