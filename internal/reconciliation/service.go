package reconciliation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/bankaccount"
	"github.com/ledgerkit/bankrec/internal/movement"
	"github.com/ledgerkit/bankrec/internal/statement"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=reconciliation

// AccountSource resolves the target bank account.
type AccountSource interface {
	Get(ctx context.Context, id uuid.UUID) (*bankaccount.Account, error)
}

type Repository interface {
	Begin(ctx context.Context) (Tx, error)

	GetReconciliation(ctx context.Context, id uuid.UUID) (*Reconciliation, error)
	ListReconciliations(ctx context.Context, accountID uuid.UUID) ([]*Reconciliation, error)
	// DeleteReconciliation removes the reconciliation; its item links
	// cascade while the underlying rows stay untouched. Returns
	// ErrNotFound when no row is deleted.
	DeleteReconciliation(ctx context.Context, id uuid.UUID) error
}

// Tx is the single atomic critical section wrapping one match: the
// "already linked" checks, any generated movements and the inserts all
// commit together, with the referenced rows locked so two concurrent
// requests cannot both claim the same item.
type Tx interface {
	FetchMovements(ctx context.Context, accountID uuid.UUID, refs []movement.Ref) ([]movement.Movement, error)
	FetchEntries(ctx context.Context, accountID uuid.UUID, ids []uuid.UUID) ([]*statement.Entry, error)
	LinkedMovements(ctx context.Context, refs []movement.Ref) (map[movement.Ref]uuid.UUID, error)
	LinkedEntries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	CreateManualMovement(ctx context.Context, mv *movement.ManualMovement) error
	CreateReconciliation(ctx context.Context, rec *Reconciliation, system []SystemItem, entries []StatementItem) error
	Commit() error
	Rollback() error
}

type Service struct {
	accounts AccountSource
	repo     Repository
}

func NewService(accounts AccountSource, repo Repository) *Service {
	return &Service{accounts: accounts, repo: repo}
}

type ReconcileParams struct {
	AccountID  uuid.UUID
	SystemRefs []movement.Ref
	EntryIDs   []uuid.UUID
	ActorID    uuid.NullUUID
}

// Reconcile validates and atomically links the chosen system movements
// to the chosen statement entries. The call is rejected wholesale on any
// precondition failure; nothing is partially matched.
func (s *Service) Reconcile(ctx context.Context, params ReconcileParams) (*Reconciliation, error) {
	refs := dedupeRefs(params.SystemRefs)
	entryIDs := dedupeIDs(params.EntryIDs)

	if len(refs) == 0 || len(entryIDs) == 0 {
		return nil, ErrEmptySelection
	}

	account, err := s.accounts.Get(ctx, params.AccountID)
	if err != nil {
		return nil, fmt.Errorf("resolving account: %w", err)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile: %w", err)
	}
	defer tx.Rollback()

	movements, err := tx.FetchMovements(ctx, account.ID, refs)
	if err != nil {
		return nil, fmt.Errorf("fetching movements: %w", err)
	}

	entries, err := tx.FetchEntries(ctx, account.ID, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}

	if err := checkAllFound(refs, movements, entryIDs, entries); err != nil {
		return nil, err
	}

	if err := s.checkUnlinked(ctx, tx, refs, entryIDs); err != nil {
		return nil, err
	}

	var totalSystem int64
	for _, mv := range movements {
		totalSystem += mv.Signed()
	}

	var totalStatement int64
	for _, entry := range entries {
		totalStatement += entry.Signed()
	}

	if totalSystem != totalStatement {
		return nil, &SumMismatchError{TotalSystem: totalSystem, TotalStatement: totalStatement}
	}

	rec := &Reconciliation{
		BankAccountID:  account.ID,
		CreatedBy:      params.ActorID,
		TotalSystem:    totalSystem,
		TotalStatement: totalStatement,
		Difference:     0,
	}

	systemItems := make([]SystemItem, 0, len(movements))
	for _, mv := range movements {
		systemItems = append(systemItems, SystemItem{
			Source:    mv.Source,
			SourceID:  mv.SourceID,
			Amount:    mv.Amount,
			Direction: mv.Direction,
		})
	}

	statementItems := make([]StatementItem, 0, len(entries))
	for _, entry := range entries {
		statementItems = append(statementItems, StatementItem{
			StatementEntryID: entry.ID,
			Amount:           entry.Amount,
			Direction:        entry.Direction,
		})
	}

	if err := tx.CreateReconciliation(ctx, rec, systemItems, statementItems); err != nil {
		return nil, fmt.Errorf("creating reconciliation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile: %w", err)
	}

	return rec, nil
}

type GenerateParams struct {
	AccountID uuid.UUID
	EntryIDs  []uuid.UUID
	// Classification accounts applied to the generated manual movements,
	// required per direction present in the selection. Opaque to this
	// core beyond the non-null check.
	CreditClassificationID uuid.NullUUID
	DebitClassificationID  uuid.NullUUID
	ActorID                uuid.NullUUID
}

// Generate accepts the selected statement entries as fact: it posts one
// manual movement per entry (same date, amount and direction) and then
// performs the same 1:1 exact-sum match. Balanced by construction, but
// already-matched entries are still rejected.
func (s *Service) Generate(ctx context.Context, params GenerateParams) (*Reconciliation, error) {
	entryIDs := dedupeIDs(params.EntryIDs)
	if len(entryIDs) == 0 {
		return nil, ErrEmptySelection
	}

	account, err := s.accounts.Get(ctx, params.AccountID)
	if err != nil {
		return nil, fmt.Errorf("resolving account: %w", err)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile: %w", err)
	}
	defer tx.Rollback()

	entries, err := tx.FetchEntries(ctx, account.ID, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching entries: %w", err)
	}

	if err := checkAllFound(nil, nil, entryIDs, entries); err != nil {
		return nil, err
	}

	if err := s.checkUnlinked(ctx, tx, nil, entryIDs); err != nil {
		return nil, err
	}

	if err := checkClassifications(entries, params); err != nil {
		return nil, err
	}

	var (
		total          int64
		systemItems    []SystemItem
		statementItems []StatementItem
	)

	for _, entry := range entries {
		classification := params.CreditClassificationID
		if entry.Direction == movement.DirectionDebit {
			classification = params.DebitClassificationID
		}

		mv := &movement.ManualMovement{
			BankAccountID:     account.ID,
			AccountPlanItemID: classification,
			Date:              entry.PostedAt,
			Description:       describeEntry(entry),
			Amount:            entry.Amount,
			Direction:         entry.Direction,
			CreatedBy:         params.ActorID,
		}
		if err := tx.CreateManualMovement(ctx, mv); err != nil {
			return nil, fmt.Errorf("creating generated movement: %w", err)
		}

		total += entry.Signed()

		systemItems = append(systemItems, SystemItem{
			Source:    movement.SourceManual,
			SourceID:  mv.ID,
			Amount:    entry.Amount,
			Direction: entry.Direction,
		})
		statementItems = append(statementItems, StatementItem{
			StatementEntryID: entry.ID,
			Amount:           entry.Amount,
			Direction:        entry.Direction,
		})
	}

	rec := &Reconciliation{
		BankAccountID:  account.ID,
		CreatedBy:      params.ActorID,
		TotalSystem:    total,
		TotalStatement: total,
		Difference:     0,
	}

	if err := tx.CreateReconciliation(ctx, rec, systemItems, statementItems); err != nil {
		return nil, fmt.Errorf("creating reconciliation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile: %w", err)
	}

	return rec, nil
}

// Undo deletes the reconciliation, freeing its items for rematching. The
// underlying movements and entries are untouched. Reversing an id that
// no longer exists reports ErrNotFound, never a silent success.
func (s *Service) Undo(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteReconciliation(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Reconciliation, error) {
	return s.repo.GetReconciliation(ctx, id)
}

func (s *Service) List(ctx context.Context, accountID uuid.UUID) ([]*Reconciliation, error) {
	return s.repo.ListReconciliations(ctx, accountID)
}

// checkUnlinked enforces that no referenced item is held by an active
// reconciliation. The lookup runs inside the same transaction as the
// insert, never against cached state.
func (s *Service) checkUnlinked(ctx context.Context, tx Tx, refs []movement.Ref, entryIDs []uuid.UUID) error {
	conflict := &AlreadyReconciledError{}

	if len(refs) > 0 {
		linked, err := tx.LinkedMovements(ctx, refs)
		if err != nil {
			return fmt.Errorf("checking linked movements: %w", err)
		}

		for _, ref := range refs {
			if recID, ok := linked[ref]; ok {
				conflict.System = append(conflict.System, SystemConflict{Ref: ref, ReconciliationID: recID})
			}
		}
	}

	linked, err := tx.LinkedEntries(ctx, entryIDs)
	if err != nil {
		return fmt.Errorf("checking linked entries: %w", err)
	}

	for _, id := range entryIDs {
		if recID, ok := linked[id]; ok {
			conflict.Entries = append(conflict.Entries, EntryConflict{EntryID: id, ReconciliationID: recID})
		}
	}

	if len(conflict.System) > 0 || len(conflict.Entries) > 0 {
		return conflict
	}

	return nil
}

func checkAllFound(refs []movement.Ref, movements []movement.Movement, entryIDs []uuid.UUID, entries []*statement.Entry) error {
	unknown := &UnknownItemsError{}

	found := make(map[movement.Ref]struct{}, len(movements))
	for _, mv := range movements {
		found[mv.Ref()] = struct{}{}
	}

	for _, ref := range refs {
		if _, ok := found[ref]; !ok {
			unknown.System = append(unknown.System, ref)
		}
	}

	foundEntries := make(map[uuid.UUID]struct{}, len(entries))
	for _, entry := range entries {
		foundEntries[entry.ID] = struct{}{}
	}

	for _, id := range entryIDs {
		if _, ok := foundEntries[id]; !ok {
			unknown.Entries = append(unknown.Entries, id)
		}
	}

	if len(unknown.System) > 0 || len(unknown.Entries) > 0 {
		return unknown
	}

	return nil
}

func checkClassifications(entries []*statement.Entry, params GenerateParams) error {
	for _, entry := range entries {
		switch entry.Direction {
		case movement.DirectionCredit:
			if !params.CreditClassificationID.Valid {
				return &MissingClassificationError{Direction: movement.DirectionCredit}
			}
		case movement.DirectionDebit:
			if !params.DebitClassificationID.Valid {
				return &MissingClassificationError{Direction: movement.DirectionDebit}
			}
		}
	}

	return nil
}

func describeEntry(entry *statement.Entry) string {
	switch {
	case entry.Memo != "":
		return entry.Memo
	case entry.Payee != "":
		return entry.Payee
	case entry.FitID != "":
		return "Statement entry " + entry.FitID
	default:
		return "Statement entry"
	}
}

func dedupeRefs(refs []movement.Ref) []movement.Ref {
	seen := make(map[movement.Ref]struct{}, len(refs))
	out := refs[:0:0]

	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}

		seen[ref] = struct{}{}
		out = append(out, ref)
	}

	return out
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
