package reconciliation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerkit/bankrec/internal/movement"
)

var (
	ErrNotFound = errors.New("reconciliation not found")

	// ErrEmptySelection rejects a match request with nothing on one side.
	ErrEmptySelection = errors.New("reconciliation requires items on both sides")
)

// UnknownItemsError reports referenced items that do not exist or belong
// to a different account.
type UnknownItemsError struct {
	System  []movement.Ref
	Entries []uuid.UUID
}

func (e *UnknownItemsError) Error() string {
	var parts []string

	for _, ref := range e.System {
		parts = append(parts, fmt.Sprintf("%s %s", ref.Source, ref.ID))
	}

	for _, id := range e.Entries {
		parts = append(parts, fmt.Sprintf("entry %s", id))
	}

	return "unknown items for account: " + strings.Join(parts, ", ")
}

// SystemConflict names a system movement already claimed by another
// reconciliation.
type SystemConflict struct {
	Ref              movement.Ref
	ReconciliationID uuid.UUID
}

// EntryConflict names a statement entry already claimed by another
// reconciliation.
type EntryConflict struct {
	EntryID          uuid.UUID
	ReconciliationID uuid.UUID
}

// AlreadyReconciledError reports every referenced item that is linked to
// an active reconciliation, together with the reconciliation holding it.
type AlreadyReconciledError struct {
	System  []SystemConflict
	Entries []EntryConflict
}

func (e *AlreadyReconciledError) Error() string {
	var parts []string

	for _, c := range e.System {
		parts = append(parts, fmt.Sprintf("%s %s held by reconciliation %s", c.Ref.Source, c.Ref.ID, c.ReconciliationID))
	}

	for _, c := range e.Entries {
		parts = append(parts, fmt.Sprintf("entry %s held by reconciliation %s", c.EntryID, c.ReconciliationID))
	}

	return "items already reconciled: " + strings.Join(parts, ", ")
}

// SumMismatchError reports both signed totals and their delta when the
// exact-sum precondition fails.
type SumMismatchError struct {
	TotalSystem    int64
	TotalStatement int64
}

func (e *SumMismatchError) Error() string {
	return fmt.Sprintf("signed sums differ: system %s, statement %s, difference %s",
		formatCents(e.TotalSystem),
		formatCents(e.TotalStatement),
		formatCents(e.TotalSystem-e.TotalStatement),
	)
}

// MissingClassificationError means generate mode was called without a
// classification account for a direction present in the selection.
type MissingClassificationError struct {
	Direction movement.Direction
}

func (e *MissingClassificationError) Error() string {
	return fmt.Sprintf("missing classification account for %s entries", e.Direction)
}

func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
