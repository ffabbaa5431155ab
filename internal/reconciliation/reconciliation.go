package reconciliation

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/movement"
)

// Reconciliation asserts that a chosen set of system movements equals,
// in signed sum, a chosen set of statement entries. Difference is always
// zero on creation and kept for the audit trail.
type Reconciliation struct {
	ID             uuid.UUID
	BankAccountID  uuid.UUID
	CreatedBy      uuid.NullUUID
	TotalSystem    int64
	TotalStatement int64
	Difference     int64
	CreatedAt      time.Time
}

// SystemItem links a reconciliation to one system movement, snapshotting
// the movement's amount and direction at link time so later edits to the
// underlying payment never retroactively alter reconciliation history.
type SystemItem struct {
	ID               uuid.UUID
	ReconciliationID uuid.UUID
	Source           movement.Source
	SourceID         uuid.UUID
	Amount           int64
	Direction        movement.Direction
}

// StatementItem links a reconciliation to one statement entry, with the
// same amount/direction snapshot.
type StatementItem struct {
	ID               uuid.UUID
	ReconciliationID uuid.UUID
	StatementEntryID uuid.UUID
	Amount           int64
	Direction        movement.Direction
}
