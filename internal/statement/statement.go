package statement

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/movement"
)

var (
	// ErrEmptyImport means the upload produced zero new entries. Nothing
	// is persisted, not even the batch row.
	ErrEmptyImport = errors.New("import contains no new entries")

	ErrNotFound = errors.New("statement entry not found")
)

// EmptyImportError is returned when every line of an upload was skipped
// as a duplicate or dropped as unparsable. It wraps ErrEmptyImport and
// carries the skipped count for the response body.
type EmptyImportError struct {
	Skipped int
}

func (e *EmptyImportError) Error() string {
	return fmt.Sprintf("import contains no new entries (0 accepted, %d skipped)", e.Skipped)
}

func (e *EmptyImportError) Unwrap() error {
	return ErrEmptyImport
}

// ImportBatch records the provenance of one statement upload. Created
// only by the import; never mutated afterwards.
type ImportBatch struct {
	ID               uuid.UUID
	BankAccountID    uuid.UUID
	ImportedBy       uuid.NullUUID
	OriginalFilename string
	StatementStart   time.Time
	StatementEnd     time.Time
	BankID           string
	AccountNumber    string
	AcceptedCount    int
	CreatedAt        time.Time
}

// Entry is one transaction line from an imported statement.
type Entry struct {
	ID            uuid.UUID
	BankAccountID uuid.UUID
	ImportBatchID uuid.UUID
	PostedAt      time.Time
	Amount        int64 // Amount in cents, always positive
	Direction     movement.Direction
	FitID         string
	Type          string
	Payee         string
	Memo          string
	CheckNumber   string
	CreatedAt     time.Time
}

// Signed returns the entry amount with its direction applied.
func (e Entry) Signed() int64 {
	return movement.Signed(e.Amount, e.Direction)
}

// Signature is the composite dedup key used when the bank issued no
// external id: posted date, amount, direction and the trimmed text
// fields.
func (e Entry) Signature() string {
	return signature(e.PostedAt, e.Amount, e.Direction, e.Type, e.Payee, e.Memo, e.CheckNumber)
}

func signature(postedAt time.Time, amount int64, direction movement.Direction, txnType, payee, memo, checkNumber string) string {
	return fmt.Sprintf("%s|%d|%s|%s|%s|%s|%s",
		postedAt.Format(time.DateOnly),
		amount,
		direction,
		strings.TrimSpace(txnType),
		strings.TrimSpace(payee),
		strings.TrimSpace(memo),
		strings.TrimSpace(checkNumber),
	)
}
