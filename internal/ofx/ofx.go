package ofx

import (
	"errors"
	"time"

	"github.com/ledgerkit/bankrec/internal/movement"
)

var (
	// ErrMalformedDocument means no usable OFX root structure was found.
	// It fails the whole import; nothing is written.
	ErrMalformedDocument = errors.New("malformed OFX document")

	// ErrNoTransactions means the document parsed but yielded zero valid
	// transactions. Also fatal for the import.
	ErrNoTransactions = errors.New("OFX document contains no valid transactions")
)

// Transaction is one normalized transaction line from the statement.
type Transaction struct {
	PostedAt    time.Time
	Amount      int64 // Amount in cents, always positive
	Direction   movement.Direction
	FitID       string
	Type        string
	Payee       string
	Memo        string
	CheckNumber string
}

// Signed returns the transaction amount with its direction applied.
func (t Transaction) Signed() int64 {
	return movement.Signed(t.Amount, t.Direction)
}

// Statement is the parsed document: header metadata plus the ordered
// transaction list. Start/End default to the min/max posted dates when
// the document declares no period.
type Statement struct {
	BankID        string
	AccountNumber string
	Start         time.Time
	End           time.Time
	Transactions  []Transaction

	// Skipped counts transactions dropped for an unparsable posted date,
	// Malformed those dropped for a non-numeric or zero amount.
	Skipped   int
	Malformed int
}
