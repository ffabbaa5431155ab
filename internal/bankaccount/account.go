package bankaccount

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("bank account not found")

// Account is a company bank account being reconciled. The account itself
// is managed by the surrounding application; this core reads it for the
// declared initial balance and ownership checks.
type Account struct {
	ID             uuid.UUID
	BankName       string
	Agency         string
	AccountNumber  string
	InitialBalance int64 // Balance in cents at account creation
	CreatedAt      time.Time
}
