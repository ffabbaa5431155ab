package movement

import (
	"time"

	"github.com/google/uuid"
)

// Direction tells which side of the account a movement falls on.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Source discriminates the three internal movement kinds.
type Source string

const (
	// SourceReceivable is a payment received against a receivable title. Always credit.
	SourceReceivable Source = "receivable"
	// SourcePayable is a payment made against a payable title. Always debit.
	SourcePayable Source = "payable"
	// SourceManual is a manually entered movement with an explicit direction.
	SourceManual Source = "manual"
)

// Valid reports whether s is one of the three known sources.
func (s Source) Valid() bool {
	return s == SourceReceivable || s == SourcePayable || s == SourceManual
}

// Movement is the uniform view over the three internal movement kinds.
// It is computed on demand and never persisted as its own row.
type Movement struct {
	Source      Source
	SourceID    uuid.UUID
	Date        time.Time
	Amount      int64 // Amount in cents, always positive
	Direction   Direction
	Description string
	CreatedAt   time.Time
}

// Ref identifies one movement by kind and owning row.
type Ref struct {
	Source Source
	ID     uuid.UUID
}

// Signed combines an unsigned cent amount with a direction so that
// heterogeneous movements and statement entries sum without branching.
func Signed(amount int64, direction Direction) int64 {
	if direction == DirectionDebit {
		return -amount
	}

	return amount
}

// Signed returns the movement amount with its direction applied.
func (m Movement) Signed() int64 {
	return Signed(m.Amount, m.Direction)
}

// Ref returns the reference identifying this movement.
func (m Movement) Ref() Ref {
	return Ref{Source: m.Source, ID: m.SourceID}
}
