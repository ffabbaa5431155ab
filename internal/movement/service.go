package movement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount    = errors.New("movement amount must be greater than zero")
	ErrInvalidDirection = errors.New("movement direction must be credit or debit")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=movement
type Repository interface {
	ListMovements(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]Movement, error)
	SumSignedBefore(ctx context.Context, accountID uuid.UUID, before time.Time) (int64, error)
	CreateManualMovement(ctx context.Context, mv *ManualMovement) error
}

// ManualMovement is a movement entered by hand rather than derived from
// a payable or receivable payment.
type ManualMovement struct {
	ID                uuid.UUID
	BankAccountID     uuid.UUID
	AccountPlanItemID uuid.NullUUID
	Date              time.Time
	Description       string
	Amount            int64
	Direction         Direction
	CreatedBy         uuid.NullUUID
	CreatedAt         time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the account's system movements within [from, to], ordered
// by (date, creation order) ascending.
func (s *Service) List(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]Movement, error) {
	return s.repo.ListMovements(ctx, accountID, from, to)
}

// SumSignedBefore returns the signed sum of all movements dated strictly
// before the given date. Used to derive opening balances.
func (s *Service) SumSignedBefore(ctx context.Context, accountID uuid.UUID, before time.Time) (int64, error) {
	return s.repo.SumSignedBefore(ctx, accountID, before)
}

type CreateManualParams struct {
	BankAccountID     uuid.UUID
	AccountPlanItemID uuid.NullUUID
	Date              time.Time
	Description       string
	Amount            int64
	Direction         Direction
	CreatedBy         uuid.NullUUID
}

// CreateManual records a manual movement with an explicit direction.
func (s *Service) CreateManual(ctx context.Context, params CreateManualParams) (*ManualMovement, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if !params.Direction.Valid() {
		return nil, ErrInvalidDirection
	}

	mv := &ManualMovement{
		BankAccountID:     params.BankAccountID,
		AccountPlanItemID: params.AccountPlanItemID,
		Date:              params.Date,
		Description:       params.Description,
		Amount:            params.Amount,
		Direction:         params.Direction,
		CreatedBy:         params.CreatedBy,
	}
	if err := s.repo.CreateManualMovement(ctx, mv); err != nil {
		return nil, fmt.Errorf("creating manual movement: %w", err)
	}

	return mv, nil
}
