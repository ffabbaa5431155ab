package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerkit/bankrec/internal/bankaccount"
	"github.com/ledgerkit/bankrec/internal/movement"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=balance

// AccountSource resolves the account's declared initial balance.
type AccountSource interface {
	Get(ctx context.Context, id uuid.UUID) (*bankaccount.Account, error)
}

// MovementSource supplies the aggregated system movements.
type MovementSource interface {
	List(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]movement.Movement, error)
	SumSignedBefore(ctx context.Context, accountID uuid.UUID, before time.Time) (int64, error)
}

type Service struct {
	accounts  AccountSource
	movements MovementSource
}

func NewService(accounts AccountSource, movements MovementSource) *Service {
	return &Service{accounts: accounts, movements: movements}
}

// Statement computes the running balance for the account over [from, to].
// Opening balance is the declared initial balance plus the signed sum of
// every movement dated before the start. Read-only; it may run
// concurrently with writers and tolerates a balance that is changing
// under it.
func (s *Service) Statement(ctx context.Context, accountID uuid.UUID, from, to time.Time) (*Projection, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolving account: %w", err)
	}

	priorSum, err := s.movements.SumSignedBefore(ctx, accountID, from)
	if err != nil {
		return nil, fmt.Errorf("summing prior movements: %w", err)
	}

	movements, err := s.movements.List(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}

	projection := Project(account.InitialBalance+priorSum, movements)

	return &projection, nil
}
