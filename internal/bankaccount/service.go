package bankaccount

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bankaccount
type Repository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

type CreateParams struct {
	BankName       string
	Agency         string
	AccountNumber  string
	InitialBalance int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	account := &Account{
		BankName:       params.BankName,
		Agency:         params.Agency,
		AccountNumber:  params.AccountNumber,
		InitialBalance: params.InitialBalance,
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
