package account

import (
	"context"

	"github.com/jwalitptl/salon-api/internal/model"
	"github.com/jwalitptl/salon-api/internal/repository"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
)

// Service covers the admin account screen: list everything, create or
// replace an account, delete one. Callers refresh their cached list after
// a delete.
type Service struct {
	repo repository.AccountRepository
}

func NewService(repo repository.AccountRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*model.Account, error) {
	return s.repo.List(ctx)
}

// Upsert creates a new account when id is empty and replaces the existing
// record otherwise. Both paths refresh the update timestamp.
func (s *Service) Upsert(ctx context.Context, id, phone, password string, role bool) (*model.Account, error) {
	if phone == "" || password == "" {
		return nil, apperrors.InvalidInput("phone and password are required")
	}

	account := &model.Account{
		ID:       id,
		Phone:    phone,
		Password: password,
		Role:     role,
	}

	var err error
	if id == "" {
		err = s.repo.Create(ctx, account)
	} else {
		err = s.repo.Replace(ctx, account)
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
