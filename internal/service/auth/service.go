package auth

import (
	"context"

	"github.com/jwalitptl/salon-api/internal/model"
	"github.com/jwalitptl/salon-api/internal/repository"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
	"github.com/jwalitptl/salon-api/pkg/metrics"
)

// Service is the authentication gate. It issues no session or token; the
// caller holds the returned route target for the duration of its UI
// session.
type Service struct {
	accounts repository.AccountRepository
	metrics  *metrics.Metrics
}

func NewService(accounts repository.AccountRepository, m *metrics.Metrics) *Service {
	return &Service{accounts: accounts, metrics: m}
}

// Authenticate validates phone and password against stored accounts and
// decides the routing target from the role flag. Read-only.
func (s *Service) Authenticate(ctx context.Context, phone, password string) (model.RouteTarget, error) {
	if phone == "" || password == "" {
		s.metrics.LoginAttempts.WithLabelValues("missing_credentials").Inc()
		return "", apperrors.MissingCredentials()
	}

	matches, err := s.accounts.FindByPhone(ctx, phone)
	if err != nil {
		s.metrics.LoginAttempts.WithLabelValues("store_error").Inc()
		return "", err
	}
	if len(matches) == 0 {
		s.metrics.LoginAttempts.WithLabelValues("unknown_phone").Inc()
		return "", apperrors.UnknownPhone()
	}

	// First match in store order wins. The store does not enforce phone
	// uniqueness and duplicates are not deduplicated here.
	account := matches[0]
	if account.Password != password {
		s.metrics.LoginAttempts.WithLabelValues("wrong_password").Inc()
		return "", apperrors.WrongPassword()
	}

	if account.Role {
		s.metrics.LoginAttempts.WithLabelValues("admin").Inc()
		return model.RouteAdmin, nil
	}
	s.metrics.LoginAttempts.WithLabelValues("customer").Inc()
	return model.RouteCustomer, nil
}

// Register creates a customer account. The role flag is always false for
// self-registration; promoting to admin is an admin-only edit.
func (s *Service) Register(ctx context.Context, phone, password string) (*model.Account, error) {
	if phone == "" || password == "" {
		return nil, apperrors.InvalidInput("phone and password are required")
	}

	account := &model.Account{
		Phone:    phone,
		Password: password,
		Role:     false,
	}
	if err := s.accounts.Register(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
