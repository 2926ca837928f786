package repository

import (
	"context"

	"github.com/jwalitptl/salon-api/internal/model"
)

// All repository interfaces in one file
type (
	// CatalogRepository handles service catalog persistence.
	CatalogRepository interface {
		// List returns every service in store order. A record missing its
		// update timestamp is defaulted to the read time in the returned
		// value only; nothing is written back.
		List(ctx context.Context) ([]*model.Service, error)
		// Create persists a new service, assigning its id and update
		// timestamp.
		Create(ctx context.Context, service *model.Service) error
		// Update replaces creator, price, name and the update timestamp of
		// an existing record.
		Update(ctx context.Context, service *model.Service) error
	}

	// AccountRepository handles login account persistence.
	AccountRepository interface {
		// Register persists a self-registered account without an update
		// timestamp, mirroring the legacy registration write.
		Register(ctx context.Context, account *model.Account) error
		// Create persists an admin-created account with a fresh update
		// timestamp.
		Create(ctx context.Context, account *model.Account) error
		// Replace overwrites phone, password and role of an existing
		// account and refreshes its update timestamp.
		Replace(ctx context.Context, account *model.Account) error
		Delete(ctx context.Context, id string) error
		List(ctx context.Context) ([]*model.Account, error)
		// FindByPhone returns accounts with an exact phone match, in store
		// order. Duplicates are returned as-is.
		FindByPhone(ctx context.Context, phone string) ([]*model.Account, error)
	}
)
