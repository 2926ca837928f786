package docstore

import (
	"context"
	"time"

	"github.com/jwalitptl/salon-api/internal/model"
	"github.com/jwalitptl/salon-api/internal/repository"
	"github.com/jwalitptl/salon-api/internal/store"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
)

// Document field names of the Login collection, inherited from the legacy
// store.
const (
	fieldPhone    = "phone"
	fieldPassword = "password"
	fieldRole     = "role"
)

type accountRepository struct {
	BaseRepository
}

func NewAccountRepository(base BaseRepository) repository.AccountRepository {
	return &accountRepository{base}
}

func (r *accountRepository) Register(ctx context.Context, account *model.Account) error {
	// Self-registration writes no updateTime, matching the legacy record
	// shape.
	account.UpdatedAt = nil

	id, err := r.store.Insert(ctx, store.CollectionLogin, accountFields(account))
	if err != nil {
		return apperrors.StoreUnavailable(err)
	}
	account.ID = id
	return nil
}

func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	now := r.stamp()
	account.UpdatedAt = &now

	id, err := r.store.Insert(ctx, store.CollectionLogin, accountFields(account))
	if err != nil {
		return apperrors.StoreUnavailable(err)
	}
	account.ID = id
	return nil
}

func (r *accountRepository) Replace(ctx context.Context, account *model.Account) error {
	now := r.stamp()
	account.UpdatedAt = &now

	if err := r.store.Replace(ctx, store.CollectionLogin, account.ID, accountFields(account)); err != nil {
		return wrapStoreErr("account", err)
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, store.CollectionLogin, id); err != nil {
		return wrapStoreErr("account", err)
	}
	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]*model.Account, error) {
	docs, err := r.store.QueryAll(ctx, store.CollectionLogin)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	accounts := make([]*model.Account, 0, len(docs))
	for _, doc := range docs {
		accounts = append(accounts, accountFromDocument(doc))
	}
	return accounts, nil
}

func (r *accountRepository) FindByPhone(ctx context.Context, phone string) ([]*model.Account, error) {
	docs, err := r.store.QueryByField(ctx, store.CollectionLogin, fieldPhone, phone)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	accounts := make([]*model.Account, 0, len(docs))
	for _, doc := range docs {
		accounts = append(accounts, accountFromDocument(doc))
	}
	return accounts, nil
}

func accountFromDocument(doc store.Document) *model.Account {
	account := &model.Account{
		ID:       doc.ID,
		Phone:    fieldString(doc.Fields, fieldPhone),
		Password: fieldString(doc.Fields, fieldPassword),
		Role:     fieldBool(doc.Fields, fieldRole),
	}
	if ts, ok := fieldTime(doc.Fields, fieldUpdateTime); ok {
		account.UpdatedAt = &ts
	}
	return account
}

func accountFields(a *model.Account) store.Fields {
	fields := store.Fields{
		fieldPhone:    a.Phone,
		fieldPassword: a.Password,
		fieldRole:     a.Role,
	}
	if a.UpdatedAt != nil {
		fields[fieldUpdateTime] = a.UpdatedAt.Format(time.RFC3339Nano)
	}
	return fields
}
