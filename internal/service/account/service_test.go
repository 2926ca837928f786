package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/salon-api/internal/repository/docstore"
	"github.com/jwalitptl/salon-api/internal/store"
	"github.com/jwalitptl/salon-api/internal/store/memory"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	docs := memory.New()
	clk := &stubClock{now: time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)}
	repo := docstore.NewAccountRepository(docstore.NewBaseRepository(docs, clk))
	return NewService(repo), docs
}

func TestUpsertWithoutIDCreatesAccount(t *testing.T) {
	svc, docs := newTestService(t)
	ctx := context.Background()

	acc, err := svc.Upsert(ctx, "", "0900000000", "secret", true)
	require.NoError(t, err)
	assert.NotEmpty(t, acc.ID)
	assert.True(t, acc.Role)
	require.NotNil(t, acc.UpdatedAt, "admin create stamps updateTime")

	stored, err := docs.QueryAll(ctx, store.CollectionLogin)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "0900000000", stored[0].Fields["phone"])
}

func TestUpsertWithIDReplacesAndRefreshesTimestamp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, "", "0900000000", "secret", false)
	require.NoError(t, err)
	createdAt := *created.UpdatedAt

	updated, err := svc.Upsert(ctx, created.ID, "0900000000", "changed", true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Role)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(createdAt))

	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "changed", accounts[0].Password)
}

func TestUpsertUnknownIDFailsWithNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Upsert(context.Background(), "no-such-id", "0900000000", "secret", false)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

func TestUpsertRejectsEmptyInput(t *testing.T) {
	svc, docs := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "", "", "secret", false)
	assert.Equal(t, apperrors.ErrInvalidInput, apperrors.CodeOf(err))

	_, err = svc.Upsert(ctx, "", "0900000000", "", false)
	assert.Equal(t, apperrors.ErrInvalidInput, apperrors.CodeOf(err))

	stored, err := docs.QueryAll(ctx, store.CollectionLogin)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestDeleteRemovesAccount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	acc, err := svc.Upsert(ctx, "", "0900000000", "secret", false)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, acc.ID))

	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	err = svc.Delete(ctx, acc.ID)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}
