package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/salon-api/internal/repository/docstore"
	"github.com/jwalitptl/salon-api/internal/store"
	"github.com/jwalitptl/salon-api/internal/store/memory"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
	"github.com/jwalitptl/salon-api/pkg/metrics"
)

// stubClock steps forward on every reading so consecutive writes get
// strictly increasing timestamps.
type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestService(t *testing.T) (*Service, *memory.Store, *stubClock) {
	t.Helper()
	docs := memory.New()
	clk := &stubClock{now: time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)}
	repo := docstore.NewCatalogRepository(docstore.NewBaseRepository(docs, clk))
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	return NewService(repo, time.Minute, m), docs, clk
}

func TestCreateThenListContainsRecord(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()
	before := clk.now

	created, err := svc.Create(ctx, "Anna", 150000, "Facial")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	services, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Anna", services[0].Creator)
	assert.Equal(t, int64(150000), services[0].Price)
	assert.Equal(t, "Facial", services[0].Name)
	assert.True(t, services[0].UpdatedAt.After(before))
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		creator  string
		price    int64
		svcName  string
		wantCode apperrors.ErrorCode
	}{
		{"zero price", "Anna", 0, "Facial", apperrors.ErrInvalidPrice},
		{"negative price", "Anna", -150, "Facial", apperrors.ErrInvalidPrice},
		{"empty creator", "", 150000, "Facial", apperrors.ErrMissingField},
		{"empty name", "Anna", 150000, "", apperrors.ErrMissingField},
		{"whitespace name", "Anna", 150000, "   ", apperrors.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, docs, _ := newTestService(t)
			ctx := context.Background()

			_, err := svc.Create(ctx, tt.creator, tt.price, tt.svcName)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))

			// Validation failures must not reach the store.
			stored, err := docs.QueryAll(ctx, store.CollectionService)
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestUpdateReplacesFieldsAndRefreshesTimestamp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Anna", 150000, "Facial")
	require.NoError(t, err)
	createdAt := created.UpdatedAt

	_, err = svc.Update(ctx, created.ID, "Anna", 200000, "Facial")
	require.NoError(t, err)

	services, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, int64(200000), services[0].Price)
	assert.True(t, services[0].UpdatedAt.After(createdAt),
		"update timestamp must be strictly later than create timestamp")
}

func TestUpdateUnknownIDFailsWithNotFound(t *testing.T) {
	svc, docs, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Anna", 150000, "Facial")
	require.NoError(t, err)

	_, err = svc.Update(ctx, "no-such-id", "Anna", 200000, "Facial")
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))

	stored, err := docs.QueryAll(ctx, store.CollectionService)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.EqualValues(t, 150000, stored[0].Fields["Price"])
}

func TestListDefaultsMissingUpdateTimeWithoutPersisting(t *testing.T) {
	svc, docs, _ := newTestService(t)
	ctx := context.Background()

	// Legacy record without an updateTime field.
	_, err := docs.Insert(ctx, store.CollectionService, store.Fields{
		"Creator":     "Lan",
		"Price":       int64(90000),
		"ServiceName": "Manicure",
	})
	require.NoError(t, err)

	services, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.False(t, services[0].UpdatedAt.IsZero())

	stored, err := docs.QueryAll(ctx, store.CollectionService)
	require.NoError(t, err)
	_, present := stored[0].Fields["updateTime"]
	assert.False(t, present, "read-time default must not be written back")
}

func TestListServesFromCacheUntilInvalidated(t *testing.T) {
	svc, docs, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Anna", 150000, "Facial")
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A write that bypasses the service is invisible until the cache is
	// invalidated or expires.
	_, err = docs.Insert(ctx, store.CollectionService, store.Fields{
		"Creator":     "Lan",
		"Price":       int64(90000),
		"ServiceName": "Manicure",
		"updateTime":  time.Now().UTC().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	cached, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	_, err = svc.Create(ctx, "Mai", 120000, "Pedicure")
	require.NoError(t, err)

	refreshed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, refreshed, 3)
}

func TestSearchFiltersByName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Anna", 150000, "Facial")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Lan", 200000, "Massage")
	require.NoError(t, err)

	matches, err := svc.Search(ctx, "MASS")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Massage", matches[0].Name)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
