package docstore

import (
	"errors"
	"time"

	apperrors "github.com/jwalitptl/salon-api/pkg/errors"

	"github.com/jwalitptl/salon-api/internal/store"
	"github.com/jwalitptl/salon-api/pkg/clock"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	store store.Store
	clock clock.Clock
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(s store.Store, c clock.Clock) BaseRepository {
	return BaseRepository{store: s, clock: c}
}

// stamp takes the single timestamp reading applied to a mutating write.
func (r *BaseRepository) stamp() time.Time {
	return r.clock.Now()
}

// wrapStoreErr maps adapter failures into the application taxonomy:
// missing documents become NotFound for the given resource, everything
// else is surfaced as StoreUnavailable.
func wrapStoreErr(resource string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NotFound(resource, err)
	}
	return apperrors.StoreUnavailable(err)
}

// Field decode helpers. Backends differ in what they hand back: the memory
// store returns the native values that were written, the postgres and redis
// backends return JSON-decoded values (float64 numbers, RFC3339 strings for
// timestamps). These fold both shapes together.

func fieldString(fields store.Fields, name string) string {
	s, _ := fields[name].(string)
	return s
}

func fieldInt64(fields store.Fields, name string) int64 {
	switch n := fields[name].(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func fieldBool(fields store.Fields, name string) bool {
	b, _ := fields[name].(bool)
	return b
}

func fieldTime(fields store.Fields, name string) (time.Time, bool) {
	switch t := fields[name].(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}
