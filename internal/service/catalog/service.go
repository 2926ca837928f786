package catalog

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/salon-api/internal/model"
	"github.com/jwalitptl/salon-api/internal/repository"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
	"github.com/jwalitptl/salon-api/pkg/metrics"
)

const listCacheKey = "services"

// Service owns the service catalog: validation, the materialized list and
// its cache, and the create/update operations behind the admin screens.
type Service struct {
	repo    repository.CatalogRepository
	cache   *gocache.Cache
	metrics *metrics.Metrics
}

func NewService(repo repository.CatalogRepository, cacheTTL time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
		metrics: m,
	}
}

// List returns the full catalog in store order, serving from the list
// cache when warm. A stale cached list is tolerated; the TTL and write
// invalidation bound the staleness.
func (s *Service) List(ctx context.Context) ([]*model.Service, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		s.metrics.CatalogCacheHits.Inc()
		return cached.([]*model.Service), nil
	}
	s.metrics.CatalogCacheMiss.Inc()

	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(listCacheKey, services)
	return services, nil
}

// Search returns the catalog filtered by a case-insensitive substring
// match on the service name.
func (s *Service) Search(ctx context.Context, query string) ([]*model.Service, error) {
	services, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(services, query), nil
}

func (s *Service) Create(ctx context.Context, creator string, price int64, name string) (*model.Service, error) {
	if err := validate(creator, price, name); err != nil {
		s.metrics.CatalogMutations.WithLabelValues("create", "rejected").Inc()
		return nil, err
	}

	service := &model.Service{
		Creator: creator,
		Price:   price,
		Name:    name,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		s.metrics.CatalogMutations.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	s.cache.Delete(listCacheKey)
	s.metrics.CatalogMutations.WithLabelValues("create", "ok").Inc()
	return service, nil
}

func (s *Service) Update(ctx context.Context, id, creator string, price int64, name string) (*model.Service, error) {
	if err := validate(creator, price, name); err != nil {
		s.metrics.CatalogMutations.WithLabelValues("update", "rejected").Inc()
		return nil, err
	}

	service := &model.Service{
		ID:      id,
		Creator: creator,
		Price:   price,
		Name:    name,
	}
	if err := s.repo.Update(ctx, service); err != nil {
		s.metrics.CatalogMutations.WithLabelValues("update", "error").Inc()
		return nil, err
	}

	s.cache.Delete(listCacheKey)
	s.metrics.CatalogMutations.WithLabelValues("update", "ok").Inc()
	return service, nil
}

// validate runs before any store call so a rejected write leaves the
// store untouched.
func validate(creator string, price int64, name string) error {
	if strings.TrimSpace(creator) == "" {
		return apperrors.MissingField("creator")
	}
	if strings.TrimSpace(name) == "" {
		return apperrors.MissingField("name")
	}
	if price <= 0 {
		return apperrors.InvalidPrice()
	}
	return nil
}
