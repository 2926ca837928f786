package docstore

import (
	"context"
	"time"

	"github.com/jwalitptl/salon-api/internal/model"
	"github.com/jwalitptl/salon-api/internal/repository"
	"github.com/jwalitptl/salon-api/internal/store"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
)

// Document field names of the Service collection, inherited from the
// legacy store.
const (
	fieldCreator     = "Creator"
	fieldPrice       = "Price"
	fieldServiceName = "ServiceName"
	fieldUpdateTime  = "updateTime"
)

type catalogRepository struct {
	BaseRepository
}

func NewCatalogRepository(base BaseRepository) repository.CatalogRepository {
	return &catalogRepository{base}
}

func (r *catalogRepository) List(ctx context.Context) ([]*model.Service, error) {
	docs, err := r.store.QueryAll(ctx, store.CollectionService)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	readTime := r.clock.Now()
	services := make([]*model.Service, 0, len(docs))
	for _, doc := range docs {
		svc := &model.Service{
			ID:      doc.ID,
			Creator: fieldString(doc.Fields, fieldCreator),
			Price:   fieldInt64(doc.Fields, fieldPrice),
			Name:    fieldString(doc.Fields, fieldServiceName),
		}
		if ts, ok := fieldTime(doc.Fields, fieldUpdateTime); ok {
			svc.UpdatedAt = ts
		} else {
			// Legacy records may lack updateTime; default it for the
			// returned value only, never write it back.
			svc.UpdatedAt = readTime
		}
		services = append(services, svc)
	}
	return services, nil
}

func (r *catalogRepository) Create(ctx context.Context, service *model.Service) error {
	service.UpdatedAt = r.stamp()

	id, err := r.store.Insert(ctx, store.CollectionService, serviceFields(service))
	if err != nil {
		return apperrors.StoreUnavailable(err)
	}
	service.ID = id
	return nil
}

func (r *catalogRepository) Update(ctx context.Context, service *model.Service) error {
	service.UpdatedAt = r.stamp()

	if err := r.store.Replace(ctx, store.CollectionService, service.ID, serviceFields(service)); err != nil {
		return wrapStoreErr("service", err)
	}
	return nil
}

func serviceFields(s *model.Service) store.Fields {
	return store.Fields{
		fieldCreator:     s.Creator,
		fieldPrice:       s.Price,
		fieldServiceName: s.Name,
		fieldUpdateTime:  s.UpdatedAt.Format(time.RFC3339Nano),
	}
}
