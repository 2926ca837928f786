package store

import (
	"context"
	"time"

	"github.com/jwalitptl/salon-api/pkg/metrics"
)

// WithMetrics wraps a Store so every operation is counted and timed.
func WithMetrics(s Store, m *metrics.Metrics) Store {
	return &instrumentedStore{next: s, metrics: m}
}

type instrumentedStore struct {
	next    Store
	metrics *metrics.Metrics
}

func (s *instrumentedStore) observe(op, collection string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.StoreOperations.WithLabelValues(op, collection, status).Inc()
	s.metrics.StoreLatency.WithLabelValues(op, collection).Observe(time.Since(start).Seconds())
}

func (s *instrumentedStore) Insert(ctx context.Context, collection string, fields Fields) (string, error) {
	start := time.Now()
	id, err := s.next.Insert(ctx, collection, fields)
	s.observe("insert", collection, start, err)
	return id, err
}

func (s *instrumentedStore) Replace(ctx context.Context, collection, id string, fields Fields) error {
	start := time.Now()
	err := s.next.Replace(ctx, collection, id, fields)
	s.observe("replace", collection, start, err)
	return err
}

func (s *instrumentedStore) Remove(ctx context.Context, collection, id string) error {
	start := time.Now()
	err := s.next.Remove(ctx, collection, id)
	s.observe("remove", collection, start, err)
	return err
}

func (s *instrumentedStore) QueryAll(ctx context.Context, collection string) ([]Document, error) {
	start := time.Now()
	docs, err := s.next.QueryAll(ctx, collection)
	s.observe("query_all", collection, start, err)
	return docs, err
}

func (s *instrumentedStore) QueryByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	start := time.Now()
	docs, err := s.next.QueryByField(ctx, collection, field, value)
	s.observe("query_by_field", collection, start, err)
	return docs, err
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
