package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwalitptl/salon-api/internal/store"
)

// Store keeps each document as a JSON string under doc:<collection>:<id>
// and maintains a per-collection id list (docs:<collection>) whose RPUSH
// order defines store order.
type Store struct {
	client *redis.Client
}

type Config struct {
	URL          string
	PoolSize     int
	MinIdleConns int
}

func NewStore(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{client: client}, nil
}

func docKey(collection, id string) string {
	return "doc:" + collection + ":" + id
}

func listKey(collection string) string {
	return "docs:" + collection
}

func (s *Store) Insert(ctx context.Context, collection string, fields store.Fields) (string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.New().String()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, docKey(collection, id), payload, 0)
	pipe.RPush(ctx, listKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}
	return id, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, fields store.Fields) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	ok, err := s.client.SetXX(ctx, docKey(collection, id), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, collection, id string) error {
	removed, err := s.client.Del(ctx, docKey(collection, id)).Result()
	if err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}
	if removed == 0 {
		return store.ErrNotFound
	}
	if err := s.client.LRem(ctx, listKey(collection), 1, id).Err(); err != nil {
		return fmt.Errorf("failed to unlist document: %w", err)
	}
	return nil
}

func (s *Store) QueryAll(ctx context.Context, collection string) ([]store.Document, error) {
	ids, err := s.client.LRange(ctx, listKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var docs []store.Document
	for _, id := range ids {
		payload, err := s.client.Get(ctx, docKey(collection, id)).Bytes()
		if errors.Is(err, redis.Nil) {
			// Listed id whose document was removed concurrently.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch document %s: %w", id, err)
		}

		var fields store.Fields
		if err := json.Unmarshal(payload, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
		}
		docs = append(docs, store.Document{ID: id, Fields: fields})
	}
	return docs, nil
}

func (s *Store) QueryByField(ctx context.Context, collection, field string, value interface{}) ([]store.Document, error) {
	docs, err := s.QueryAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	var out []store.Document
	for _, doc := range docs {
		if fieldEquals(doc.Fields[field], value) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

// fieldEquals compares a JSON-decoded field against a query value, folding
// numeric representations together.
func fieldEquals(field, value interface{}) bool {
	if field == value {
		return true
	}
	fn, fok := asFloat(field)
	vn, vok := asFloat(value)
	return fok && vok && fn == vn
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
