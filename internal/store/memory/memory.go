package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/salon-api/internal/store"
)

// Store is an in-memory document store. It backs tests and the "memory"
// backend of the dev config. Documents keep insertion order per collection.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]store.Document
}

func New() *Store {
	return &Store{collections: make(map[string][]store.Document)}
}

func (s *Store) Insert(_ context.Context, collection string, fields store.Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.collections[collection] = append(s.collections[collection], store.Document{
		ID:     id,
		Fields: cloneFields(fields),
	})
	return id, nil
}

func (s *Store) Replace(_ context.Context, collection, id string, fields store.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i := range docs {
		if docs[i].ID == id {
			docs[i].Fields = cloneFields(fields)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) Remove(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i := range docs {
		if docs[i].ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) QueryAll(_ context.Context, collection string) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	out := make([]store.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, store.Document{ID: doc.ID, Fields: cloneFields(doc.Fields)})
	}
	return out, nil
}

func (s *Store) QueryByField(_ context.Context, collection, field string, value interface{}) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Document
	for _, doc := range s.collections[collection] {
		if doc.Fields[field] == value {
			out = append(out, store.Document{ID: doc.ID, Fields: cloneFields(doc.Fields)})
		}
	}
	return out, nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

func cloneFields(fields store.Fields) store.Fields {
	out := make(store.Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
