package store

import (
	"context"
	"errors"
)

// Collections used by the application.
const (
	CollectionService = "Service"
	CollectionLogin   = "Login"
)

// ErrNotFound is returned by Replace and Remove when no document with the
// given id exists in the collection.
var ErrNotFound = errors.New("document not found")

// Fields is the schemaless payload of a document.
type Fields map[string]interface{}

// Document pairs a store-assigned id with its fields.
type Document struct {
	ID     string
	Fields Fields
}

// Store is a collection-oriented document store. Implementations assign
// opaque ids on insert and preserve insertion order in query results, so
// "first match" is first-in-store-order everywhere.
type Store interface {
	Insert(ctx context.Context, collection string, fields Fields) (string, error)
	Replace(ctx context.Context, collection, id string, fields Fields) error
	Remove(ctx context.Context, collection, id string) error
	QueryAll(ctx context.Context, collection string) ([]Document, error)
	QueryByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error)
	Ping(ctx context.Context) error
	Close() error
}
