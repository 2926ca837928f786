package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jwalitptl/salon-api/internal/config"
	"github.com/jwalitptl/salon-api/internal/store"
)

// Store keeps every document in a single table:
//
//	CREATE TABLE documents (
//		id          UUID PRIMARY KEY,
//		collection  TEXT NOT NULL,
//		data        JSONB NOT NULL,
//		inserted_at TIMESTAMPTZ NOT NULL
//	);
//
// inserted_at orders query results so first-match semantics follow
// insertion order.
type Store struct {
	db *sqlx.DB
}

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, collection string, fields store.Fields) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO documents (id, collection, data, inserted_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query, id, collection, data, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}
	return id, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, fields store.Fields) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		UPDATE documents
		SET data = $1
		WHERE collection = $2 AND id = $3
	`
	result, err := s.db.ExecContext(ctx, query, data, collection, id)
	if err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, collection, id string) error {
	query := `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2
	`
	result, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) QueryAll(ctx context.Context, collection string) ([]store.Document, error) {
	query := `
		SELECT id, data
		FROM documents
		WHERE collection = $1
		ORDER BY inserted_at, id
	`
	rows, err := s.db.QueryxContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *Store) QueryByField(ctx context.Context, collection, field string, value interface{}) ([]store.Document, error) {
	match, err := json.Marshal(store.Fields{field: value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query value: %w", err)
	}

	query := `
		SELECT id, data
		FROM documents
		WHERE collection = $1 AND data @> $2
		ORDER BY inserted_at, id
	`
	rows, err := s.db.QueryxContext(ctx, query, collection, match)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scanDocuments(rows *sqlx.Rows) ([]store.Document, error) {
	var docs []store.Document
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		var fields store.Fields
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
		}
		docs = append(docs, store.Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}
