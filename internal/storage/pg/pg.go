// Package pg is a small document store on top of PostgreSQL JSONB.
//
// Each collection is a table of (id, doc) rows. Documents are found either by
// JSONB containment of a filter document or by a full scan in insertion order.
package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/vidarbha-bioenergy/contact-api/internal/domain"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
)

//go:embed migrations/init.sql
var schema string

const queryTimeout = 5 * time.Second

// unique_violation
const uniqueViolation = "23505"

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Storage struct {
	db *sql.DB
}

// New connects to databaseURL and makes sure the collections exist.
func New(ctx context.Context, databaseURL string) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db}, nil
}

func Connect(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Ping is used by the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// collection quotes a known collection name for use in a query.
func collection(name string) (string, error) {
	switch name {
	case domain.AdminsCollection, domain.ContactsCollection, domain.InquiriesCollection:
		return pq.QuoteIdentifier(name), nil
	default:
		return "", fmt.Errorf("unknown collection %q", name)
	}
}

// =========================================================================
// Core document operations. They accept a Querier and are transaction-agnostic.
// =========================================================================

func insert(ctx context.Context, q Querier, coll, id string, doc any) error {
	table, err := collection(coll)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf("INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)", table)
	if _, err := q.ExecContext(ctx, query, id, string(raw)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return internal_errors.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to insert into %s: %w", coll, err)
	}
	return nil
}

// find returns documents containing filter, in insertion order. An empty
// filter matches every document.
func find(ctx context.Context, q Querier, coll string, filter map[string]any) ([]json.RawMessage, error) {
	table, err := collection(coll)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = map[string]any{}
	}
	rawFilter, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT doc FROM %s WHERE doc @> $1::jsonb ORDER BY seq", table)
	rows, err := q.QueryContext(ctx, query, string(rawFilter))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll, err)
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", coll, err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return docs, nil
}

func findAll(ctx context.Context, q Querier, coll string) ([]json.RawMessage, error) {
	return find(ctx, q, coll, nil)
}

func decodeAll[T any](docs []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}
