// Package repo is the relational store for contact messages, reservations
// and diagnosis results. Queries are built with ent's SQL builder so the
// same code runs on PostgreSQL and SQLite.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/google/uuid"
)

// Client bundles the per-table stores over one connection pool.
type Client struct {
	db      *sql.DB
	dialect string

	ContactMessage *ContactMessageClient
	Reservation    *ReservationClient
	Diagnosis      *DiagnosisClient
}

// NewClient wraps db. d is an ent dialect name (dialect.Postgres or dialect.SQLite).
func NewClient(db *sql.DB, d string) *Client {
	c := &Client{db: db, dialect: d}
	c.ContactMessage = &ContactMessageClient{c: c}
	c.Reservation = &ReservationClient{c: c}
	c.Diagnosis = &DiagnosisClient{c: c}
	return c
}

// Open is a shortcut for tests and tools: sql.Open plus NewClient.
func Open(driverName, dsn string) (*Client, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	d := dialect.Postgres
	if driverName == dialect.SQLite {
		d = dialect.SQLite
	}
	return NewClient(db, d), nil
}

// Migrate creates missing tables, columns and indexes. It never drops anything.
func (c *Client) Migrate(ctx context.Context) error {
	m, err := schema.NewMigrate(entsql.OpenDB(c.dialect, c.db))
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) builder() *entsql.DialectBuilder {
	return entsql.Dialect(c.dialect)
}

func (c *Client) exec(ctx context.Context, q string, args []any) (sql.Result, error) {
	return c.db.ExecContext(ctx, q, args...)
}

func (c *Client) query(ctx context.Context, q string, args []any) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, q, args...)
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

func now() time.Time {
	return time.Now().UTC()
}
