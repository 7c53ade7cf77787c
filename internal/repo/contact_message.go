package repo

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	ContactStatusUnread  = "UNREAD"
	ContactStatusRead    = "READ"
	ContactStatusReplied = "REPLIED"
)

// ContactMessage is a message submitted via the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactFilter struct {
	Status string
	Limit  int
}

type ContactMessageClient struct {
	c *Client
}

var contactColumns = []string{"id", "name", "email", "subject", "message", "status", "created_at"}

// Create inserts m, assigning its id, status and timestamp when unset.
func (cc *ContactMessageClient) Create(ctx context.Context, m *ContactMessage) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}
	if m.Status == "" {
		m.Status = ContactStatusUnread
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now()
	}

	q, args := cc.c.builder().Insert(TableContactMessages).
		Columns(contactColumns...).
		Values(m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status, m.CreatedAt).
		Query()
	if _, err := cc.c.exec(ctx, q, args); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List returns messages newest first.
func (cc *ContactMessageClient) List(ctx context.Context, f ContactFilter) ([]*ContactMessage, error) {
	sel := cc.c.builder().Select(contactColumns...).
		From(entsql.Table(TableContactMessages)).
		OrderBy(entsql.Desc("created_at"))
	if f.Status != "" {
		sel.Where(entsql.EQ("status", f.Status))
	}
	if f.Limit > 0 {
		sel.Limit(f.Limit)
	}

	q, args := sel.Query()
	rows, err := cc.c.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var out []*ContactMessage
	for rows.Next() {
		m := &ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
