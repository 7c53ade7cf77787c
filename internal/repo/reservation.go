package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
	ReservationStatusCompleted = "COMPLETED"
)

// ActiveReservationStatuses are the statuses that hold a slot.
var ActiveReservationStatuses = []string{ReservationStatusPending, ReservationStatusConfirmed}

type Reservation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	Blend     string    `json:"blend"`
	Menu      string    `json:"menu,omitempty"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationFilter struct {
	Status string
	Date   string
}

type ReservationClient struct {
	c *Client
}

var reservationColumns = []string{
	"id", "name", "email", "phone", "date", "time", "blend", "menu", "message", "status", "created_at", "updated_at",
}

// Create inserts r. ErrDuplicate means the slot already holds an active booking.
func (rc *ReservationClient) Create(ctx context.Context, r *Reservation) error {
	if r.ID == uuid.Nil {
		r.ID = newID()
	}
	if r.Status == "" {
		r.Status = ReservationStatusPending
	}
	ts := now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = ts
	}
	r.UpdatedAt = r.CreatedAt

	q, args := rc.c.builder().Insert(TableReservations).
		Columns(reservationColumns...).
		Values(r.ID, r.Name, r.Email, r.Phone, r.Date, r.Time, r.Blend,
			nullString(r.Menu), nullString(r.Message), r.Status, r.CreatedAt, r.UpdatedAt).
		Query()
	if _, err := rc.c.exec(ctx, q, args); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// SlotTaken reports whether an active reservation exists for date and time.
func (rc *ReservationClient) SlotTaken(ctx context.Context, date, tm string) (bool, error) {
	q, args := rc.c.builder().Select(entsql.Count("*")).
		From(entsql.Table(TableReservations)).
		Where(entsql.And(
			entsql.EQ("date", date),
			entsql.EQ("time", tm),
			entsql.In("status", anySlice(ActiveReservationStatuses)...),
		)).
		Query()

	var n int
	if err := rc.c.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("count reservations: %w", err)
	}
	return n > 0, nil
}

// BookedTimes returns the HH:MM values held by active reservations on date.
func (rc *ReservationClient) BookedTimes(ctx context.Context, date string) ([]string, error) {
	q, args := rc.c.builder().Select("time").
		From(entsql.Table(TableReservations)).
		Where(entsql.And(
			entsql.EQ("date", date),
			entsql.In("status", anySlice(ActiveReservationStatuses)...),
		)).
		OrderBy(entsql.Asc("time")).
		Query()

	rows, err := rc.c.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan booked time: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// List returns reservations ordered by date then time.
func (rc *ReservationClient) List(ctx context.Context, f ReservationFilter) ([]*Reservation, error) {
	sel := rc.c.builder().Select(reservationColumns...).
		From(entsql.Table(TableReservations)).
		OrderBy(entsql.Asc("date"), entsql.Asc("time"))
	if f.Status != "" {
		sel.Where(entsql.EQ("status", f.Status))
	}
	if f.Date != "" {
		sel.Where(entsql.EQ("date", f.Date))
	}

	q, args := sel.Query()
	rows, err := rc.c.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (rc *ReservationClient) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	q, args := rc.c.builder().Select(reservationColumns...).
		From(entsql.Table(TableReservations)).
		Where(entsql.EQ("id", id)).
		Query()

	r, err := scanReservation(rc.c.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

// UpdateStatus sets the status of reservation id and returns the updated row.
func (rc *ReservationClient) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Reservation, error) {
	q, args := rc.c.builder().Update(TableReservations).
		Set("status", status).
		Set("updated_at", now()).
		Where(entsql.EQ("id", id)).
		Query()

	res, err := rc.c.exec(ctx, q, args)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return rc.Get(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(s rowScanner) (*Reservation, error) {
	var (
		r             Reservation
		menu, message sql.NullString
	)
	err := s.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.Date, &r.Time, &r.Blend,
		&menu, &message, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	r.Menu = menu.String
	r.Message = message.String
	return &r, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
