package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/samber/lo"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/internal/service/catalog"
	"github.com/yosapark/yomogi_backend/internal/service/notification"
	"github.com/yosapark/yomogi_backend/pkg/reqctx"
)

var statuses = []string{
	repo.ReservationStatusPending,
	repo.ReservationStatusConfirmed,
	repo.ReservationStatusCancelled,
	repo.ReservationStatusCompleted,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Date    string `json:"date" form:"date"`
	Time    string `json:"time" form:"time"`
	Blend   string `json:"blend" form:"blend"`
	Menu    string `json:"menu" form:"menu"`
	Message string `json:"message" form:"message"`
}

type ListRequest struct {
	Status string
	Date   string
}

type Store interface {
	Create(ctx context.Context, r *repo.Reservation) error
	SlotTaken(ctx context.Context, date, tm string) (bool, error)
	BookedTimes(ctx context.Context, date string) ([]string, error)
	List(ctx context.Context, f repo.ReservationFilter) ([]*repo.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*repo.Reservation, error)
}

type BlendLookup interface {
	GetBlend(ctx context.Context, key string) (catalog.Blend, error)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, req BookRequest) (*repo.Reservation, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Reservation, error)
	Slots(ctx context.Context, date string) ([]Slot, error)
	UpdateStatus(ctx context.Context, id, status string) (*repo.Reservation, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type Params struct {
	Store         Store
	Blends        BlendLookup
	Notifier      notification.Notifier
	DefaultRegion string
	Logger        *slog.Logger
}

type reservationService struct {
	store    Store
	blends   BlendLookup
	notifier notification.Notifier
	region   string
	logger   *slog.Logger
}

func New(p Params) Service {
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	if p.DefaultRegion == "" {
		p.DefaultRegion = "JP"
	}
	return &reservationService{
		store:    p.Store,
		blends:   p.Blends,
		notifier: p.Notifier,
		region:   strings.ToUpper(p.DefaultRegion),
		logger:   p.Logger.With(slog.String("component", "reservation")),
	}
}

func (s *reservationService) Book(ctx context.Context, req BookRequest) (*repo.Reservation, error) {
	r := &repo.Reservation{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Blend:   strings.TrimSpace(req.Blend),
		Menu:    strings.TrimSpace(req.Menu),
		Message: strings.TrimSpace(req.Message),
		Status:  repo.ReservationStatusPending,
	}
	date, tm := strings.TrimSpace(req.Date), strings.TrimSpace(req.Time)
	if r.Name == "" || r.Email == "" || r.Phone == "" || date == "" || tm == "" || r.Blend == "" {
		return nil, ErrInvalidInput
	}

	var err error
	if r.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	if r.Time, err = parseClock(tm); err != nil {
		return nil, err
	}

	blend, err := s.blends.GetBlend(ctx, r.Blend)
	if err != nil {
		return nil, ErrUnknownBlend
	}
	r.Phone = s.normalizePhone(r.Phone)

	log := reqctx.Logger(ctx, s.logger)

	taken, err := s.store.SlotTaken(ctx, r.Date, r.Time)
	if err != nil {
		log.Error("slot check failed", "date", r.Date, "time", r.Time, "error", err)
		return nil, ErrInternal
	}
	if taken {
		return nil, ErrSlotTaken
	}

	if err := s.store.Create(ctx, r); err != nil {
		// Another booking won the slot between the check and the insert.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrSlotTaken
		}
		log.Error("reservation not saved", "error", err)
		return nil, ErrInternal
	}

	log.Info("reservation booked", "reservation_id", r.ID, "date", r.Date, "time", r.Time)
	if s.notifier != nil {
		s.notifier.ReservationBooked(ctx, r, blend.Label)
	}
	return r, nil
}

// normalizePhone returns the E.164 form of raw when it parses as a valid
// number, and raw unchanged otherwise.
func (s *reservationService) normalizePhone(raw string) string {
	num, err := phonenumbers.Parse(raw, s.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func (s *reservationService) List(ctx context.Context, req ListRequest) ([]*repo.Reservation, error) {
	f := repo.ReservationFilter{Status: strings.ToUpper(req.Status)}
	if f.Status != "" && !slices.Contains(statuses, f.Status) {
		return nil, ErrInvalidStatus
	}
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		f.Date = d
	}

	items, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return items, nil
}

func (s *reservationService) Slots(ctx context.Context, date string) ([]Slot, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	booked, err := s.store.BookedTimes(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("list booked times: %w", err)
	}

	return lo.Map(SlotTimes(), func(t string, _ int) Slot {
		return Slot{Time: t, Available: !lo.Contains(booked, t)}
	}), nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, id, status string) (*repo.Reservation, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !slices.Contains(statuses, status) {
		return nil, ErrInvalidStatus
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r, err := s.store.UpdateStatus(ctx, uid, status)
	switch {
	case err == nil:
		return r, nil
	case repo.IsNotFound(err):
		return nil, ErrNotFound
	case errors.Is(err, repo.ErrDuplicate):
		// Reactivating a cancelled booking whose slot was rebooked.
		return nil, ErrSlotTaken
	default:
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
}
