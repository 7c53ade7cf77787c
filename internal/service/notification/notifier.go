package notification

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/pkg/email"
	"github.com/yosapark/yomogi_backend/pkg/reqctx"
	"github.com/yosapark/yomogi_backend/pkg/sms"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Notifier queues the transactional messages of the contact and booking
// flows. Calls never block on delivery and never fail the caller.
type Notifier interface {
	ContactReceived(ctx context.Context, msg *repo.ContactMessage)
	ReservationBooked(ctx context.Context, r *repo.Reservation, blendLabel string)
}

// Enqueuer is the part of *Dispatcher the notifier needs.
type Enqueuer interface {
	Enqueue(job Job) bool
}

// SMSSender is the part of *sms.Client the notifier needs.
type SMSSender interface {
	IsEnabled() bool
	SendReservationConfirmation(ctx context.Context, phone string, p sms.ReservationParams) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type NotifierParams struct {
	Queue        Enqueuer
	Mail         email.Sender
	SMS          SMSSender
	AdminAddress string
	Salon        email.Salon
	Logger       *slog.Logger
}

type notifier struct {
	p NotifierParams
}

func NewNotifier(p NotifierParams) Notifier {
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return &notifier{p: p}
}

func (n *notifier) ContactReceived(ctx context.Context, msg *repo.ContactMessage) {
	data := email.ContactEmailData{
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
		Salon:     n.p.Salon,
	}
	reqID := reqctx.RequestIDFromContext(ctx)

	if n.p.AdminAddress != "" {
		n.mail(reqID, "contact_admin_notice", email.BuildContactNotificationEmail(n.p.AdminAddress, data))
	}
	n.mail(reqID, "contact_confirmation", email.BuildContactConfirmationEmail(data))
}

func (n *notifier) ReservationBooked(ctx context.Context, r *repo.Reservation, blendLabel string) {
	reqID := reqctx.RequestIDFromContext(ctx)

	n.mail(reqID, "reservation_confirmation", email.BuildReservationConfirmationEmail(email.ReservationEmailData{
		ID:         r.ID.String(),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Date:       r.Date,
		Time:       r.Time,
		BlendLabel: blendLabel,
		Menu:       r.Menu,
		Message:    r.Message,
		Salon:      n.p.Salon,
	}))

	if n.p.SMS == nil || !n.p.SMS.IsEnabled() {
		return
	}
	phone := r.Phone
	params := sms.ReservationParams{Name: r.Name, Date: r.Date, Time: r.Time, Blend: blendLabel}
	n.p.Queue.Enqueue(Job{
		Name:      "reservation_sms",
		RequestID: reqID,
		Run: func(ctx context.Context) error {
			return n.p.SMS.SendReservationConfirmation(ctx, phone, params)
		},
	})
}

func (n *notifier) mail(reqID, name string, m email.Message) {
	if n.p.Mail == nil {
		return
	}
	n.p.Queue.Enqueue(Job{
		Name:      name,
		RequestID: reqID,
		Run: func(ctx context.Context) error {
			err := n.p.Mail.Send(ctx, m)
			if errors.Is(err, email.ErrDisabled) {
				n.p.Logger.Debug("email disabled, skipped", "job", name, "request_id", reqID)
				return nil
			}
			return err
		},
	})
}
