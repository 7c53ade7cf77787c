package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/pkg/email"
	"github.com/yosapark/yomogi_backend/pkg/logs"
	"github.com/yosapark/yomogi_backend/pkg/reqctx"
	"github.com/yosapark/yomogi_backend/pkg/sms"
)

// inlineQueue runs jobs synchronously so tests can inspect their effects.
type inlineQueue struct {
	jobs []Job
}

func (q *inlineQueue) Enqueue(job Job) bool {
	q.jobs = append(q.jobs, job)
	_ = job.Run(context.Background())
	return true
}

type fakeMail struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, m email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
	return f.err
}

type fakeSMS struct {
	enabled bool
	phones  []string
}

func (f *fakeSMS) IsEnabled() bool { return f.enabled }

func (f *fakeSMS) SendReservationConfirmation(_ context.Context, phone string, _ sms.ReservationParams) error {
	f.phones = append(f.phones, phone)
	return nil
}

func TestNotifier_ContactReceived(t *testing.T) {
	q := &inlineQueue{}
	mail := &fakeMail{}
	n := NewNotifier(NotifierParams{Queue: q, Mail: mail, AdminAddress: "admin@yomogi.jp", Logger: logs.Discard()})

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "req-9"})
	n.ContactReceived(ctx, &repo.ContactMessage{
		ID: uuid.New(), Name: "山田", Email: "yamada@example.com", Subject: "質問", Message: "hi", CreatedAt: time.Now(),
	})

	require.Len(t, mail.sent, 2)
	assert.Equal(t, []string{"admin@yomogi.jp"}, mail.sent[0].To)
	assert.Equal(t, []string{"yamada@example.com"}, mail.sent[1].To)
	assert.Equal(t, "req-9", q.jobs[0].RequestID)
}

func TestNotifier_ContactWithoutAdminAddress(t *testing.T) {
	mail := &fakeMail{}
	n := NewNotifier(NotifierParams{Queue: &inlineQueue{}, Mail: mail, Logger: logs.Discard()})
	n.ContactReceived(context.Background(), &repo.ContactMessage{Email: "a@example.com", Subject: "s", Message: "m"})
	require.Len(t, mail.sent, 1)
}

func TestNotifier_ReservationBooked(t *testing.T) {
	r := &repo.Reservation{ID: uuid.New(), Name: "佐藤", Email: "sato@example.com", Phone: "+819012345678", Date: "2026-11-02", Time: "10:00"}

	t.Run("email only", func(t *testing.T) {
		mail := &fakeMail{}
		text := &fakeSMS{}
		n := NewNotifier(NotifierParams{Queue: &inlineQueue{}, Mail: mail, SMS: text, Logger: logs.Discard()})
		n.ReservationBooked(context.Background(), r, "温活ブレンド")
		require.Len(t, mail.sent, 1)
		assert.Contains(t, mail.sent[0].HTMLBody, "温活ブレンド")
		assert.Empty(t, text.phones)
	})

	t.Run("email and sms", func(t *testing.T) {
		mail := &fakeMail{}
		text := &fakeSMS{enabled: true}
		n := NewNotifier(NotifierParams{Queue: &inlineQueue{}, Mail: mail, SMS: text, Logger: logs.Discard()})
		n.ReservationBooked(context.Background(), r, "温活ブレンド")
		assert.Len(t, mail.sent, 1)
		assert.Equal(t, []string{"+819012345678"}, text.phones)
	})
}

func TestNotifier_DisabledEmailIsNotAFailure(t *testing.T) {
	q := &inlineQueue{}
	n := NewNotifier(NotifierParams{Queue: q, Mail: &fakeMail{err: email.ErrDisabled}, Logger: logs.Discard()})
	n.ContactReceived(context.Background(), &repo.ContactMessage{Email: "a@example.com"})

	require.Len(t, q.jobs, 1)
	assert.NoError(t, q.jobs[0].Run(context.Background()))
}
