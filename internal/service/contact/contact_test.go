package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/pkg/logs"
)

type fakeStore struct {
	saved  []*repo.ContactMessage
	filter repo.ContactFilter
	err    error
}

func (f *fakeStore) Create(_ context.Context, m *repo.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	m.ID = uuid.New()
	f.saved = append(f.saved, m)
	return nil
}

func (f *fakeStore) List(_ context.Context, filter repo.ContactFilter) ([]*repo.ContactMessage, error) {
	f.filter = filter
	return f.saved, f.err
}

type fakeNotifier struct {
	contacts []*repo.ContactMessage
}

func (f *fakeNotifier) ContactReceived(_ context.Context, m *repo.ContactMessage) {
	f.contacts = append(f.contacts, m)
}

func (f *fakeNotifier) ReservationBooked(context.Context, *repo.Reservation, string) {}

func TestSubmit(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := New(store, notifier, logs.Discard())

	msg, err := svc.Submit(context.Background(), CreateRequest{
		Name: " 山田 花子 ", Email: "hanako@example.com", Subject: "予約について", Message: "駐車場はありますか？",
	})
	require.NoError(t, err)
	assert.Equal(t, "山田 花子", msg.Name)
	assert.Equal(t, repo.ContactStatusUnread, msg.Status)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	require.Len(t, notifier.contacts, 1)
	assert.Same(t, msg, notifier.contacts[0])
}

func TestSubmit_RequiresAllFields(t *testing.T) {
	full := CreateRequest{Name: "a", Email: "b@example.com", Subject: "c", Message: "d"}
	cases := map[string]func(*CreateRequest){
		"name":    func(r *CreateRequest) { r.Name = "" },
		"email":   func(r *CreateRequest) { r.Email = "  " },
		"subject": func(r *CreateRequest) { r.Subject = "" },
		"message": func(r *CreateRequest) { r.Message = "\n" },
	}
	for field, blank := range cases {
		t.Run(field, func(t *testing.T) {
			store := &fakeStore{}
			notifier := &fakeNotifier{}
			req := full
			blank(&req)

			_, err := New(store, notifier, logs.Discard()).Submit(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, store.saved)
			assert.Empty(t, notifier.contacts)
		})
	}
}

func TestSubmit_StoreFailureSkipsNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := New(&fakeStore{err: errors.New("db down")}, notifier, logs.Discard())

	_, err := svc.Submit(context.Background(), CreateRequest{Name: "a", Email: "b", Subject: "c", Message: "d"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.contacts)
}

func TestList_ClampsLimit(t *testing.T) {
	for in, want := range map[int]int{0: 50, 10: 10, 500: 200} {
		store := &fakeStore{}
		_, err := New(store, nil, logs.Discard()).List(context.Background(), ListRequest{Status: repo.ContactStatusRead, Limit: in})
		require.NoError(t, err)
		assert.Equal(t, want, store.filter.Limit)
		assert.Equal(t, repo.ContactStatusRead, store.filter.Status)
	}
}
