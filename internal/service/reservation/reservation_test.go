package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/internal/service/catalog"
	"github.com/yosapark/yomogi_backend/pkg/logs"
)

type fakeStore struct {
	created   []*repo.Reservation
	taken     bool
	createErr error
	booked    []string
	filter    repo.ReservationFilter
	updateErr error
}

func (f *fakeStore) Create(_ context.Context, r *repo.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	r.ID = uuid.New()
	f.created = append(f.created, r)
	return nil
}

func (f *fakeStore) SlotTaken(context.Context, string, string) (bool, error) { return f.taken, nil }

func (f *fakeStore) BookedTimes(context.Context, string) ([]string, error) { return f.booked, nil }

func (f *fakeStore) List(_ context.Context, filter repo.ReservationFilter) ([]*repo.Reservation, error) {
	f.filter = filter
	return f.created, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*repo.Reservation, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &repo.Reservation{ID: id, Status: status}, nil
}

type fakeNotifier struct {
	booked []string
}

func (f *fakeNotifier) ContactReceived(context.Context, *repo.ContactMessage) {}

func (f *fakeNotifier) ReservationBooked(_ context.Context, _ *repo.Reservation, blendLabel string) {
	f.booked = append(f.booked, blendLabel)
}

func newService(store Store, n *fakeNotifier) Service {
	return New(Params{
		Store:         store,
		Blends:        catalog.New(),
		Notifier:      n,
		DefaultRegion: "jp",
		Logger:        logs.Discard(),
	})
}

func validRequest() BookRequest {
	return BookRequest{
		Name:  "佐藤 由美",
		Email: "yumi@example.com",
		Phone: "090-1234-5678",
		Date:  "2026-11-02",
		Time:  "9:30",
		Blend: "warming",
	}
}

func TestBook(t *testing.T) {
	store := &fakeStore{}
	n := &fakeNotifier{}

	r, err := newService(store, n).Book(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, repo.ReservationStatusPending, r.Status)
	assert.Equal(t, "+819012345678", r.Phone)
	assert.Equal(t, "09:30", r.Time)
	assert.Equal(t, "2026-11-02", r.Date)
	assert.Len(t, store.created, 1)
	assert.Equal(t, []string{"温活ブレンド"}, n.booked)
}

func TestBook_KeepsUnparseablePhone(t *testing.T) {
	req := validRequest()
	req.Phone = "call me"
	r, err := newService(&fakeStore{}, &fakeNotifier{}).Book(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "call me", r.Phone)
}

func TestBook_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookRequest)
		want   error
	}{
		{"missing name", func(r *BookRequest) { r.Name = "" }, ErrInvalidInput},
		{"missing phone", func(r *BookRequest) { r.Phone = " " }, ErrInvalidInput},
		{"missing blend", func(r *BookRequest) { r.Blend = "" }, ErrInvalidInput},
		{"bad date", func(r *BookRequest) { r.Date = "2026/11/02" }, ErrInvalidDate},
		{"impossible date", func(r *BookRequest) { r.Date = "2026-02-30" }, ErrInvalidDate},
		{"bad time", func(r *BookRequest) { r.Time = "25:00" }, ErrInvalidTime},
		{"unknown blend", func(r *BookRequest) { r.Blend = "espresso" }, ErrUnknownBlend},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			n := &fakeNotifier{}
			req := validRequest()
			tc.mutate(&req)

			_, err := newService(store, n).Book(context.Background(), req)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, store.created)
			assert.Empty(t, n.booked)
		})
	}
}

func TestBook_SlotTaken(t *testing.T) {
	t.Run("seen by the check", func(t *testing.T) {
		_, err := newService(&fakeStore{taken: true}, &fakeNotifier{}).Book(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("lost the insert race", func(t *testing.T) {
		n := &fakeNotifier{}
		_, err := newService(&fakeStore{createErr: repo.ErrDuplicate}, n).Book(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Empty(t, n.booked)
	})

	t.Run("store failure", func(t *testing.T) {
		_, err := newService(&fakeStore{createErr: errors.New("boom")}, &fakeNotifier{}).Book(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestSlots(t *testing.T) {
	times := SlotTimes()
	require.Len(t, times, 19)
	assert.Equal(t, "10:00", times[0])
	assert.Equal(t, "19:00", times[len(times)-1])

	slots, err := newService(&fakeStore{booked: []string{"10:30", "15:00"}}, nil).Slots(context.Background(), "2026-11-02")
	require.NoError(t, err)
	require.Len(t, slots, 19)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.Equal(t, Slot{Time: "15:00", Available: false}, slots[10])

	_, err = newService(&fakeStore{}, nil).Slots(context.Background(), "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestList(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store, nil)

	_, err := svc.List(context.Background(), ListRequest{Status: "confirmed", Date: "2026-11-02"})
	require.NoError(t, err)
	assert.Equal(t, repo.ReservationFilter{Status: repo.ReservationStatusConfirmed, Date: "2026-11-02"}, store.filter)

	_, err = svc.List(context.Background(), ListRequest{Status: "LOST"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.NewString()

	r, err := newService(&fakeStore{}, nil).UpdateStatus(context.Background(), id, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, repo.ReservationStatusConfirmed, r.Status)

	_, err = newService(&fakeStore{}, nil).UpdateStatus(context.Background(), id, "ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = newService(&fakeStore{updateErr: repo.ErrNotFound}, nil).UpdateStatus(context.Background(), id, "CANCELLED")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = newService(&fakeStore{}, nil).UpdateStatus(context.Background(), "nope", "CANCELLED")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = newService(&fakeStore{updateErr: repo.ErrDuplicate}, nil).UpdateStatus(context.Background(), id, "PENDING")
	assert.ErrorIs(t, err, ErrSlotTaken)
}
