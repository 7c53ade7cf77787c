package diagnosis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/pkg/logs"
)

type fakeStore struct {
	created []*repo.Diagnosis
	err     error
	filter  repo.DiagnosisFilter
	ctxErr  error
}

func (f *fakeStore) Create(ctx context.Context, d *repo.Diagnosis) error {
	f.ctxErr = ctx.Err()
	if f.err != nil {
		return f.err
	}
	d.ID = uuid.New()
	f.created = append(f.created, d)
	return nil
}

func (f *fakeStore) Get(_ context.Context, id uuid.UUID) (*repo.Diagnosis, error) {
	for _, d := range f.created {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeStore) List(_ context.Context, filter repo.DiagnosisFilter) ([]*repo.Diagnosis, error) {
	f.filter = filter
	return f.created, f.err
}

func newTestService(store Store) Service {
	return NewService(ServiceParams{
		Engine:         NewEngine(fixedRand(0.1)),
		Store:          store,
		PersistTimeout: time.Second,
		Logger:         logs.Discard(),
	})
}

var clearCold = map[string]string{
	"1":  "very_cold",
	"11": "winter",
	"13": "severe",
	"18": "often",
	"27": "very_weak",
}

func TestService_SubmitPersists(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	out := svc.Submit(context.Background(), SubmitRequest{Answers: clearCold, UserID: "u-1"})

	assert.Equal(t, Cold, out.BodyType)
	assert.False(t, out.NearTie)
	assert.Equal(t, Cold, out.Profile.Key)
	require.True(t, out.Saved)
	require.Len(t, store.created, 1)
	assert.Equal(t, store.created[0].ID.String(), out.DiagnosisID)

	rec := store.created[0]
	assert.Equal(t, "u-1", rec.UserID)
	assert.Equal(t, clearCold, rec.RawAnswers)
	assert.Len(t, rec.Answers, 5)
	assert.Equal(t, repo.DiagnosisSummary{
		TotalQuestions: 5,
		DominantType:   Cold,
		DominantScore:  out.TypeScores[Cold],
		QuestionCount:  len(Titles),
	}, rec.Summary)
}

func TestService_SubmitIgnoresBadKeys(t *testing.T) {
	svc := newTestService(&fakeStore{})
	out := svc.Submit(context.Background(), SubmitRequest{Answers: map[string]string{"abc": "very_cold", "999": "x"}})
	assert.Equal(t, Balanced, out.BodyType)
	assert.Empty(t, out.Details)
}

func TestService_SubmitSurvivesStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := newTestService(store)

	out := svc.Submit(context.Background(), SubmitRequest{Answers: clearCold})
	assert.Equal(t, Cold, out.BodyType)
	assert.False(t, out.Saved)
	assert.Empty(t, out.DiagnosisID)
}

func TestService_SubmitOutlivesCancelledRequest(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := svc.Submit(ctx, SubmitRequest{Answers: clearCold})

	assert.True(t, out.Saved)
	assert.NoError(t, store.ctxErr)
}

func TestService_SubmitWithoutStore(t *testing.T) {
	svc := NewService(ServiceParams{Logger: logs.Discard()})
	out := svc.Submit(context.Background(), SubmitRequest{})
	assert.Equal(t, Balanced, out.BodyType)
	assert.False(t, out.Saved)
}

func TestService_Questions(t *testing.T) {
	qs := newTestService(&fakeStore{}).Questions(context.Background())
	require.Len(t, qs, len(Bank))
	assert.Equal(t, Titles[0], qs[0].Title)
	assert.Equal(t, Bank[0].ID, qs[0].ID)
}

func TestService_ListClampsLimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 10},
		{-5, 10},
		{25, 25},
		{1000, 100},
	}
	for _, tc := range cases {
		store := &fakeStore{}
		_, err := newTestService(store).List(context.Background(), ListRequest{Limit: tc.in, BodyType: Cold})
		require.NoError(t, err)
		assert.Equal(t, tc.want, store.filter.Limit, "limit %d", tc.in)
		assert.Equal(t, Cold, store.filter.BodyType)
	}
}

func TestService_Get(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	out := svc.Submit(context.Background(), SubmitRequest{Answers: clearCold})

	got, err := svc.Get(context.Background(), out.DiagnosisID)
	require.NoError(t, err)
	assert.Equal(t, Cold, got.BodyType)

	_, err = svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
