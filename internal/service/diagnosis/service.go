package diagnosis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/yosapark/yomogi_backend/internal/repo"
	"github.com/yosapark/yomogi_backend/pkg/reqctx"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// QuestionView is a bank question with its display title.
type QuestionView struct {
	Question
	Title string `json:"title"`
}

// SubmitRequest carries answers keyed by the question id as sent by clients.
type SubmitRequest struct {
	Answers map[string]string
	UserID  string
}

type Outcome struct {
	Result
	Profile     BodyType `json:"profile"`
	Saved       bool     `json:"saved"`
	DiagnosisID string   `json:"diagnosis_id,omitempty"`
}

type ListRequest struct {
	UserID   string
	BodyType string
	Limit    int
}

// Store is the persistence the service needs. *repo.DiagnosisClient
// satisfies it.
type Store interface {
	Create(ctx context.Context, d *repo.Diagnosis) error
	Get(ctx context.Context, id uuid.UUID) (*repo.Diagnosis, error)
	List(ctx context.Context, f repo.DiagnosisFilter) ([]*repo.Diagnosis, error)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Questions(ctx context.Context) []QuestionView
	Submit(ctx context.Context, req SubmitRequest) Outcome
	List(ctx context.Context, req ListRequest) ([]*repo.Diagnosis, error)
	Get(ctx context.Context, id string) (*repo.Diagnosis, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type ServiceParams struct {
	Engine         *Engine
	Store          Store
	PersistTimeout time.Duration
	Logger         *slog.Logger
}

type service struct {
	engine         *Engine
	store          Store
	persistTimeout time.Duration
	logger         *slog.Logger
	results        metric.Int64Counter
}

func NewService(p ServiceParams) Service {
	if p.Engine == nil {
		p.Engine = NewEngine()
	}
	if p.PersistTimeout <= 0 {
		p.PersistTimeout = 5 * time.Second
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}

	// Without a configured provider the global meter is a no-op.
	counter, err := otel.Meter("yomogi/diagnosis").Int64Counter(
		"diagnosis_results",
		metric.WithDescription("Completed diagnoses by final body type"),
	)
	if err != nil {
		p.Logger.Warn("diagnosis counter unavailable", "error", err)
	}

	return &service{
		engine:         p.Engine,
		store:          p.Store,
		persistTimeout: p.PersistTimeout,
		logger:         p.Logger.With(slog.String("component", "diagnosis")),
		results:        counter,
	}
}

func (s *service) Questions(_ context.Context) []QuestionView {
	bank := s.engine.Questions()
	out := make([]QuestionView, len(bank))
	for i, q := range bank {
		out[i] = QuestionView{Question: q, Title: s.engine.Title(i)}
	}
	return out
}

// Submit scores the answers and stores the result best-effort. Keys that are
// not question ids are ignored like any other unmatched answer.
func (s *service) Submit(ctx context.Context, req SubmitRequest) Outcome {
	answers := make(Answers, len(req.Answers))
	for k, v := range req.Answers {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		answers[id] = v
	}

	res := s.engine.Compute(answers)
	profile, _ := LookupBodyType(res.BodyType)
	out := Outcome{Result: res, Profile: profile}

	if s.results != nil {
		s.results.Add(ctx, 1, metric.WithAttributes(
			attribute.String("category", res.BodyType),
			attribute.Bool("near_tie", res.NearTie),
		))
	}

	if id, ok := s.persist(ctx, req, res); ok {
		out.Saved = true
		out.DiagnosisID = id.String()
	}
	return out
}

func (s *service) persist(ctx context.Context, req SubmitRequest, res Result) (uuid.UUID, bool) {
	if s.store == nil {
		return uuid.Nil, false
	}

	// The result is returned even if the caller goes away mid-save.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()

	rec := toRecord(req, res, len(s.engine.titles))
	if err := s.store.Create(ctx, rec); err != nil {
		reqctx.Logger(ctx, s.logger).Warn("diagnosis not saved",
			"body_type", res.BodyType,
			"error", err,
		)
		return uuid.Nil, false
	}
	return rec.ID, true
}

func toRecord(req SubmitRequest, res Result, titleCount int) *repo.Diagnosis {
	answers := make([]repo.DiagnosisAnswer, len(res.Details))
	for i, d := range res.Details {
		answers[i] = repo.DiagnosisAnswer(d)
	}

	raw := make(map[string]string, len(req.Answers))
	for k, v := range req.Answers {
		raw[k] = v
	}

	return &repo.Diagnosis{
		UserID:     req.UserID,
		BodyType:   res.BodyType,
		NearTie:    res.NearTie,
		Answers:    answers,
		RawAnswers: raw,
		TypeScores: res.TypeScores,
		TypeCount:  res.TypeCount,
		Summary: repo.DiagnosisSummary{
			TotalQuestions: len(res.Details),
			DominantType:   res.BodyType,
			DominantScore:  res.TypeScores[res.BodyType],
			QuestionCount:  titleCount,
		},
	}
}

func (s *service) List(ctx context.Context, req ListRequest) ([]*repo.Diagnosis, error) {
	limit := req.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	items, err := s.store.List(ctx, repo.DiagnosisFilter{
		UserID:   req.UserID,
		BodyType: req.BodyType,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list diagnoses: %w", err)
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id string) (*repo.Diagnosis, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	d, err := s.store.Get(ctx, uid)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get diagnosis: %w", err)
	}
	return d, nil
}
