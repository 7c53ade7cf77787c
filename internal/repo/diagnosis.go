package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// DiagnosisAnswer is one scored answer as kept for audit.
type DiagnosisAnswer struct {
	QuestionTitle string `json:"question_title"`
	QuestionID    int    `json:"question_id"`
	AnswerValue   string `json:"answer_value"`
	Label         string `json:"label"`
	Category      string `json:"category"`
	Score         int    `json:"score"`
}

type DiagnosisSummary struct {
	TotalQuestions int    `json:"total_questions"`
	DominantType   string `json:"dominant_type"`
	DominantScore  int    `json:"dominant_score"`
	QuestionCount  int    `json:"question_count"`
}

// Diagnosis is a write-once quiz result. Category keys in TypeScores and
// TypeCount are raw tags; BodyType is the normalized outcome.
type Diagnosis struct {
	ID         uuid.UUID         `json:"id"`
	UserID     string            `json:"user_id,omitempty"`
	BodyType   string            `json:"body_type"`
	NearTie    bool              `json:"near_tie"`
	Answers    []DiagnosisAnswer `json:"answers"`
	RawAnswers map[string]string `json:"raw_answers"`
	TypeScores map[string]int    `json:"type_scores"`
	TypeCount  map[string]int    `json:"type_count"`
	Summary    DiagnosisSummary  `json:"summary"`
	CreatedAt  time.Time         `json:"created_at"`
}

type DiagnosisFilter struct {
	UserID   string
	BodyType string
	Limit    int
}

type DiagnosisClient struct {
	c *Client
}

var diagnosisColumns = []string{
	"id", "user_id", "body_type", "near_tie", "answers", "raw_answers", "type_scores", "type_count", "summary", "created_at",
}

func (dc *DiagnosisClient) Create(ctx context.Context, d *Diagnosis) error {
	if d.ID == uuid.Nil {
		d.ID = newID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now()
	}

	blobs, err := marshalAll(d.Answers, d.RawAnswers, d.TypeScores, d.TypeCount, d.Summary)
	if err != nil {
		return fmt.Errorf("encode diagnosis: %w", err)
	}

	q, args := dc.c.builder().Insert(TableDiagnoses).
		Columns(diagnosisColumns...).
		Values(d.ID, nullString(d.UserID), d.BodyType, d.NearTie,
			blobs[0], blobs[1], blobs[2], blobs[3], blobs[4], d.CreatedAt).
		Query()
	if _, err := dc.c.exec(ctx, q, args); err != nil {
		return fmt.Errorf("insert diagnosis: %w", err)
	}
	return nil
}

func (dc *DiagnosisClient) Get(ctx context.Context, id uuid.UUID) (*Diagnosis, error) {
	q, args := dc.c.builder().Select(diagnosisColumns...).
		From(entsql.Table(TableDiagnoses)).
		Where(entsql.EQ("id", id)).
		Query()

	d, err := scanDiagnosis(dc.c.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

// List returns results newest first.
func (dc *DiagnosisClient) List(ctx context.Context, f DiagnosisFilter) ([]*Diagnosis, error) {
	sel := dc.c.builder().Select(diagnosisColumns...).
		From(entsql.Table(TableDiagnoses)).
		OrderBy(entsql.Desc("created_at"))
	if f.UserID != "" {
		sel.Where(entsql.EQ("user_id", f.UserID))
	}
	if f.BodyType != "" {
		sel.Where(entsql.EQ("body_type", f.BodyType))
	}
	if f.Limit > 0 {
		sel.Limit(f.Limit)
	}

	q, args := sel.Query()
	rows, err := dc.c.query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("list diagnoses: %w", err)
	}
	defer rows.Close()

	var out []*Diagnosis
	for rows.Next() {
		d, err := scanDiagnosis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDiagnosis(s rowScanner) (*Diagnosis, error) {
	var (
		d                                     Diagnosis
		userID                                sql.NullString
		answers, raw, scores, counts, summary []byte
	)
	err := s.Scan(&d.ID, &userID, &d.BodyType, &d.NearTie, &answers, &raw, &scores, &counts, &summary, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan diagnosis: %w", err)
	}
	d.UserID = userID.String

	for _, p := range []struct {
		src []byte
		dst any
	}{
		{answers, &d.Answers},
		{raw, &d.RawAnswers},
		{scores, &d.TypeScores},
		{counts, &d.TypeCount},
		{summary, &d.Summary},
	} {
		if len(p.src) == 0 {
			continue
		}
		if err := json.Unmarshal(p.src, p.dst); err != nil {
			return nil, fmt.Errorf("decode diagnosis %s: %w", d.ID, err)
		}
	}
	return &d, nil
}

// marshalAll encodes each value as a JSON string. Strings rather than bytes
// so lib/pq sends text to jsonb columns instead of bytea.
func marshalAll(vs ...any) ([]string, error) {
	out := make([]string, len(vs))
	for i, v := range vs {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[i] = string(b)
	}
	return out, nil
}
