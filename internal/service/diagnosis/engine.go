package diagnosis

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

const (
	// DefaultNearTieMargin is the largest lead that still counts as a near tie.
	DefaultNearTieMargin = 2

	pickFirstBelow  = 0.4
	pickSecondBelow = 0.7
)

// Engine scores answer sets against a question bank. It holds no mutable
// state and is safe for concurrent use when its random source is.
type Engine struct {
	bank   []Question
	titles []string
	margin int
	rand   func() float64
}

type EngineOption func(*Engine)

// WithRand replaces the source of the near-tie draw. f must return values in [0,1).
func WithRand(f func() float64) EngineOption {
	return func(e *Engine) { e.rand = f }
}

func WithNearTieMargin(m int) EngineOption {
	return func(e *Engine) {
		if m >= 0 {
			e.margin = m
		}
	}
}

// WithBank swaps the question bank and title table.
func WithBank(bank []Question, titles []string) EngineOption {
	return func(e *Engine) {
		e.bank = bank
		e.titles = titles
	}
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		bank:   Bank,
		titles: Titles,
		margin: DefaultNearTieMargin,
		rand:   rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Questions() []Question {
	return e.bank
}

// Title returns the display title for the question at bank position i.
func (e *Engine) Title(i int) string {
	if i >= 0 && i < len(e.titles) {
		return e.titles[i]
	}
	if i >= 0 && i < len(e.bank) {
		return fmt.Sprintf("Question %d", e.bank[i].ID)
	}
	return ""
}

// Compute scores answers. Answers that match no option are skipped.
func (e *Engine) Compute(answers Answers) Result {
	res := Result{
		TypeScores: map[string]int{},
		TypeCount:  map[string]int{},
	}

	var order []string
	for i, q := range e.bank {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.option(value)
		if !ok {
			continue
		}

		if _, seen := res.TypeCount[opt.Category]; !seen {
			order = append(order, opt.Category)
		}
		score := Severity(value)
		res.TypeCount[opt.Category]++
		res.TypeScores[opt.Category] += score
		res.Details = append(res.Details, Detail{
			QuestionTitle: e.Title(i),
			QuestionID:    q.ID,
			AnswerValue:   value,
			Label:         opt.Label,
			Category:      opt.Category,
			Score:         score,
		})
	}

	res.Ranking = rank(order, res.TypeScores)
	res.BodyType, res.NearTie = e.choose(res.Ranking, res.TypeCount)
	return res
}

// rank orders categories by score descending. Equal scores keep first-hit order.
func rank(order []string, scores map[string]int) []CategoryScore {
	out := lo.Map(order, func(c string, _ int) CategoryScore {
		return CategoryScore{Category: c, Score: scores[c]}
	})
	slices.SortStableFunc(out, func(a, b CategoryScore) int {
		return b.Score - a.Score
	})
	return out
}

func (e *Engine) choose(ranking []CategoryScore, counts map[string]int) (string, bool) {
	if len(ranking) == 0 {
		return Balanced, false
	}

	first := ranking[0]
	var second CategoryScore
	if len(ranking) > 1 {
		second = ranking[1]
	}

	if first.Score-second.Score > e.margin {
		return Normalize(first.Category, counts), false
	}

	r := e.rand()
	switch {
	case r < pickFirstBelow:
		return Normalize(first.Category, counts), true
	case r < pickSecondBelow && second.Category != "":
		return Normalize(second.Category, counts), true
	default:
		return Balanced, true
	}
}
