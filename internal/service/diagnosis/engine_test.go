package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRand(v float64) EngineOption {
	return WithRand(func() float64 { return v })
}

// panicRand fails the test if the near-tie branch is taken.
func panicRand(t *testing.T) EngineOption {
	return WithRand(func() float64 {
		t.Fatal("random source used outside a near tie")
		return 0
	})
}

func firstOptions() Answers {
	a := Answers{}
	for _, q := range Bank {
		a[q.ID] = q.Options[0].Value
	}
	return a
}

// neutralOptions picks, per question, the first option whose tag normalizes to balanced.
func neutralOptions() Answers {
	a := Answers{}
	for _, q := range Bank {
		for _, o := range q.Options {
			if Normalize(o.Category, nil) == Balanced {
				a[q.ID] = o.Value
				break
			}
		}
	}
	return a
}

func TestBank_Shape(t *testing.T) {
	require.Len(t, Bank, 30)
	for _, q := range Bank {
		seen := map[string]bool{}
		for _, o := range q.Options {
			assert.False(t, seen[o.Value], "question %d repeats value %q", q.ID, o.Value)
			seen[o.Value] = true
		}
	}
}

func TestSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"very_cold", 4},
		{"warm", 1},
		{"chronic", 3},
		{"rarely", 0},
		{"none", 0},
		{"every_night", 4},
		{"", 1},
		{"no_such_token", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Severity(tc.in), tc.in)
	}

	for _, q := range Bank {
		for _, o := range q.Options {
			s := Severity(o.Value)
			assert.True(t, s >= 0 && s <= 4, "%s scored %d", o.Value, s)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"anxiety":         Stress,
		"water_retention": Swelling,
		"xyz123":          Balanced,
		"":                Balanced,
		"pain":            Cold,
		"heat":            Balanced,
		"insomnia":        Sleep,
		"tension":         Stress,
		"vitality":        Balanced,
		"hormone":         Hormone,
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in, nil), in)
	}

	for _, q := range Bank {
		for _, o := range q.Options {
			assert.True(t, IsCanonical(Normalize(o.Category, map[string]int{o.Category: 1})), o.Category)
		}
	}
}

func TestCompute_NoAnswers(t *testing.T) {
	res := NewEngine(panicRand(t)).Compute(nil)
	assert.Equal(t, Balanced, res.BodyType)
	assert.False(t, res.NearTie)
	assert.Empty(t, res.Details)
}

func TestCompute_SkipsUnknownAnswers(t *testing.T) {
	res := NewEngine(panicRand(t)).Compute(Answers{
		1:   "very_cold",
		2:   "not_an_option",
		999: "very_cold",
		13:  "severe",
	})
	require.Len(t, res.Details, 2)
	assert.Equal(t, map[string]int{"cold": 2}, res.TypeCount)
	assert.Equal(t, map[string]int{"cold": 7}, res.TypeScores)
}

func TestCompute_ClearLeaderIsDeterministic(t *testing.T) {
	answers := Answers{1: "very_cold", 11: "winter", 13: "severe", 18: "often", 27: "very_weak"}
	e := NewEngine(panicRand(t))

	for range 20 {
		res := e.Compute(answers)
		assert.Equal(t, Cold, res.BodyType)
		assert.False(t, res.NearTie)
		assert.Equal(t, 12, res.TypeScores["cold"])
	}
}

func TestCompute_ScoreAccounting(t *testing.T) {
	answers := firstOptions()
	res := NewEngine(fixedRand(0.1)).Compute(answers)

	total := 0
	for _, n := range res.TypeCount {
		total += n
	}
	assert.Equal(t, len(answers), total)
	assert.Len(t, res.Details, len(answers))

	sums := map[string]int{}
	for _, d := range res.Details {
		assert.Equal(t, Severity(d.AnswerValue), d.Score)
		sums[d.Category] += d.Score
	}
	assert.Equal(t, sums, res.TypeScores)
}

func TestCompute_FirstOptions(t *testing.T) {
	// Digestive leads stress by one, so this answer set is a near tie.
	cases := []struct {
		r    float64
		want string
	}{
		{0.1, Digestive},
		{0.5, Stress},
		{0.9, Balanced},
	}
	for _, tc := range cases {
		res := NewEngine(fixedRand(tc.r)).Compute(firstOptions())
		assert.True(t, res.NearTie)
		assert.Equal(t, tc.want, res.BodyType, "r=%v", tc.r)
		assert.Equal(t, 14, res.TypeScores["digestive"])
		assert.Equal(t, 8, res.TypeScores["cold"])
	}
}

func TestCompute_NeutralOptions(t *testing.T) {
	res := NewEngine(panicRand(t)).Compute(neutralOptions())
	assert.Equal(t, Balanced, res.BodyType)
	assert.False(t, res.NearTie)
}

func TestCompute_NearTieBranches(t *testing.T) {
	// Q1 cold scores 4, Q13 often is stress and scores 2: lead of 2.
	answers := Answers{1: "very_cold", 13: "often"}
	cases := []struct {
		r    float64
		want string
	}{
		{0.0, Cold},
		{0.1, Cold},
		{0.39, Cold},
		{0.4, Stress},
		{0.5, Stress},
		{0.69, Stress},
		{0.7, Balanced},
		{0.9, Balanced},
	}
	for _, tc := range cases {
		res := NewEngine(fixedRand(tc.r)).Compute(answers)
		assert.True(t, res.NearTie)
		assert.Equal(t, tc.want, res.BodyType, "r=%v", tc.r)
	}
}

func TestCompute_NearTieWithoutRunnerUp(t *testing.T) {
	// A single category scoring 2 is a near tie against an empty second place.
	answers := Answers{13: "often"}
	assert.Equal(t, Stress, NewEngine(fixedRand(0.1)).Compute(answers).BodyType)
	assert.Equal(t, Balanced, NewEngine(fixedRand(0.5)).Compute(answers).BodyType)
	assert.Equal(t, Balanced, NewEngine(fixedRand(0.9)).Compute(answers).BodyType)
}

func TestCompute_NearTieDistribution(t *testing.T) {
	answers := Answers{1: "very_cold", 13: "often"}
	const runs = 1000
	counts := map[string]int{}
	for i := range runs {
		r := (float64(i) + 0.5) / runs
		counts[NewEngine(fixedRand(r)).Compute(answers).BodyType]++
	}
	assert.InDelta(t, 400, counts[Cold], 5)
	assert.InDelta(t, 300, counts[Stress], 5)
	assert.InDelta(t, 300, counts[Balanced], 5)
}

func TestCompute_MarginOption(t *testing.T) {
	answers := Answers{1: "very_cold", 13: "often"}
	res := NewEngine(WithNearTieMargin(1), panicRand(t)).Compute(answers)
	assert.Equal(t, Cold, res.BodyType)
	assert.False(t, res.NearTie)
}

func TestCompute_DetailsKeepRawCategory(t *testing.T) {
	// pain normalizes to cold, but the audit trail keeps pain.
	res := NewEngine(panicRand(t)).Compute(Answers{18: "severe"})
	require.Len(t, res.Details, 1)
	assert.Equal(t, "pain", res.Details[0].Category)
	assert.Equal(t, 3, res.Details[0].Score)
	assert.Equal(t, map[string]int{"pain": 3}, res.TypeScores)
	assert.Equal(t, Cold, res.BodyType)
}

func TestCompute_RankingTieKeepsFirstHit(t *testing.T) {
	res := NewEngine(fixedRand(0.1)).Compute(firstOptions())
	require.True(t, len(res.Ranking) >= 3)
	assert.Equal(t, CategoryScore{Category: "stress", Score: 13}, res.Ranking[1])
	assert.Equal(t, CategoryScore{Category: "hormone", Score: 13}, res.Ranking[2])
}

func TestTitle(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, Titles[0], e.Title(0))

	short := NewEngine(WithBank(Bank[:2], Titles[:1]))
	assert.Equal(t, "Question 2", short.Title(1))
}

func TestBodyTypes(t *testing.T) {
	all := BodyTypes()
	require.Len(t, all, len(Canonical))
	for i, bt := range all {
		assert.Equal(t, Canonical[i], bt.Key)
		assert.NotEmpty(t, bt.Name)
		assert.NotEmpty(t, bt.DailyTips)
	}
	fallback, ok := LookupBodyType("pain")
	assert.False(t, ok)
	assert.Equal(t, Balanced, fallback.Key)

	cold, ok := LookupBodyType(Cold)
	assert.True(t, ok)
	assert.Equal(t, Cold, cold.Key)
}
