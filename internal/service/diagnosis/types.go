package diagnosis

// Question is an entry of the fixed question bank.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// Option is an answer choice tagged with a raw category.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

func (q Question) option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Answers maps question id to the chosen option value.
type Answers map[int]string

// Detail records how one answer was scored.
type Detail struct {
	QuestionTitle string `json:"question_title"`
	QuestionID    int    `json:"question_id"`
	AnswerValue   string `json:"answer_value"`
	Label         string `json:"label"`
	Category      string `json:"category"`
	Score         int    `json:"score"`
}

// CategoryScore is one row of the ranking.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Result is the outcome of scoring one answer set.
type Result struct {
	BodyType   string          `json:"body_type"`
	NearTie    bool            `json:"near_tie"`
	TypeScores map[string]int  `json:"type_scores"`
	TypeCount  map[string]int  `json:"type_count"`
	Details    []Detail        `json:"details"`
	Ranking    []CategoryScore `json:"ranking"`
}
