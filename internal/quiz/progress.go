package quiz

import "github.com/manual-labs/quizflow/internal/catalog"

// AnswerGiven records one answered question in the order it was answered.
type AnswerGiven struct {
	QuestionID int64 `json:"question_id"`
	AnswerID   int64 `json:"answer_id"`
}

// Progress is the mutable per-session state. CurrentQuestionID nil means the
// session is terminal; RecommendedProducts is non-nil only when the session
// ended in a recommendation, and may be empty if restrictions filtered out
// every candidate.
type Progress struct {
	AnswersGiven        []AnswerGiven     `json:"answers_given"`
	CurrentQuestionID   *int64            `json:"current_question_id"`
	RecommendedProducts []catalog.Product `json:"recommended_products"`
}

// NewProgress builds the initial progress for a snapshot: no answers yet and
// the first published question (in snapshot order) as the current question.
func NewProgress(snap catalog.Snapshot) Progress {
	p := Progress{AnswersGiven: []AnswerGiven{}}
	for _, q := range snap.Questions {
		if q.Status == catalog.StatusPublished {
			id := q.ID
			p.CurrentQuestionID = &id
			break
		}
	}
	return p
}

// Answered reports whether the question already has an entry in AnswersGiven.
func (p Progress) Answered(questionID int64) bool {
	for _, ag := range p.AnswersGiven {
		if ag.QuestionID == questionID {
			return true
		}
	}
	return false
}

func (p Progress) answerIDs() []int64 {
	ids := make([]int64, len(p.AnswersGiven))
	for i, ag := range p.AnswersGiven {
		ids[i] = ag.AnswerID
	}
	return ids
}
