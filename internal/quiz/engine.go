package quiz

import (
	"fmt"

	"github.com/manual-labs/quizflow/internal/catalog"
)

// Engine walks one session through the question graph. It owns a frozen
// catalog snapshot plus the session's Progress, which it mutates in place;
// persisting the progress after a mutation is the caller's job. Operations
// validate before mutating, so a failed call leaves the progress untouched.
type Engine struct {
	snap      catalog.Snapshot
	questions map[int64]catalog.Question
	products  map[int64]catalog.Product
	progress  *Progress
}

func NewEngine(snap catalog.Snapshot, progress *Progress) *Engine {
	e := &Engine{
		snap:      snap,
		questions: make(map[int64]catalog.Question, len(snap.Questions)),
		products:  make(map[int64]catalog.Product, len(snap.Products)),
		progress:  progress,
	}
	for _, q := range snap.Questions {
		e.questions[q.ID] = q
	}
	for _, p := range snap.Products {
		e.products[p.ID] = p
	}
	return e
}

// Result is the outcome of one answer submission. Exactly one shape applies:
// NextQuestion set, Recommended set (possibly empty after filtering), or
// Ended true when the graph ran out without a recommendation.
type Result struct {
	NextQuestion *catalog.Question
	Recommended  []catalog.Product
	Ended        bool
}

// CurrentQuestion returns the question awaiting an answer, or false when the
// session is terminal.
func (e *Engine) CurrentQuestion() (catalog.Question, bool) {
	if e.progress.CurrentQuestionID == nil {
		return catalog.Question{}, false
	}
	q, ok := e.questions[*e.progress.CurrentQuestionID]
	return q, ok
}

// SubmitAnswer records an answer to the current question and advances the
// session: to the next question, to a terminal recommendation, or to a
// terminal dead end.
func (e *Engine) SubmitAnswer(answerID int64) (Result, error) {
	cur, ok := e.CurrentQuestion()
	if !ok {
		return Result{}, fmt.Errorf("%w: session has no current question", ErrInvalidAnswer)
	}
	if _, ok := cur.Answer(answerID); !ok {
		return Result{}, fmt.Errorf("%w: answer %d does not belong to question %d", ErrInvalidAnswer, answerID, cur.ID)
	}

	e.progress.AnswersGiven = append(e.progress.AnswersGiven, AnswerGiven{
		QuestionID: cur.ID,
		AnswerID:   answerID,
	})

	tr := ResolveTransition(answerID, e.snap.Transitions)
	switch {
	case tr.NextQuestionID != nil:
		next, ok := e.questions[*tr.NextQuestionID]
		if !ok {
			// Dangling target; treat as a dead end rather than pointing
			// the session at a question the snapshot does not hold.
			e.progress.CurrentQuestionID = nil
			return Result{Ended: true}, nil
		}
		e.progress.CurrentQuestionID = tr.NextQuestionID
		return Result{NextQuestion: &next}, nil

	case len(tr.ProductIDs) > 0:
		// Restrictions apply over every answer given in the session, not
		// just the one that triggered the recommendation.
		kept := FilterRestricted(tr.ProductIDs, e.progress.answerIDs(), e.snap.Restrictions)
		recs := make([]catalog.Product, 0, len(kept))
		for _, id := range kept {
			if p, ok := e.products[id]; ok {
				recs = append(recs, p)
			}
		}
		e.progress.RecommendedProducts = recs
		e.progress.CurrentQuestionID = nil
		return Result{Recommended: recs}, nil

	default:
		e.progress.CurrentQuestionID = nil
		return Result{Ended: true}, nil
	}
}

// RewindTo re-opens a previously answered question: the matched entry and
// everything answered after it are discarded, and the question is presented
// again as if unanswered.
func (e *Engine) RewindTo(questionID int64) (catalog.Question, error) {
	idx := -1
	for i, ag := range e.progress.AnswersGiven {
		if ag.QuestionID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return catalog.Question{}, fmt.Errorf("%w: question %d", ErrNotYetAnswered, questionID)
	}

	e.progress.AnswersGiven = e.progress.AnswersGiven[:idx]
	id := questionID
	e.progress.CurrentQuestionID = &id
	e.progress.RecommendedProducts = nil
	return e.questions[questionID], nil
}
