package catalog

import (
	"errors"
	"fmt"
)

// Status is the publication state of a catalog entity. Entities start as
// draft, become visible to quiz sessions when published, and can later be
// disabled. Publish is only legal from draft, disable only from published.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusDisabled  Status = "disabled"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrStatusChange = errors.New("invalid status change")
	ErrInvalidRule  = errors.New("invalid transition rule")
)

// CanBecome reports whether the status may change to next.
func (s Status) CanBecome(next Status) bool {
	switch next {
	case StatusPublished:
		return s == StatusDraft
	case StatusDisabled:
		return s == StatusPublished
	default:
		return false
	}
}

type Answer struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Status Status `json:"status"`
}

type Question struct {
	ID      int64    `json:"id"`
	Text    string   `json:"text"`
	Status  Status   `json:"status"`
	Answers []Answer `json:"answers"`
}

// Answer returns the answer with the given id, if the question has one.
func (q Question) Answer(answerID int64) (Answer, bool) {
	for _, a := range q.Answers {
		if a.ID == answerID {
			return a, true
		}
	}
	return Answer{}, false
}

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// RestrictionRule forbids recommending a product when a given answer was
// selected at any point in the session.
type RestrictionRule struct {
	ID        int64 `json:"id"`
	AnswerID  int64 `json:"answer_id"`
	ProductID int64 `json:"product_id"`
}

// TransitionRule maps an answer to either the next question or one candidate
// product. Exactly one of NextQuestionID and ProductID is set.
type TransitionRule struct {
	ID             int64  `json:"id"`
	AnswerID       int64  `json:"answer_id"`
	NextQuestionID *int64 `json:"next_question_id"`
	ProductID      *int64 `json:"product_id"`
}

// Validate checks the next-question/product XOR invariant.
func (t TransitionRule) Validate() error {
	if t.AnswerID == 0 {
		return fmt.Errorf("%w: answer_id is required", ErrInvalidRule)
	}
	if t.NextQuestionID == nil && t.ProductID == nil {
		return fmt.Errorf("%w: either next_question_id or product_id must be set", ErrInvalidRule)
	}
	if t.NextQuestionID != nil && t.ProductID != nil {
		return fmt.Errorf("%w: only one of next_question_id or product_id may be set", ErrInvalidRule)
	}
	return nil
}

// Snapshot is the frozen catalog view a quiz session runs against. Slices
// are ordered ascending by id; transition resolution depends on that order.
type Snapshot struct {
	Questions    []Question        `json:"questions"`
	Products     []Product         `json:"products"`
	Restrictions []RestrictionRule `json:"product_restrictions"`
	Transitions  []TransitionRule  `json:"question_transitions"`
}
