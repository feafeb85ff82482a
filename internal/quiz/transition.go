package quiz

import "github.com/manual-labs/quizflow/internal/catalog"

// Transition is the resolved outcome of one answer: either the id of the
// next question, or the candidate product ids, or neither.
type Transition struct {
	NextQuestionID *int64
	ProductIDs     []int64
}

// ResolveTransition scans rules in slice order. The first matching rule
// carrying a next-question id wins outright; otherwise the product ids of
// every matching rule are collected in order, duplicates included. Callers
// must pass rules in a deterministic order (the catalog materializes them
// ascending by rule id) since that order decides which branch wins.
func ResolveTransition(answerID int64, rules []catalog.TransitionRule) Transition {
	var products []int64
	for _, r := range rules {
		if r.AnswerID != answerID {
			continue
		}
		if r.NextQuestionID != nil {
			return Transition{NextQuestionID: r.NextQuestionID}
		}
		if r.ProductID != nil {
			products = append(products, *r.ProductID)
		}
	}
	return Transition{ProductIDs: products}
}
