package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manual-labs/quizflow/internal/catalog"
)

func TestResolveTransitionNextQuestion(t *testing.T) {
	rules := []catalog.TransitionRule{
		{ID: 1, AnswerID: 7, NextQuestionID: intp(3)},
		{ID: 2, AnswerID: 7, NextQuestionID: intp(9)},
	}
	tr := ResolveTransition(7, rules)
	require.NotNil(t, tr.NextQuestionID)
	assert.Equal(t, int64(3), *tr.NextQuestionID)
	assert.Empty(t, tr.ProductIDs)
}

func TestResolveTransitionNextQuestionWinsOverProducts(t *testing.T) {
	// Product rules before and after the next-question rule; the scan stops
	// at the first next-question match regardless.
	rules := []catalog.TransitionRule{
		{ID: 1, AnswerID: 7, ProductID: intp(1)},
		{ID: 2, AnswerID: 7, NextQuestionID: intp(3)},
		{ID: 3, AnswerID: 7, ProductID: intp(2)},
	}
	tr := ResolveTransition(7, rules)
	require.NotNil(t, tr.NextQuestionID)
	assert.Equal(t, int64(3), *tr.NextQuestionID)
	assert.Empty(t, tr.ProductIDs)
}

func TestResolveTransitionCollectsProductsInOrder(t *testing.T) {
	rules := []catalog.TransitionRule{
		{ID: 1, AnswerID: 7, ProductID: intp(5)},
		{ID: 2, AnswerID: 8, ProductID: intp(1)},
		{ID: 3, AnswerID: 7, ProductID: intp(2)},
		{ID: 4, AnswerID: 7, ProductID: intp(5)}, // duplicates preserved
	}
	tr := ResolveTransition(7, rules)
	assert.Nil(t, tr.NextQuestionID)
	assert.Equal(t, []int64{5, 2, 5}, tr.ProductIDs)
}

func TestResolveTransitionNoMatch(t *testing.T) {
	rules := []catalog.TransitionRule{
		{ID: 1, AnswerID: 8, ProductID: intp(1)},
	}
	tr := ResolveTransition(7, rules)
	assert.Nil(t, tr.NextQuestionID)
	assert.Empty(t, tr.ProductIDs)
}
