package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manual-labs/quizflow/internal/catalog"
)

func TestFilterRestrictedUnionOverAnswers(t *testing.T) {
	rules := []catalog.RestrictionRule{
		{ID: 1, AnswerID: 1, ProductID: 10},
		{ID: 2, AnswerID: 2, ProductID: 20},
		{ID: 3, AnswerID: 9, ProductID: 30}, // answer never given
	}
	got := FilterRestricted([]int64{10, 20, 30, 40}, []int64{1, 2}, rules)
	assert.Equal(t, []int64{30, 40}, got)
}

func TestFilterRestrictedPreservesOrder(t *testing.T) {
	rules := []catalog.RestrictionRule{{ID: 1, AnswerID: 1, ProductID: 2}}
	got := FilterRestricted([]int64{3, 2, 1, 2}, []int64{1}, rules)
	assert.Equal(t, []int64{3, 1}, got)
}

func TestFilterRestrictedMayEmptyTheList(t *testing.T) {
	rules := []catalog.RestrictionRule{{ID: 1, AnswerID: 1, ProductID: 10}}
	got := FilterRestricted([]int64{10}, []int64{1}, rules)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterRestrictedNoRules(t *testing.T) {
	got := FilterRestricted([]int64{1, 2}, []int64{1}, nil)
	assert.Equal(t, []int64{1, 2}, got)
}
