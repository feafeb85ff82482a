package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCanBecome(t *testing.T) {
	assert.True(t, StatusDraft.CanBecome(StatusPublished))
	assert.True(t, StatusPublished.CanBecome(StatusDisabled))

	assert.False(t, StatusDraft.CanBecome(StatusDisabled))
	assert.False(t, StatusPublished.CanBecome(StatusPublished))
	assert.False(t, StatusDisabled.CanBecome(StatusPublished))
	assert.False(t, StatusDisabled.CanBecome(StatusDraft))
}

func TestTransitionRuleXOR(t *testing.T) {
	next := int64(2)
	product := int64(3)

	assert.NoError(t, TransitionRule{AnswerID: 1, NextQuestionID: &next}.Validate())
	assert.NoError(t, TransitionRule{AnswerID: 1, ProductID: &product}.Validate())

	err := TransitionRule{AnswerID: 1}.Validate()
	require.ErrorIs(t, err, ErrInvalidRule)

	err = TransitionRule{AnswerID: 1, NextQuestionID: &next, ProductID: &product}.Validate()
	require.ErrorIs(t, err, ErrInvalidRule)

	err = TransitionRule{NextQuestionID: &next}.Validate()
	require.ErrorIs(t, err, ErrInvalidRule)
}

func TestQuestionAnswerLookup(t *testing.T) {
	q := Question{ID: 1, Answers: []Answer{{ID: 10}, {ID: 11}}}

	a, ok := q.Answer(11)
	require.True(t, ok)
	assert.Equal(t, int64(11), a.ID)

	_, ok = q.Answer(12)
	assert.False(t, ok)
}
