package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manual-labs/quizflow/internal/catalog"
)

func intp(v int64) *int64 { return &v }

// Two questions, two products. Answering "yes"/"no" on question 1 leads to
// question 2; "yes"/"maybe" there recommend product A/B; "no" is a dead end.
func fixtureSnapshot() catalog.Snapshot {
	return catalog.Snapshot{
		Questions: []catalog.Question{
			{ID: 1, Text: "am I old?", Status: catalog.StatusPublished, Answers: []catalog.Answer{
				{ID: 1, Text: "yes", Status: catalog.StatusPublished},
				{ID: 2, Text: "no", Status: catalog.StatusPublished},
			}},
			{ID: 2, Text: "am I pretty?", Status: catalog.StatusPublished, Answers: []catalog.Answer{
				{ID: 3, Text: "yes", Status: catalog.StatusPublished},
				{ID: 4, Text: "maybe", Status: catalog.StatusPublished},
				{ID: 5, Text: "no", Status: catalog.StatusPublished},
			}},
		},
		Products: []catalog.Product{
			{ID: 1, Name: "Product A", Status: catalog.StatusPublished},
			{ID: 2, Name: "Product B", Status: catalog.StatusPublished},
		},
		Transitions: []catalog.TransitionRule{
			{ID: 1, AnswerID: 1, NextQuestionID: intp(2)},
			{ID: 2, AnswerID: 2, NextQuestionID: intp(2)},
			{ID: 3, AnswerID: 3, ProductID: intp(1)},
			{ID: 4, AnswerID: 4, ProductID: intp(2)},
		},
	}
}

func newFixtureEngine(snap catalog.Snapshot) (*Engine, *Progress) {
	p := NewProgress(snap)
	return NewEngine(snap, &p), &p
}

func TestNewProgressStartsAtFirstPublishedQuestion(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Questions[0].Status = catalog.StatusDraft

	p := NewProgress(snap)
	require.NotNil(t, p.CurrentQuestionID)
	assert.Equal(t, int64(2), *p.CurrentQuestionID)

	snap.Questions[1].Status = catalog.StatusDisabled
	p = NewProgress(snap)
	assert.Nil(t, p.CurrentQuestionID)
}

func TestSubmitAnswerAdvancesToNextQuestion(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())

	res, err := e.SubmitAnswer(1)
	require.NoError(t, err)
	require.NotNil(t, res.NextQuestion)
	assert.Equal(t, int64(2), res.NextQuestion.ID)
	assert.Equal(t, []AnswerGiven{{QuestionID: 1, AnswerID: 1}}, p.AnswersGiven)

	cur, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "am I pretty?", cur.Text)
}

func TestSubmitAnswerReachesRecommendation(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())

	_, err := e.SubmitAnswer(1)
	require.NoError(t, err)

	res, err := e.SubmitAnswer(3)
	require.NoError(t, err)
	assert.Nil(t, res.NextQuestion)
	require.Len(t, res.Recommended, 1)
	assert.Equal(t, "Product A", res.Recommended[0].Name)

	assert.Nil(t, p.CurrentQuestionID)
	assert.Equal(t, res.Recommended, p.RecommendedProducts)
	_, ok := e.CurrentQuestion()
	assert.False(t, ok)
}

func TestRestrictionFiltersRecommendation(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Restrictions = []catalog.RestrictionRule{{ID: 1, AnswerID: 1, ProductID: 1}}
	e, p := newFixtureEngine(snap)

	_, err := e.SubmitAnswer(1)
	require.NoError(t, err)

	// The restriction hangs off the first answer, not the one that
	// triggered the recommendation.
	res, err := e.SubmitAnswer(3)
	require.NoError(t, err)
	require.NotNil(t, res.Recommended)
	assert.Empty(t, res.Recommended)
	assert.Nil(t, p.CurrentQuestionID)
}

func TestSubmitInvalidAnswerLeavesStateUnchanged(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())

	_, err := e.SubmitAnswer(99)
	require.ErrorIs(t, err, ErrInvalidAnswer)
	assert.Empty(t, p.AnswersGiven)
	require.NotNil(t, p.CurrentQuestionID)
	assert.Equal(t, int64(1), *p.CurrentQuestionID)

	// Answer 3 belongs to question 2, not the current question 1.
	_, err = e.SubmitAnswer(3)
	require.ErrorIs(t, err, ErrInvalidAnswer)
	assert.Empty(t, p.AnswersGiven)
}

func TestSubmitAnswerOnTerminalSessionFails(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())
	_, err := e.SubmitAnswer(1)
	require.NoError(t, err)
	_, err = e.SubmitAnswer(3)
	require.NoError(t, err)

	before := len(p.AnswersGiven)
	_, err = e.SubmitAnswer(4)
	require.ErrorIs(t, err, ErrInvalidAnswer)
	assert.Len(t, p.AnswersGiven, before)
}

func TestDeadEndAnswerEndsSession(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())
	_, err := e.SubmitAnswer(2)
	require.NoError(t, err)

	// Answer 5 has no transition rule at all.
	res, err := e.SubmitAnswer(5)
	require.NoError(t, err)
	assert.True(t, res.Ended)
	assert.Nil(t, res.NextQuestion)
	assert.Nil(t, res.Recommended)
	assert.Nil(t, p.CurrentQuestionID)
	assert.Empty(t, p.RecommendedProducts)
}

func TestRewindReopensAnsweredQuestion(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())
	_, err := e.SubmitAnswer(1)
	require.NoError(t, err)
	_, err = e.SubmitAnswer(3)
	require.NoError(t, err)

	q, err := e.RewindTo(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), q.ID)

	cur, ok := e.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, int64(2), cur.ID)
	assert.Equal(t, []AnswerGiven{{QuestionID: 1, AnswerID: 1}}, p.AnswersGiven)
	assert.Empty(t, p.RecommendedProducts)
}

func TestRewindToStartClearsHistory(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())
	_, err := e.SubmitAnswer(1)
	require.NoError(t, err)

	q, err := e.RewindTo(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.ID)
	assert.Empty(t, p.AnswersGiven)
}

func TestRewindToUnansweredQuestionFails(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())
	_, err := e.RewindTo(2)
	require.ErrorIs(t, err, ErrNotYetAnswered)
	require.NotNil(t, p.CurrentQuestionID)
	assert.Equal(t, int64(1), *p.CurrentQuestionID)
}

func TestNoDuplicateHistoryAfterRewindLoop(t *testing.T) {
	e, p := newFixtureEngine(fixtureSnapshot())

	for i := 0; i < 3; i++ {
		_, err := e.SubmitAnswer(1)
		require.NoError(t, err)
		_, err = e.SubmitAnswer(3)
		require.NoError(t, err)
		_, err = e.RewindTo(1)
		require.NoError(t, err)
	}
	_, err := e.SubmitAnswer(2)
	require.NoError(t, err)

	seen := map[int64]int{}
	for _, ag := range p.AnswersGiven {
		seen[ag.QuestionID]++
	}
	for qid, n := range seen {
		assert.Equalf(t, 1, n, "question %d answered %d times", qid, n)
	}
}

func TestDanglingNextQuestionEndsSession(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Transitions[0].NextQuestionID = intp(42)
	e, p := newFixtureEngine(snap)

	res, err := e.SubmitAnswer(1)
	require.NoError(t, err)
	assert.True(t, res.Ended)
	assert.Nil(t, p.CurrentQuestionID)
}

func TestErrorsAreSentinelWrapped(t *testing.T) {
	e, _ := newFixtureEngine(fixtureSnapshot())
	_, err := e.SubmitAnswer(99)
	assert.True(t, errors.Is(err, ErrInvalidAnswer))
}
