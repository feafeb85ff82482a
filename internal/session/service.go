package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/quiz"
)

// ErrAlreadyAnswered means an answer was submitted for a question that
// already has an entry in the session's history.
var ErrAlreadyAnswered = errors.New("question already answered")

// CatalogReader is the one catalog operation the session layer needs: a full
// read in stable order, taken once when a session is created.
type CatalogReader interface {
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
}

// State is what the transport layers render: either a current question or a
// recommendation, always with the answer history. Ended marks a session that
// ran out of questions without recommending anything.
type State struct {
	SessionID           string
	CurrentQuestion     *catalog.Question
	RecommendedProducts []catalog.Product
	AnswersGiven        []quiz.AnswerGiven
	Ended               bool
}

// Service glues the quiz engine to the stores: it loads or creates the
// {snapshot, progress} pair, runs one engine operation, and persists the
// resulting progress before reporting back.
type Service struct {
	catalog  CatalogReader
	sessions Store
}

func NewService(cat CatalogReader, sessions Store) *Service {
	return &Service{catalog: cat, sessions: sessions}
}

// Create initializes a session under a fresh uuid and returns its state.
func (s *Service) Create(ctx context.Context) (State, error) {
	rec, err := s.initSession(ctx, uuid.NewString())
	if err != nil {
		return State{}, err
	}
	return s.stateOf(rec), nil
}

// CurrentState reports the session's current question or, when the session
// already holds a recommendation, that recommendation again without
// recomputing. With createMissing it initializes a session on demand.
func (s *Service) CurrentState(ctx context.Context, id string, createMissing bool) (State, error) {
	rec, err := s.sessions.Load(ctx, id)
	if errors.Is(err, ErrNotFound) && createMissing {
		rec, err = s.initSession(ctx, id)
	}
	if err != nil {
		return State{}, err
	}
	return s.stateOf(rec), nil
}

// Answer submits one answer for the session's current question. The
// double-answer guard runs here, before the engine is invoked.
func (s *Service) Answer(ctx context.Context, id string, answerID int64) (State, error) {
	rec, err := s.sessions.Load(ctx, id)
	if err != nil {
		return State{}, err
	}

	engine := quiz.NewEngine(rec.Snapshot, &rec.Progress)
	if cur, ok := engine.CurrentQuestion(); ok && rec.Progress.Answered(cur.ID) {
		return State{}, fmt.Errorf("%w: question %d", ErrAlreadyAnswered, cur.ID)
	}

	res, err := engine.SubmitAnswer(answerID)
	if err != nil {
		return State{}, err
	}
	if err := s.sessions.SaveProgress(ctx, id, rec.Progress, rec.Version); err != nil {
		return State{}, err
	}

	return State{
		SessionID:           id,
		CurrentQuestion:     res.NextQuestion,
		RecommendedProducts: res.Recommended,
		AnswersGiven:        rec.Progress.AnswersGiven,
		Ended:               res.Ended,
	}, nil
}

// Rewind reopens a previously answered question, discarding it and
// everything answered after it.
func (s *Service) Rewind(ctx context.Context, id string, questionID int64) (State, error) {
	rec, err := s.sessions.Load(ctx, id)
	if err != nil {
		return State{}, err
	}

	engine := quiz.NewEngine(rec.Snapshot, &rec.Progress)
	q, err := engine.RewindTo(questionID)
	if err != nil {
		return State{}, err
	}
	if err := s.sessions.SaveProgress(ctx, id, rec.Progress, rec.Version); err != nil {
		return State{}, err
	}

	return State{
		SessionID:       id,
		CurrentQuestion: &q,
		AnswersGiven:    rec.Progress.AnswersGiven,
	}, nil
}

func (s *Service) initSession(ctx context.Context, id string) (Record, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:       id,
		Snapshot: snap,
		Progress: quiz.NewProgress(snap),
		Version:  1,
	}
	if err := s.sessions.Insert(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) stateOf(rec Record) State {
	st := State{
		SessionID:    rec.ID,
		AnswersGiven: rec.Progress.AnswersGiven,
	}
	if rec.Progress.CurrentQuestionID == nil {
		if rec.Progress.RecommendedProducts != nil {
			st.RecommendedProducts = rec.Progress.RecommendedProducts
		} else {
			st.Ended = true
		}
		return st
	}
	engine := quiz.NewEngine(rec.Snapshot, &rec.Progress)
	if q, ok := engine.CurrentQuestion(); ok {
		st.CurrentQuestion = &q
	}
	return st
}
