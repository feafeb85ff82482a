package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/manual-labs/quizflow/internal/session"
)

// SessionService is the orchestration surface the filler endpoints run on.
type SessionService interface {
	Create(ctx context.Context) (session.State, error)
	CurrentState(ctx context.Context, id string, createMissing bool) (session.State, error)
	Answer(ctx context.Context, id string, answerID int64) (session.State, error)
	Rewind(ctx context.Context, id string, questionID int64) (session.State, error)
}

func int64Param(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func CreateSessionHandler(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Create(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"session_id":       st.SessionID,
			"current_question": st.CurrentQuestion,
			"answers_given":    st.AnswersGiven,
		})
	}
}

// GET /filler/{sessionID}/current_question
// Returns {recommended_products, answers_given} once a recommendation was
// reached, otherwise {current_question, answers_given}. Creates the session
// on first access.
func CurrentQuestionHandler(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		st, err := svc.CurrentState(r.Context(), id, true)
		if err != nil {
			writeError(w, err)
			return
		}
		if st.RecommendedProducts != nil {
			writeJSON(w, http.StatusOK, map[string]any{
				"recommended_products": st.RecommendedProducts,
				"answers_given":        st.AnswersGiven,
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"current_question": st.CurrentQuestion,
			"answers_given":    st.AnswersGiven,
		})
	}
}

// POST /filler/{sessionID}/answer  {"answer_id": N}
func AnswerHandler(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var req struct {
			AnswerID int64 `json:"answer_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		if req.AnswerID == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "answer_id is required"})
			return
		}
		st, err := svc.Answer(r.Context(), id, req.AnswerID)
		if err != nil {
			writeError(w, err)
			return
		}
		switch {
		case st.RecommendedProducts != nil:
			writeJSON(w, http.StatusOK, map[string]any{
				"recommended_products": st.RecommendedProducts,
				"answers_given":        st.AnswersGiven,
			})
		case st.CurrentQuestion != nil:
			writeJSON(w, http.StatusOK, map[string]any{
				"next_question": st.CurrentQuestion,
				"answers_given": st.AnswersGiven,
			})
		default:
			writeJSON(w, http.StatusOK, map[string]any{
				"message":       "no more questions",
				"answers_given": st.AnswersGiven,
			})
		}
	}
}

// POST /filler/{sessionID}/reset_to_previous_question/{questionID}
func RewindHandler(svc SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		questionID, err := int64Param(r, "questionID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid question id"})
			return
		}
		st, err := svc.Rewind(r.Context(), id, questionID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"current_question": st.CurrentQuestion,
			"answers_given":    st.AnswersGiven,
		})
	}
}
