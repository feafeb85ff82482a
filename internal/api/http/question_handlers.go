package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/manual-labs/quizflow/internal/catalog"
)

func CreateQuestionHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		if req.Text == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "question text is required"})
			return
		}
		q, err := store.CreateQuestion(r.Context(), req.Text)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, q)
	}
}

func PublishQuestionHandler(store catalog.Store) http.HandlerFunc {
	return statusChangeHandler("questionID", store.PublishQuestion)
}

func DisableQuestionHandler(store catalog.Store) http.HandlerFunc {
	return statusChangeHandler("questionID", store.DisableQuestion)
}

func ListQuestionsHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := store.ListQuestions(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if qs == nil {
			qs = []catalog.Question{}
		}
		writeJSON(w, http.StatusOK, qs)
	}
}

func CreateAnswerHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text       string `json:"text"`
			QuestionID int64  `json:"question_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		if req.Text == "" || req.QuestionID == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "both answer text and question_id are required"})
			return
		}
		a, err := store.CreateAnswer(r.Context(), req.QuestionID, req.Text)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

func PublishAnswerHandler(store catalog.Store) http.HandlerFunc {
	return statusChangeHandler("answerID", store.PublishAnswer)
}

func DisableAnswerHandler(store catalog.Store) http.HandlerFunc {
	return statusChangeHandler("answerID", store.DisableAnswer)
}

func CreateRestrictionHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AnswerID  int64 `json:"answer_id"`
			ProductID int64 `json:"product_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		if req.AnswerID == 0 || req.ProductID == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "answer_id and product_id are required"})
			return
		}
		rule, err := store.CreateRestriction(r.Context(), req.AnswerID, req.ProductID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rule)
	}
}

func DeleteRestrictionHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, "restrictionID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid restriction id"})
			return
		}
		if err := store.DeleteRestriction(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "restriction removed"})
	}
}

func ListRestrictionsHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		answerID, err := int64Param(r, "answerID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid answer id"})
			return
		}
		rules, err := store.ListRestrictions(r.Context(), answerID)
		if err != nil {
			writeError(w, err)
			return
		}
		if rules == nil {
			rules = []catalog.RestrictionRule{}
		}
		writeJSON(w, http.StatusOK, rules)
	}
}

func statusChangeHandler(param string, change func(ctx context.Context, id int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, param)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
			return
		}
		if err := change(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	}
}
