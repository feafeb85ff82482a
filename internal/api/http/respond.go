package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/quiz"
	"github.com/manual-labs/quizflow/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, quiz.ErrInvalidAnswer),
		errors.Is(err, quiz.ErrNotYetAnswered),
		errors.Is(err, session.ErrAlreadyAnswered),
		errors.Is(err, catalog.ErrInvalidRule):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrStatusChange),
		errors.Is(err, session.ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
