package http

import (
	"encoding/json"
	"net/http"

	"github.com/manual-labs/quizflow/internal/catalog"
)

func CreateTransitionHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t catalog.TransitionRule
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		created, err := store.CreateTransition(r.Context(), t)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateTransitionHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, "transitionID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transition id"})
			return
		}
		var t catalog.TransitionRule
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		t.ID = id
		if err := store.UpdateTransition(r.Context(), t); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func DeleteTransitionHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, "transitionID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transition id"})
			return
		}
		if err := store.DeleteTransition(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "transition removed"})
	}
}

func GetTransitionHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, "transitionID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transition id"})
			return
		}
		t, err := store.GetTransition(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func ListTransitionsHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts, err := store.ListTransitions(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if ts == nil {
			ts = []catalog.TransitionRule{}
		}
		writeJSON(w, http.StatusOK, ts)
	}
}
