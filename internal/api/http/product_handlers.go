package http

import (
	"encoding/json"
	"net/http"

	"github.com/manual-labs/quizflow/internal/catalog"
)

func CreateProductHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		if req.Name == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "product name is required"})
			return
		}
		p, err := store.CreateProduct(r.Context(), req.Name, req.Description)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func UpdateProductHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := int64Param(r, "productID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
			return
		}
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json"})
			return
		}
		if req.Name == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "product name is required"})
			return
		}
		p := catalog.Product{ID: id, Name: req.Name, Description: req.Description}
		if err := store.UpdateProduct(r.Context(), p); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "product updated"})
	}
}

func PublishProductHandler(store catalog.Store) http.HandlerFunc {
	return statusChangeHandler("productID", store.PublishProduct)
}

func DisableProductHandler(store catalog.Store) http.HandlerFunc {
	return statusChangeHandler("productID", store.DisableProduct)
}

func ListProductsHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := store.ListProducts(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if ps == nil {
			ps = []catalog.Product{}
		}
		writeJSON(w, http.StatusOK, ps)
	}
}
