package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/stockroom/internal/models"
	"github.com/mmynk/stockroom/internal/service"
)

// CreateItemRequest is the body of POST /api/items. Name is required;
// negative price or quantity are accepted as-is.
type CreateItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// UpdateItemRequest is the body of PUT /api/items/{id}. Absent fields keep
// their current value.
type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int64   `json:"quantity"`
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := s.items.Create(r.Context(), &models.Item{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.List(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.items.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		notFoundOrInternal(w, err, "Item not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := s.items.Update(r.Context(), chi.URLParam(r, "id"), service.ItemUpdate{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		notFoundOrInternal(w, err, "Item not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.items.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		notFoundOrInternal(w, err, "Item not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}
