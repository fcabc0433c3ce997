package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/stockroom/internal/service"
)

// CreateBillRequest is the body of POST /api/bills. Line items are processed
// in submission order; prices are resolved from stock, never taken from the
// caller.
type CreateBillRequest struct {
	Items []BillLineRequest `json:"items" validate:"required,min=1,dive"`
}

// BillLineRequest is one requested line: an item reference and a positive
// quantity.
type BillLineRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int64  `json:"quantity" validate:"min=1"`
}

func (s *Server) createBill(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	lines := make([]service.BillLineRequest, len(req.Items))
	for i, line := range req.Items {
		lines[i] = service.BillLineRequest{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}

	bill, err := s.billing.CreateBill(r.Context(), lines)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBillRequest) {
			http.Error(w, "Invalid item or insufficient stock", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, bill)
}

func (s *Server) listBills(w http.ResponseWriter, r *http.Request) {
	bills, err := s.billing.ListBills(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, bills)
}

func (s *Server) getBill(w http.ResponseWriter, r *http.Request) {
	bill, err := s.billing.GetBill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		notFoundOrInternal(w, err, "Bill not found")
		return
	}

	writeJSON(w, http.StatusOK, bill)
}
