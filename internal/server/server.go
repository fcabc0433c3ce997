// Package server wires the HTTP API: routing, request decoding and
// validation, and mapping service errors to status codes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/mmynk/stockroom/internal/config"
	"github.com/mmynk/stockroom/internal/metrics"
	"github.com/mmynk/stockroom/internal/middleware"
	"github.com/mmynk/stockroom/internal/service"
)

// Server holds the handlers' dependencies.
type Server struct {
	items    *service.ItemService
	billing  *service.BillingService
	validate *validator.Validate
}

// New creates a Server backed by the given services.
func New(items *service.ItemService, billing *service.BillingService) *Server {
	return &Server{
		items:    items,
		billing:  billing,
		validate: validator.New(),
	}
}

// Routes builds the router: the /api resources, plus /health and /metrics.
func (s *Server) Routes(cfg *config.Config, m *metrics.Metrics, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Instrument(m))

	r.Route("/api", func(r chi.Router) {
		r.Post("/items", s.createItem)
		r.Get("/items", s.listItems)
		r.Get("/items/{id}", s.getItem)
		r.Put("/items/{id}", s.updateItem)
		r.Delete("/items/{id}", s.deleteItem)

		r.Post("/bills", s.createBill)
		r.Get("/bills", s.listBills)
		r.Get("/bills/{id}", s.getBill)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	return r
}
