package sale

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes checkout HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/sales", func(r chi.Router) {
		r.Get("/", h.listSales)
		r.Post("/", h.checkout)
		r.Post("/quote", h.quote)
	})
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customer_id")
	var (
		sales []Sale
		err   error
	)
	if customerID != "" {
		sales, err = h.service.ListCustomerSales(r.Context(), customerID)
	} else {
		sales, err = h.service.ListSales(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, sales)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), checkoutStatus(err))
		return
	}
	respond(w, http.StatusCreated, s)
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	q, err := h.service.Quote(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), checkoutStatus(err))
		return
	}
	respond(w, http.StatusOK, q)
}

func checkoutStatus(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
