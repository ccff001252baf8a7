package syncstatus

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the sync badge endpoints.
type Handler struct{ tracker *Tracker }

func NewHandler(tracker *Tracker) *Handler { return &Handler{tracker: tracker} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/sync", func(r chi.Router) {
		r.Get("/status", h.status)
		r.Post("/trigger", h.trigger)
		r.Put("/online", h.setOnline)
	})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.tracker.Status())
}

func (h *Handler) trigger(w http.ResponseWriter, r *http.Request) {
	h.tracker.Trigger()
	respond(w, http.StatusAccepted, h.tracker.Status())
}

func (h *Handler) setOnline(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Online bool `json:"online"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.tracker.SetOnline(req.Online)
	respond(w, http.StatusOK, h.tracker.Status())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
