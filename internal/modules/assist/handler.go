package assist

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the chat endpoint.
type Handler struct {
	client   *Client
	shopName func() string
}

// NewHandler creates the assist handler. shopName is looked up per
// request so a renamed shop shows up in the assistant's context.
func NewHandler(client *Client, shopName func() string) *Handler {
	return &Handler{client: client, shopName: shopName}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/assist", func(r chi.Router) {
		r.Post("/chat", h.chat)
	})
}

func (h *Handler) systemInstruction() string {
	name := h.shopName()
	if name == "" {
		name = "the shop"
	}
	return fmt.Sprintf(`You are the ShopSmart assistant for %s, a small retail business.
Help the shopkeeper with stock, sales, and customer questions.
Keep responses under 5 sentences and avoid jargon.`, name)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		History []ChatMessage `json:"history"`
		Message string        `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	reply := h.client.SendMessage(r.Context(), h.systemInstruction(), req.History, req.Message)
	respond(w, http.StatusOK, map[string]string{"reply": reply})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
