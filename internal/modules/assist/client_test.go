package assist_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsmart/shopsmart-backend/internal/modules/assist"
)

func TestSendMessage_MissingKeyReturnsHint(t *testing.T) {
	client := assist.NewClient("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	reply := client.SendMessage(context.Background(), "", nil, "how do I add stock?")
	assert.Contains(t, reply, "GEMINI_API_KEY")
}

func TestSendMessage_ParsesCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body["contents"])

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "Add stock from the inventory screen."}}}},
			},
		})
	}))
	defer srv.Close()

	client := assist.NewClient("secret", slog.New(slog.NewTextHandler(io.Discard, nil)), assist.WithBaseURL(srv.URL))
	reply := client.SendMessage(context.Background(), "system", []assist.ChatMessage{{Role: "user", Text: "hi"}}, "how?")
	assert.Equal(t, "Add stock from the inventory screen.", reply)
}

func TestSendMessage_ServerErrorDegradesGracefully(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := assist.NewClient("secret", slog.New(slog.NewTextHandler(io.Discard, nil)), assist.WithBaseURL(srv.URL))
	reply := client.SendMessage(context.Background(), "", nil, "hello")
	assert.Contains(t, reply, "connection error")
}
