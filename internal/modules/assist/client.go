// Package assist is the peripheral AI chat helper. It wraps the Gemini
// generateContent REST endpoint behind a small client; a missing API
// key degrades to a canned explanation instead of an error, and no
// failure here is ever fatal to the shop.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxResponseSize caps the response body read from the model API.
const maxResponseSize = 1 << 20

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ChatMessage is one turn of the conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Client calls the Gemini API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) { client.httpClient = c }
}

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(url string) ClientOption {
	return func(client *Client) { client.baseURL = url }
}

// WithModel overrides the model name.
func WithModel(model string) ClientOption {
	return func(client *Client) { client.model = model }
}

// NewClient creates an assist client. An empty apiKey is allowed; the
// client then answers every message with a configuration hint.
func NewClient(apiKey string, logger *slog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      "gemini-2.5-flash",
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const missingKeyReply = "AI assistance is not configured. Set GEMINI_API_KEY to enable the shop assistant."

const connectionErrorReply = "A connection error occurred. Please try again later."

// request/response shapes for the generateContent endpoint.
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents          []generateContent `json:"contents"`
	SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// SendMessage sends the chat history plus a new user message and
// returns the model's reply. Failures never propagate as errors:
// the user gets a friendly message and the cause is logged.
func (c *Client) SendMessage(ctx context.Context, system string, history []ChatMessage, message string) string {
	if c.apiKey == "" {
		return missingKeyReply
	}

	reqBody := generateRequest{}
	if system != "" {
		reqBody.SystemInstruction = &generateContent{Parts: []generatePart{{Text: system}}}
	}
	for _, m := range history {
		role := "user"
		if m.Role == "model" {
			role = "model"
		}
		reqBody.Contents = append(reqBody.Contents, generateContent{
			Role:  role,
			Parts: []generatePart{{Text: m.Text}},
		})
	}
	reqBody.Contents = append(reqBody.Contents, generateContent{
		Role:  "user",
		Parts: []generatePart{{Text: message}},
	})

	data, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("assist request marshal failed", "error", err)
		return connectionErrorReply
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		c.logger.Error("assist request build failed", "error", err)
		return connectionErrorReply
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("assist request failed", "error", err)
		return connectionErrorReply
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		c.logger.Error("assist response read failed", "error", err)
		return connectionErrorReply
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("assist API error", "status", resp.StatusCode)
		return connectionErrorReply
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error("assist response parse failed", "error", err)
		return connectionErrorReply
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "I cannot generate an answer at this time."
	}
	return parsed.Candidates[0].Content.Parts[0].Text
}
