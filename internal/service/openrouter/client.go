// Package openrouter talks to an OpenAI-compatible chat/completions endpoint.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dvhelper/backend/internal/model/chat"
)

var (
	ErrMissingAPIKey   = errors.New("openrouter: API key not configured")
	ErrEmptyCompletion = errors.New("openrouter: response carried no completion text")
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 * 1024 * 1024

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openrouter: request failed with status %d: %s", e.StatusCode, e.Body)
}

// Config holds the injected endpoint, credential and sampling settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	SiteURL     string
	SiteName    string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client implements a single-shot, non-streaming completion call.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds a Client. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, httpClient: httpClient}
}

// Message is one entry of the wire-level messages array.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat/completions request body.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Response is the subset of the chat/completions response the client reads.
type Response struct {
	Choices []struct {
		Message *struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the system instruction followed by the history and returns the
// first choice's content. No retry is attempted.
func (c *Client) Complete(ctx context.Context, req chat.CompletionRequest) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	startTime := time.Now()
	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("openrouter: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openrouter: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.SiteURL != "" {
		httpReq.Header.Set("HTTP-Referer", c.cfg.SiteURL)
	}
	if c.cfg.SiteName != "" {
		httpReq.Header.Set("X-Title", c.cfg.SiteName)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openrouter: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("openrouter: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 512)}
	}

	var parsed Response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("openrouter: failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openrouter: API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message == nil || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	content := parsed.Choices[0].Message.Content
	log.Debug().
		Str("model", c.cfg.Model).
		Int("history", len(req.History)).
		Int("response_len", len(content)).
		Dur("elapsed", time.Since(startTime)).
		Msg("openrouter completion finished")
	return content, nil
}

func (c *Client) buildRequest(req chat.CompletionRequest) Request {
	messages := make([]Message, 0, len(req.History)+1)
	messages = append(messages, Message{Role: string(chat.RoleSystem), Content: req.System})
	for _, m := range req.History {
		messages = append(messages, Message{Role: string(m.Role), Content: m.Content})
	}

	return Request{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
