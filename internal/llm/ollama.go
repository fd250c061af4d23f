package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	ollamaUserAgent = "skillpilot/ollama-client"
	ollamaRetries   = 3
)

// OllamaClient implements Client against a local Ollama daemon's /api/chat
// endpoint, with retries, exponential backoff and a wake ping after the
// first failure.
type OllamaClient struct {
	host      string
	model     string
	keepAlive string
	numCtx    int
	httpcli   *http.Client
}

// NewOllamaClient creates a new Ollama client.
func NewOllamaClient(config *Config) (*OllamaClient, error) {
	if config.OllamaHost == "" {
		return nil, fmt.Errorf("ollama host is required")
	}
	if config.OllamaModel == "" {
		return nil, fmt.Errorf("ollama model is required")
	}
	timeout := config.OllamaTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().OllamaTimeout
	}
	return &OllamaClient{
		host:      strings.TrimRight(config.OllamaHost, "/"),
		model:     config.OllamaModel,
		keepAlive: config.OllamaKeepAlive,
		numCtx:    config.OllamaNumCtx,
		httpcli:   &http.Client{Timeout: timeout},
	}, nil
}

type ollamaChatRequest struct {
	Model     string          `json:"model"`
	Messages  []ollamaMessage `json:"messages"`
	Options   map[string]any  `json:"options"`
	Stream    bool            `json:"stream"`
	KeepAlive string          `json:"keep_alive,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Message  *ollamaMessage `json:"message"`
	Response string         `json:"response"`
	Done     bool           `json:"done"`
}

// GenerateContent produces text for a system+user prompt pair.
func (c *OllamaClient) GenerateContent(ctx context.Context, system, prompt string, opts Options) (string, error) {
	payload := ollamaChatRequest{
		Model: c.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Options: map[string]any{
			"temperature": opts.Temperature,
			"num_ctx":     c.numCtx,
			"num_predict": opts.MaxTokens,
		},
		Stream:    false,
		KeepAlive: c.keepAlive,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < ollamaRetries; attempt++ {
		text, err := c.chat(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if attempt == 0 {
			c.wake(ctx)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(1<<attempt) * time.Second):
		}
	}
	return "", fmt.Errorf("ollama chat after %d attempts: %w", ollamaRetries, lastErr)
}

func (c *OllamaClient) chat(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ollamaUserAgent)

	resp, err := c.httpcli.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama /api/chat: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out ollamaChatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	text := extractOllamaText(&out)
	if text == "" {
		return "", fmt.Errorf("unexpected ollama response format")
	}
	return text, nil
}

// extractOllamaText unifies the chat ({"message":{"content":...}}) and
// generate ({"response":...}) response shapes, in that fallback order.
func extractOllamaText(resp *ollamaChatResponse) string {
	if resp.Message != nil && resp.Message.Content != "" {
		return strings.TrimSpace(resp.Message.Content)
	}
	return strings.TrimSpace(resp.Response)
}

// wake pings /api/tags so an idle daemon loads before the next retry.
func (c *OllamaClient) wake(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", ollamaUserAgent)
	if resp, err := c.httpcli.Do(req); err == nil {
		resp.Body.Close()
	}
}

// Close is a no-op for the HTTP-based client.
func (c *OllamaClient) Close() error { return nil }
