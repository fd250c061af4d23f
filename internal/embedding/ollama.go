package embedding

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

// OllamaModel embeds text through a local Ollama daemon's /api/embed
// endpoint. Transient failures are retried with exponential backoff; the
// first failure also pings /api/tags to wake an idle daemon.
type OllamaModel struct {
	host    string
	model   string
	httpcli *http.Client
}

// NewOllamaModel creates an Ollama-backed embedding model. host is the
// daemon base URL (e.g. http://localhost:11434).
func NewOllamaModel(host, model string, timeout time.Duration) (*OllamaModel, error) {
	if host == "" {
		return nil, fmt.Errorf("ollama host is required")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama embedding model is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	return &OllamaModel{
		host:    strings.TrimRight(host, "/"),
		model:   model,
		httpcli: &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the Ollama model identifier.
func (m *OllamaModel) Name() string { return "ollama/" + m.model }

type ollamaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type ollamaEmbedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed computes embeddings for all texts in one request.
func (m *OllamaModel) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	body, err := json.Marshal(ollamaEmbedRequest{Model: m.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal embed request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < ollamaRetries; attempt++ {
		resp, err := m.post(ctx, "/api/embed", body)
		if err == nil {
			if len(resp.Embeddings) != len(texts) {
				return nil, fmt.Errorf("ollama returned %d embeddings for %d texts", len(resp.Embeddings), len(texts))
			}
			return resp.Embeddings, nil
		}
		lastErr = err
		if attempt == 0 {
			m.wake(ctx)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(1<<attempt) * time.Second):
		}
	}
	return nil, fmt.Errorf("ollama embed after %d attempts: %w", ollamaRetries, lastErr)
}

func (m *OllamaModel) post(ctx context.Context, path string, body []byte) (*ollamaEmbedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.host+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ollamaUserAgent)

	resp, err := m.httpcli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out ollamaEmbedResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode ollama response: %w", err)
	}
	return &out, nil
}

// wake pings /api/tags so an idle daemon loads before the next retry.
func (m *OllamaModel) wake(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.host+"/api/tags", nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", ollamaUserAgent)
	if resp, err := m.httpcli.Do(req); err == nil {
		resp.Body.Close()
	}
}
