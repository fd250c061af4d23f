package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Markers prefix generated text so callers can detect degraded output by
// inspecting the string instead of handling errors.
const (
	OfflineMarker = "[OFFLINE]"
	ErrorMarker   = "[LLM ERROR]"
	EmptyMarker   = "[LLM EMPTY]"
)

// Assistant is the never-failing facade over a Client. Generation errors are
// encoded into the returned text, so UI-facing callers can always render
// something.
type Assistant struct {
	client Client
	log    *zap.Logger
}

// NewAssistant wraps a client. A nil client behaves as the offline backend;
// a nil logger defaults to zap.NewNop.
func NewAssistant(client Client, log *zap.Logger) *Assistant {
	if client == nil {
		client = NewOfflineClient()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Assistant{client: client, log: log}
}

// Generate produces text for a system+user prompt pair. It never returns an
// error: failures come back as "[LLM ERROR] ..." text and an empty model
// answer as "[LLM EMPTY]".
func (a *Assistant) Generate(ctx context.Context, system, prompt string, opts Options) string {
	text, err := a.client.GenerateContent(ctx, system, prompt, opts)
	if err != nil {
		a.log.Warn("generation failed", zap.Error(err))
		return fmt.Sprintf("%s %v", ErrorMarker, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyMarker
	}
	return text
}

// IsDegraded reports whether generated text is a placeholder or error marker
// rather than real model output.
func IsDegraded(text string) bool {
	return strings.HasPrefix(text, OfflineMarker) ||
		strings.HasPrefix(text, ErrorMarker) ||
		strings.HasPrefix(text, EmptyMarker)
}
