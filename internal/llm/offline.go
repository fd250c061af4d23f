package llm

import "context"

// offlinePreviewLimit bounds how much of the prompt the offline placeholder
// echoes back.
const offlinePreviewLimit = 500

// OfflineClient is a no-network Client that returns a clearly marked
// placeholder. It lets the whole generation pipeline run without any backend.
type OfflineClient struct{}

// NewOfflineClient creates the offline placeholder client.
func NewOfflineClient() *OfflineClient { return &OfflineClient{} }

// GenerateContent returns the offline marker with a prompt preview.
func (c *OfflineClient) GenerateContent(_ context.Context, _, prompt string, _ Options) (string, error) {
	return OfflineMarker + "\n" + truncateRunes(prompt, offlinePreviewLimit), nil
}

// Close is a no-op.
func (c *OfflineClient) Close() error { return nil }

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
