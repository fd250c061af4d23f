// Package llm provides the text-generation client used by the artifact
// generators (tailored bullets, cover letters, plans, interview questions).
// The scorer itself never talks to an LLM.
package llm

import "time"

// Backend selects the text-generation provider.
type Backend string

// Supported backends. Offline is a fully functional no-network fallback that
// returns clearly marked placeholder text.
const (
	BackendOffline Backend = "offline"
	BackendGemini  Backend = "gemini"
	BackendOllama  Backend = "ollama"
)

// Config holds provider settings for the generation client.
type Config struct {
	Backend Backend

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Ollama
	OllamaHost      string
	OllamaModel     string
	OllamaTimeout   time.Duration
	OllamaKeepAlive string
	OllamaNumCtx    int
}

// DefaultConfig returns the offline backend with local-daemon defaults for
// Ollama, mirroring what the application ships with out of the box.
func DefaultConfig() *Config {
	return &Config{
		Backend:         BackendOffline,
		GeminiModel:     "gemini-2.5-flash",
		OllamaHost:      "http://localhost:11434",
		OllamaModel:     "mistral",
		OllamaTimeout:   10 * time.Minute,
		OllamaKeepAlive: "15m",
		OllamaNumCtx:    4096,
	}
}

// Options tune a single generation call.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// DefaultOptions are conservative settings for deterministic-ish output.
func DefaultOptions() Options {
	return Options{Temperature: 0.25, MaxTokens: 800}
}
