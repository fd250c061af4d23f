// Package config provides configuration loading and validation for the CLI
// and server. Values come from the environment, with an optional .env file
// loaded first; environment variables that are already set win.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the assistant.
type Config struct {
	// LLM backend selection: "offline", "ollama" or "gemini".
	LLMBackend string `validate:"oneof=offline ollama gemini"`

	// Gemini
	GeminiAPIKey string
	GeminiModel  string `validate:"required"`

	// Ollama
	OllamaHost      string `validate:"required,url"`
	OllamaModel     string `validate:"required"`
	OllamaTimeout   time.Duration
	OllamaKeepAlive string
	OllamaNumCtx    int `validate:"gt=0"`

	// Embeddings
	EmbeddingModel string `validate:"required"`
	CachePath      string

	// Scoring
	BatchWorkers int `validate:"gt=0"`

	// Server
	ListenAddr string `validate:"required"`

	Verbose bool
}

// Defaults returns the configuration used when no environment is set.
func Defaults() Config {
	return Config{
		LLMBackend:      "offline",
		GeminiModel:     "gemini-2.5-flash",
		OllamaHost:      "http://localhost:11434",
		OllamaModel:     "mistral",
		OllamaTimeout:   10 * time.Minute,
		OllamaKeepAlive: "15m",
		OllamaNumCtx:    4096,
		EmbeddingModel:  "text-embedding-004",
		CachePath:       defaultCachePath(),
		BatchWorkers:    4,
		ListenAddr:      ":8080",
	}
}

// Load reads configuration from a .env file (if present) and the
// environment, then validates the result. A missing .env file is not an
// error; a malformed one is.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort load of ./.env, mirroring local dev workflow.
		_ = godotenv.Load()
	}

	cfg := Defaults()
	cfg.LLMBackend = envOr("LLM_BACKEND", cfg.LLMBackend)
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = envOr("GEMINI_MODEL", cfg.GeminiModel)
	cfg.OllamaHost = envOr("OLLAMA_HOST", cfg.OllamaHost)
	cfg.OllamaModel = envOr("OLLAMA_MODEL", cfg.OllamaModel)
	cfg.OllamaKeepAlive = envOr("OLLAMA_KEEP_ALIVE", cfg.OllamaKeepAlive)
	cfg.EmbeddingModel = envOr("EMB_MODEL", cfg.EmbeddingModel)
	cfg.CachePath = envOr("EMB_CACHE_PATH", cfg.CachePath)
	cfg.ListenAddr = envOr("LISTEN_ADDR", cfg.ListenAddr)

	var err error
	if cfg.OllamaTimeout, err = envDuration("OLLAMA_TIMEOUT", cfg.OllamaTimeout); err != nil {
		return Config{}, err
	}
	if cfg.OllamaNumCtx, err = envInt("OLLAMA_NUM_CTX", cfg.OllamaNumCtx); err != nil {
		return Config{}, err
	}
	if cfg.BatchWorkers, err = envInt("BATCH_WORKERS", cfg.BatchWorkers); err != nil {
		return Config{}, err
	}
	cfg.Verbose = envBool("VERBOSE")
	cfg.LLMBackend = strings.ToLower(strings.TrimSpace(cfg.LLMBackend))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FileConfig is the optional JSON config file. All fields are optional;
// set fields override both defaults and the environment.
type FileConfig struct {
	LLMBackend      string `json:"llm_backend,omitempty"`
	GeminiAPIKey    string `json:"gemini_api_key,omitempty"`
	GeminiModel     string `json:"gemini_model,omitempty"`
	OllamaHost      string `json:"ollama_host,omitempty"`
	OllamaModel     string `json:"ollama_model,omitempty"`
	OllamaTimeout   string `json:"ollama_timeout,omitempty"`
	EmbeddingModel  string `json:"embedding_model,omitempty"`
	CachePath       string `json:"cache_path,omitempty"`
	BatchWorkers    int    `json:"batch_workers,omitempty"`
	ListenAddr      string `json:"listen_addr,omitempty"`
}

// ApplyFile reads a JSON config file and overlays its set fields onto c.
// The merged result is re-validated.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var f FileConfig
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if f.LLMBackend != "" {
		c.LLMBackend = strings.ToLower(strings.TrimSpace(f.LLMBackend))
	}
	if f.GeminiAPIKey != "" {
		c.GeminiAPIKey = f.GeminiAPIKey
	}
	if f.GeminiModel != "" {
		c.GeminiModel = f.GeminiModel
	}
	if f.OllamaHost != "" {
		c.OllamaHost = f.OllamaHost
	}
	if f.OllamaModel != "" {
		c.OllamaModel = f.OllamaModel
	}
	if f.OllamaTimeout != "" {
		d, err := time.ParseDuration(f.OllamaTimeout)
		if err != nil {
			return fmt.Errorf("config error: ollama_timeout must be a duration: %w", err)
		}
		c.OllamaTimeout = d
	}
	if f.EmbeddingModel != "" {
		c.EmbeddingModel = f.EmbeddingModel
	}
	if f.CachePath != "" {
		c.CachePath = f.CachePath
	}
	if f.BatchWorkers != 0 {
		c.BatchWorkers = f.BatchWorkers
	}
	if f.ListenAddr != "" {
		c.ListenAddr = f.ListenAddr
	}
	return c.Validate()
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.LLMBackend == "gemini" && c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required for the gemini backend")
	}
	return nil
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "emb_cache.db"
	}
	return dir + string(os.PathSeparator) + "skillpilot" + string(os.PathSeparator) + "emb_cache.db"
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	// Bare numbers are read as seconds.
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be a duration: %w", key, err)
	}
	return d, nil
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes"
}
