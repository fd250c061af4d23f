package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/OneForces/effectivness/internal/config"
	"github.com/OneForces/effectivness/internal/embedding"
	"github.com/OneForces/effectivness/internal/ingest"
	"github.com/OneForces/effectivness/internal/llm"
	"github.com/OneForces/effectivness/internal/logger"
	"github.com/OneForces/effectivness/internal/scoring"
)

// app bundles the wired components a command needs. Close releases the
// vector cache and any backend clients.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	scorer  *scoring.Scorer
	closers []func() error
}

func newApp() (*app, error) {
	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return nil, err
	}
	if flagConfigPath != "" {
		if err := cfg.ApplyFile(flagConfigPath); err != nil {
			return nil, err
		}
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	log, err := logger.New(flagJSONLog, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	embedder, err := a.buildEmbedder()
	if err != nil {
		return nil, err
	}
	a.scorer = scoring.New(embedder, log)
	return a, nil
}

// buildEmbedder wires the embedding provider for the configured backend.
// The offline backend has no embedding model; the scorer degrades to
// lexical-only scoring.
func (a *app) buildEmbedder() (scoring.Embedder, error) {
	var newModel func() (embedding.Model, error)
	switch a.cfg.LLMBackend {
	case "gemini":
		apiKey, model := a.cfg.GeminiAPIKey, a.cfg.EmbeddingModel
		newModel = func() (embedding.Model, error) {
			return embedding.NewGeminiModel(context.Background(), apiKey, model)
		}
	case "ollama":
		host, model, timeout := a.cfg.OllamaHost, a.cfg.EmbeddingModel, a.cfg.OllamaTimeout
		newModel = func() (embedding.Model, error) {
			return embedding.NewOllamaModel(host, model, timeout)
		}
	default:
		return nil, nil
	}

	cache := a.openCache()
	return embedding.NewProvider(newModel, cache, a.log), nil
}

// openCache opens the on-disk vector cache, falling back to an in-memory
// cache when the path is unusable.
func (a *app) openCache() embedding.VectorCache {
	path := a.cfg.CachePath
	if path == "" {
		return embedding.NewMemoryCache()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		a.log.Warn("cache dir unavailable, using in-memory cache", zap.Error(err))
		return embedding.NewMemoryCache()
	}
	cache, err := embedding.OpenBoltCache(path)
	if err != nil {
		a.log.Warn("vector cache unavailable, using in-memory cache",
			zap.String("path", path), zap.Error(err))
		return embedding.NewMemoryCache()
	}
	a.closers = append(a.closers, cache.Close)
	return cache
}

// buildAssistant wires the text-generation client for the configured backend.
func (a *app) buildAssistant(ctx context.Context) (*llm.Assistant, error) {
	llmCfg := &llm.Config{
		Backend:         llm.Backend(a.cfg.LLMBackend),
		GeminiAPIKey:    a.cfg.GeminiAPIKey,
		GeminiModel:     a.cfg.GeminiModel,
		OllamaHost:      a.cfg.OllamaHost,
		OllamaModel:     a.cfg.OllamaModel,
		OllamaTimeout:   a.cfg.OllamaTimeout,
		OllamaKeepAlive: a.cfg.OllamaKeepAlive,
		OllamaNumCtx:    a.cfg.OllamaNumCtx,
	}
	client, err := llm.NewClient(ctx, llmCfg)
	if err != nil {
		return nil, fmt.Errorf("init llm client: %w", err)
	}
	a.closers = append(a.closers, client.Close)
	return llm.NewAssistant(client, a.log), nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

// readDocument loads and extracts text from a document file.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return ingest.ReadAny(data, path), nil
}
