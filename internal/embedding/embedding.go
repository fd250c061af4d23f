// Package embedding turns text into L2-normalized float32 vectors, with a
// persistent content-addressed cache in front of the underlying model. The
// provider is safe for concurrent use: model construction happens lazily
// exactly once, cache reads are lock-free for the caller, and cache writes
// for a batch of misses are committed within one writer session.
package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"
)

// schemaVersion is baked into every cache key. Bump it when the on-disk
// vector encoding changes so stale entries are never reused.
const schemaVersion = "v1"

// Model computes dense vectors for a batch of texts. Implementations must
// return exactly one row per input, in input order.
type Model interface {
	// Name identifies the model; it is part of every cache key so a model
	// switch can never silently reuse incompatible vectors.
	Name() string
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorCache is a key→bytes store. Implementations must tolerate concurrent
// readers; the provider serializes writers itself.
type VectorCache interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte) error
}

// Provider wraps a Model with caching and lazy initialization. Construct one
// per process and inject it into every scorer that needs semantic signals.
type Provider struct {
	newModel func() (Model, error)
	cache    VectorCache
	log      *zap.Logger

	initOnce sync.Once
	model    Model
	initErr  error

	writeMu sync.Mutex // serializes cache write-back sessions
}

// NewProvider creates a Provider. The model factory runs at most once, on the
// first Embed call that sees a cache miss. A nil logger defaults to zap.NewNop.
func NewProvider(newModel func() (Model, error), cache VectorCache, log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{newModel: newModel, cache: cache, log: log}
}

// Embed returns one L2-normalized vector per input text. Texts already in the
// cache are served from it verbatim; all misses go to the model in a single
// batched call. An individual cache-write failure never fails the call.
func (p *Provider) Embed(ctx context.Context, texts ...string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	// The cache key needs the model identity, which is only known after
	// initialization. Initialization is cheap for remote backends (a client
	// handle), so it happens up front.
	model, err := p.getModel()
	if err != nil {
		return nil, fmt.Errorf("embedding model unavailable: %w", err)
	}

	out := make([][]float32, len(texts))
	keys := make([]string, len(texts))

	var missIdx []int
	pending := make(map[string]int) // key -> index of first miss, dedupes batch input
	var missTexts []string

	for i, text := range texts {
		keys[i] = cacheKey(model.Name(), text)
		if p.cache != nil {
			if raw, ok := p.cache.Get(keys[i]); ok {
				vec, decErr := decodeVector(raw)
				if decErr == nil {
					out[i] = vec
					continue
				}
				p.log.Debug("discarding undecodable cache entry",
					zap.String("key", keys[i]), zap.Error(decErr))
			}
		}
		if _, dup := pending[keys[i]]; !dup {
			pending[keys[i]] = len(missTexts)
			missTexts = append(missTexts, text)
		}
		missIdx = append(missIdx, i)
	}

	if len(missTexts) == 0 {
		return out, nil
	}

	computed, err := model.Embed(ctx, missTexts)
	if err != nil {
		return nil, fmt.Errorf("embed %d texts: %w", len(missTexts), err)
	}
	if len(computed) != len(missTexts) {
		return nil, fmt.Errorf("embed returned %d vectors for %d texts", len(computed), len(missTexts))
	}
	for i := range computed {
		l2Normalize(computed[i])
	}

	for _, i := range missIdx {
		out[i] = computed[pending[keys[i]]]
	}

	if p.cache != nil {
		p.writeBack(pending, computed)
	}
	return out, nil
}

// writeBack commits all freshly computed vectors in one held-lock session.
// Per-entry failures are logged and swallowed: the in-memory result has
// already been produced and stays valid.
func (p *Provider) writeBack(pending map[string]int, vectors [][]float32) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	for key, i := range pending {
		if err := p.cache.Put(key, encodeVector(vectors[i])); err != nil {
			p.log.Debug("vector cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (p *Provider) getModel() (Model, error) {
	p.initOnce.Do(func() {
		p.model, p.initErr = p.newModel()
	})
	return p.model, p.initErr
}

// cacheKey hashes the text together with the model identity and the cache
// schema version.
func cacheKey(modelName, text string) string {
	h := sha256.New()
	h.Write([]byte(schemaVersion))
	h.Write([]byte{0})
	h.Write([]byte(modelName))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

func l2Normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range v {
		v[i] = float32(float64(v[i]) * inv)
	}
}

// Cosine is the dot product of two vectors. For L2-normalized inputs this is
// exactly the cosine similarity.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}
