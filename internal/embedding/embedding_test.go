package embedding

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModel produces deterministic vectors and counts calls, so tests can
// verify that cache hits never reach the model.
type stubModel struct {
	mu        sync.Mutex
	calls     int
	batchLens []int
	failNext  bool
}

func (s *stubModel) Name() string { return "stub-model-v1" }

func (s *stubModel) Embed(_ context.Context, texts []string) ([][]float32, error) {
	s.mu.Lock()
	s.calls++
	s.batchLens = append(s.batchLens, len(texts))
	fail := s.failNext
	s.mu.Unlock()
	if fail {
		return nil, fmt.Errorf("stub model failure")
	}

	out := make([][]float32, len(texts))
	for i, t := range texts {
		// Derived from content so different texts get different vectors.
		out[i] = []float32{float32(len(t)), float32(len(t) % 7), 1}
	}
	return out, nil
}

func (s *stubModel) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newStubProvider(cache VectorCache) (*Provider, *stubModel) {
	model := &stubModel{}
	p := NewProvider(func() (Model, error) { return model, nil }, cache, nil)
	return p, model
}

func TestEmbed_ZeroTexts(t *testing.T) {
	p, model := newStubProvider(NewMemoryCache())
	got, err := p.Embed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, model.callCount())
}

func TestEmbed_NormalizesOutput(t *testing.T) {
	p, _ := newStubProvider(NewMemoryCache())
	vecs, err := p.Embed(context.Background(), "hello world")
	require.NoError(t, err)
	require.Len(t, vecs, 1)

	var norm float64
	for _, x := range vecs[0] {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}

func TestEmbed_CacheRoundTrip(t *testing.T) {
	p, model := newStubProvider(NewMemoryCache())

	first, err := p.Embed(context.Background(), "some jd text", "some resume text")
	require.NoError(t, err)
	assert.Equal(t, 1, model.callCount(), "misses must be batched into one model call")

	second, err := p.Embed(context.Background(), "some jd text", "some resume text")
	require.NoError(t, err)
	assert.Equal(t, 1, model.callCount(), "warm cache must not call the model")
	assert.Equal(t, first, second, "cached vectors must be bit-identical")
}

func TestEmbed_PartialMissBatchesOnlyMisses(t *testing.T) {
	p, model := newStubProvider(NewMemoryCache())

	_, err := p.Embed(context.Background(), "alpha")
	require.NoError(t, err)

	_, err = p.Embed(context.Background(), "alpha", "beta", "gamma")
	require.NoError(t, err)
	require.Equal(t, 2, model.callCount())
	assert.Equal(t, []int{1, 2}, model.batchLens)
}

func TestEmbed_DuplicateInputsSingleComputation(t *testing.T) {
	p, model := newStubProvider(NewMemoryCache())

	vecs, err := p.Embed(context.Background(), "same", "same")
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, vecs[0], vecs[1])
	assert.Equal(t, []int{1}, model.batchLens)
}

func TestEmbed_ModelErrorPropagates(t *testing.T) {
	p, model := newStubProvider(NewMemoryCache())
	model.failNext = true

	_, err := p.Embed(context.Background(), "text")
	assert.Error(t, err)
}

// failingCache rejects every write; results must still be returned.
type failingCache struct{}

func (failingCache) Get(string) ([]byte, bool) { return nil, false }
func (failingCache) Put(string, []byte) error  { return fmt.Errorf("disk full") }

func TestEmbed_CacheWriteFailureIsSwallowed(t *testing.T) {
	p, _ := newStubProvider(failingCache{})
	vecs, err := p.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, vecs, 1)
}

func TestEmbed_NilCache(t *testing.T) {
	p, model := newStubProvider(nil)
	vecs, err := p.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Len(t, vecs, 1)
	assert.Equal(t, 1, model.callCount())
}

func TestEmbed_ConcurrentInitBuildsOneModel(t *testing.T) {
	var factoryCalls int
	var mu sync.Mutex
	model := &stubModel{}
	p := NewProvider(func() (Model, error) {
		mu.Lock()
		factoryCalls++
		mu.Unlock()
		return model, nil
	}, NewMemoryCache(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := p.Embed(context.Background(), fmt.Sprintf("text-%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, factoryCalls)
}

func TestVectorCodec_RoundTrip(t *testing.T) {
	v := []float32{0.1, -2.5, 3.25, 0}
	decoded, err := decodeVector(encodeVector(v))
	require.NoError(t, err)
	assert.Equal(t, v, decoded)
}

func TestVectorCodec_RejectsCorruptBlobs(t *testing.T) {
	_, err := decodeVector([]byte{1, 2})
	assert.Error(t, err)

	blob := encodeVector([]float32{1, 2, 3})
	_, err = decodeVector(blob[:len(blob)-2])
	assert.Error(t, err)
}

func TestCacheKey_DependsOnModelIdentity(t *testing.T) {
	a := cacheKey("model-a", "text")
	b := cacheKey("model-b", "text")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, cacheKey("model-a", "text"))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func TestBoltCache_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.db")

	c, err := OpenBoltCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Put("k", []byte("payload")))
	require.NoError(t, c.Close())

	c, err = OpenBoltCache(path)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}
