package embedding

import (
	"fmt"
	"sync"

	bolt "go.etcd.io/bbolt"
)

// MemoryCache is an in-process VectorCache, suitable for tests and for
// callers that do not want persistence.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string][]byte)}
}

// Get returns the cached value for key, if present.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

// Put stores value under key. It never fails.
func (c *MemoryCache) Put(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	c.m[key] = cp
	return nil
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

const vectorBucket = "vectors"

// BoltCache is a file-backed VectorCache on bbolt. Entries never expire; the
// cache key already carries the model identity, so a model switch simply
// stops hitting old entries. bbolt allows concurrent readers with a single
// writer, which matches the provider's locking discipline.
type BoltCache struct {
	db *bolt.DB
}

// OpenBoltCache opens (or creates) the cache file at path.
func OpenBoltCache(path string) (*BoltCache, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open vector cache %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(vectorBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init vector cache bucket: %w", err)
	}
	return &BoltCache{db: db}, nil
}

// Get returns the cached value for key, if present.
func (c *BoltCache) Get(key string) ([]byte, bool) {
	var out []byte
	_ = c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(vectorBucket)).Get([]byte(key)); v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	return out, out != nil
}

// Put stores value under key.
func (c *BoltCache) Put(key string, value []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(vectorBucket)).Put([]byte(key), value)
	})
}

// Close releases the underlying database file.
func (c *BoltCache) Close() error {
	return c.db.Close()
}
