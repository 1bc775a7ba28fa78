package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/groupcache/lru"
	"go.uber.org/zap"
)

// Cache memoizes the deterministic id lookups (term to word id, chat id to
// user id) in a JSON file, so repeated resolutions skip the database for the
// lifetime of the catalog. An absent or corrupt file is treated as an empty
// cache: the worst case is always recompute, never a hard error.
type Cache struct {
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	lru     *lru.Cache
	entries map[string]int64 // mirror of lru for the JSON snapshot
}

// New opens the cache backed by the file at path. The entry count is capped
// at maxEntries with least-recently-used eviction, so the file never grows
// without bound.
func New(path string, maxEntries int, logger *zap.Logger) *Cache {
	c := &Cache{
		path:    path,
		logger:  logger,
		lru:     lru.New(maxEntries),
		entries: make(map[string]int64),
	}
	c.lru.OnEvicted = func(key lru.Key, _ interface{}) {
		delete(c.entries, key.(string))
	}
	c.load()
	return c
}

// GetOrCompute returns the cached value for key, or invokes compute, stores
// the result and returns it. Compute errors are returned without caching.
// Single writer assumed per process; the mutex only guards the in-memory state.
func (c *Cache) GetOrCompute(key string, compute func() (int64, error)) (int64, error) {
	c.mu.Lock()
	if v, ok := c.lru.Get(key); ok {
		c.mu.Unlock()
		return v.(int64), nil
	}
	c.mu.Unlock()

	v, err := compute()
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.entries[key] = v
	c.lru.Add(key, v)
	c.persist()
	c.mu.Unlock()

	return v, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *Cache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("Failed to read lookup cache, starting empty",
				zap.String("path", c.path),
				zap.Error(err),
			)
		}
		return
	}

	snapshot := make(map[string]int64)
	if err := json.Unmarshal(data, &snapshot); err != nil {
		c.logger.Warn("Lookup cache is corrupt, starting empty",
			zap.String("path", c.path),
			zap.Error(err),
		)
		return
	}

	for k, v := range snapshot {
		c.entries[k] = v
		c.lru.Add(k, v)
	}
}

// persist writes the snapshot back to disk. Called with the mutex held.
func (c *Cache) persist() {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		c.logger.Warn("Failed to encode lookup cache", zap.Error(err))
		return
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		c.logger.Warn("Failed to create lookup cache directory", zap.Error(err))
		return
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		c.logger.Warn("Failed to write lookup cache",
			zap.String("path", c.path),
			zap.Error(err),
		)
	}
}
