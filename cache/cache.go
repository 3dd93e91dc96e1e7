// Package cache provides a content-hash keyed tag cache, avoiding a
// re-parse of Ada sources that have not changed since the last scan.
package cache

import (
	"sync"

	"github.com/minio/highwayhash"

	"github.com/viant/adatags/ada"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns a 64-bit content hash of data, combined with the
// serialized host options so a cache entry invalidates itself when the
// options used to produce it change.
func Hash(data []byte, optionsFingerprint string) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(data); err != nil {
		return 0, err
	}
	if _, err := h.Write([]byte(optionsFingerprint)); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// entry is one cached file's tag set, keyed by its content hash.
type entry struct {
	hash uint64
	tags []ada.Tag
}

// Cache maps a source path to the tags produced from the content last
// seen at that path, so a caller can skip re-parsing when the content
// hash is unchanged. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Lookup returns the cached tags for path if hash matches the hash
// recorded for the last Store at that path.
func (c *Cache) Lookup(path string, hash uint64) ([]ada.Tag, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[path]
	if !ok || e.hash != hash {
		return nil, false
	}
	return e.tags, true
}

// Store records tags as the result of scanning path at the given
// content hash, replacing any prior entry for that path.
func (c *Cache) Store(path string, hash uint64, tags []ada.Tag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry{hash: hash, tags: tags}
}

// Delete discards the cached entry for path, if any.
func (c *Cache) Delete(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Len reports the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
