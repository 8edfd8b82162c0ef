// Package replycache remembers the replies to deterministic commands.
//
// A reply stays valid until the game data is reloaded. Each load of the
// data gets its own Scoped view, and the bot clears the cache once the
// new data is in place.
package replycache

import (
	"context"
	"sync"

	"github.com/golang/groupcache/lru"
)

// A Cache maps a command line to its reply. Implementations are safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (reply string, ok bool, err error)
	Set(ctx context.Context, key, reply string) error
	Clear(ctx context.Context) error
}

// LRU is an in-process Cache holding a bounded number of replies.
type LRU struct {
	mu    sync.Mutex
	size  int
	cache *lru.Cache
}

// DefaultSize is the number of replies an LRU keeps if no size is given.
const DefaultSize = 512

// NewLRU creates an LRU cache of the given size.
func NewLRU(size int) *LRU {
	if size <= 0 {
		size = DefaultSize
	}
	return &LRU{size: size, cache: lru.New(size)}
}

// Get returns the cached reply for key.
func (c *LRU) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache.Get(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

// Set caches reply for key, evicting the least recently used entry if
// the cache is full.
func (c *LRU) Set(_ context.Context, key, reply string) error {
	c.mu.Lock()
	c.cache.Add(key, reply)
	c.mu.Unlock()
	return nil
}

// Clear empties the cache.
func (c *LRU) Clear(context.Context) error {
	c.mu.Lock()
	c.cache.Clear()
	c.mu.Unlock()
	return nil
}

// Len returns the number of cached replies.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Scoped tags every key of an underlying Cache with a scope, so replies
// written under one scope are never read under another. Clear empties
// the whole underlying cache.
type Scoped struct {
	cache Cache
	scope string
}

// NewScoped returns a view of c under scope.
func NewScoped(c Cache, scope string) *Scoped {
	return &Scoped{cache: c, scope: scope}
}

func (s *Scoped) key(k string) string {
	return s.scope + ":" + k
}

// Get returns the reply cached for key under this scope.
func (s *Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.cache.Get(ctx, s.key(key))
}

// Set caches reply for key under this scope.
func (s *Scoped) Set(ctx context.Context, key, reply string) error {
	return s.cache.Set(ctx, s.key(key), reply)
}

// Clear empties the underlying cache.
func (s *Scoped) Clear(ctx context.Context) error {
	return s.cache.Clear(ctx)
}
