package research

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/coregx/research/source"
	"github.com/coregx/research/syntax"
)

// Cache keeps recently compiled patterns. Entries are keyed by the pattern
// and its compile flags; the least recently used entry is evicted when the
// cache is full. A Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	size    int
	words   source.Classifier
	config  Config
	lru     *list.List // of *cacheEntry, most recent first
	entries map[uint64]*list.Element

	hits   uint64
	misses uint64
}

type cacheEntry struct {
	key           uint64
	pattern       string
	caseSensitive bool
	posix         bool
	re            *Regexp
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// NewCache returns a cache holding up to size compiled patterns. Patterns are
// compiled with words (nil means the default classifier) and config.
func NewCache(size int, words source.Classifier, config Config) *Cache {
	return &Cache{
		size:    max(size, 1),
		words:   words,
		config:  config,
		lru:     list.New(),
		entries: make(map[uint64]*list.Element),
	}
}

func cacheKey(pattern string, caseSensitive, posix bool) uint64 {
	flags := byte('0')
	if caseSensitive {
		flags |= 1
	}
	if posix {
		flags |= 2
	}
	d := xxhash.New()
	_, _ = d.Write([]byte{flags})
	_, _ = d.WriteString(pattern)
	return d.Sum64()
}

// Get returns the compiled pattern, compiling and caching it on a miss.
// Compile errors are not cached.
func (c *Cache) Get(pattern string, caseSensitive, posix bool) (*Regexp, error) {
	key := cacheKey(pattern, caseSensitive, posix)

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		e := el.Value.(*cacheEntry)
		if e.pattern == pattern && e.caseSensitive == caseSensitive && e.posix == posix {
			c.lru.MoveToFront(el)
			c.hits++
			c.mu.Unlock()
			cacheHitsTotal.Inc()
			return e.re, nil
		}
	}
	c.misses++
	c.mu.Unlock()
	cacheMissesTotal.Inc()

	opts := syntax.Options{CaseSensitive: caseSensitive, POSIX: posix, Words: c.words}
	re, err := CompileWithConfig(pattern, opts, c.config)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		// Replaced by a concurrent Get or a hash collision.
		c.lru.Remove(el)
	}
	c.entries[key] = c.lru.PushFront(&cacheEntry{
		key:           key,
		pattern:       pattern,
		caseSensitive: caseSensitive,
		posix:         posix,
		re:            re,
	})
	for c.lru.Len() > c.size {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	return re, nil
}

// Stats returns the hit and miss counts and the number of cached entries.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: c.lru.Len()}
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Init()
	clear(c.entries)
}
