package kwargs

import (
	"strconv"
	"strings"
	"sync"
)

const cacheKeyLenSep = ":"

// templateCache keeps compiled templates keyed by source and name list.
// Entries are immutable, so a hit can be shared between goroutines.
type templateCache struct {
	maxEntries int

	mu      sync.RWMutex
	entries map[string]*templateCacheEntry
	tick    uint64
	hits    uint64
	misses  uint64
}

type templateCacheEntry struct {
	template *Template
	lastUsed uint64
	key      string
}

// CacheStats contains template cache statistics.
type CacheStats struct {
	Entries    int
	MaxEntries int
	Hits       uint64
	Misses     uint64
}

func newTemplateCache(maxEntries int) *templateCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	return &templateCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*templateCacheEntry),
	}
}

// templateCacheKey length-prefixes every part so distinct inputs never share a key
func templateCacheKey(source string, names []string) string {
	var b strings.Builder
	for _, part := range append([]string{source}, names...) {
		b.WriteString(strconv.Itoa(len(part)))
		b.WriteString(cacheKeyLenSep)
		b.WriteString(part)
	}
	return b.String()
}

// get returns the cached template, or nil.
func (c *templateCache) get(key string) *Template {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil
	}
	c.hits++
	c.tick++
	entry.lastUsed = c.tick
	return entry.template
}

// put stores tmpl, evicting the least recently used entry when full.
// It returns true if an entry was evicted.
func (c *templateCache) put(key string, tmpl *Template) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := false
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldest()
		evicted = true
	}

	c.tick++
	c.entries[key] = &templateCacheEntry{
		template: tmpl,
		lastUsed: c.tick,
		key:      key,
	}
	return evicted
}

// evictOldest removes the least recently used entry.
// Caller must hold write lock.
func (c *templateCache) evictOldest() {
	var oldest *templateCacheEntry
	for _, entry := range c.entries {
		if oldest == nil || entry.lastUsed < oldest.lastUsed {
			oldest = entry
		}
	}
	if oldest != nil {
		delete(c.entries, oldest.key)
	}
}

func (c *templateCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]*templateCacheEntry)
	c.mu.Unlock()
}

func (c *templateCache) stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Entries:    len(c.entries),
		MaxEntries: c.maxEntries,
		Hits:       c.hits,
		Misses:     c.misses,
	}
}
