package currency

import (
	"container/list"
	"fmt"
	"sync"
)

type cacheEntry struct {
	key     string
	grammar *Grammar
}

// Cache keeps the most recently used compiled grammars, keyed by their
// options. When the cache reaches its capacity, the least recently used
// grammar is dropped. It is safe for concurrent use.
type Cache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// NewCache creates a cache holding up to capacity grammars.
// The capacity must be positive, otherwise it panics.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		panic("currency: cache capacity must be positive")
	}
	return &Cache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// Compile returns the grammar for opts applied on top of DefaultOptions,
// compiling it on a miss. Invalid options are not cached.
func (c *Cache) Compile(opts ...Option) (*Grammar, error) {
	o := buildOptions(opts)
	key := o.key()

	if g, ok := c.get(key); ok {
		return g, nil
	}

	// compile outside the lock; a concurrent miss may compile twice
	g, err := compile(o)
	if err != nil {
		return nil, err
	}
	return c.put(key, g), nil
}

// Len returns the number of cached grammars.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Clear drops every cached grammar.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

func (c *Cache) get(key string) (*Grammar, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).grammar, true
	}
	return nil, false
}

// put stores g unless another goroutine stored the same key first, and
// returns the grammar that ends up cached.
func (c *Cache) put(key string, g *Grammar) *Grammar {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).grammar
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, grammar: g})
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
	return g
}

// key renders every field, so equal options give equal keys.
func (o Options) key() string {
	return fmt.Sprintf("%#v", o)
}
