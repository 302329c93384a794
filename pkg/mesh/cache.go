package mesh

import (
	"slices"
	"sync"
)

// DefaultCacheSize is the number of tables NewCache keeps.
const DefaultCacheSize = 16

// Cache memoizes face tables by mesh identity, keeping the most recently
// used ones. A mesh whose buffers change must be passed as a new *Mesh or
// dropped with Forget.
type Cache struct {
	mu     sync.Mutex
	size   int
	tables map[*Mesh]*Table
	order  []*Mesh // least recently used first
}

// NewCache creates an empty cache holding up to DefaultCacheSize tables.
func NewCache() *Cache {
	return NewCacheSize(DefaultCacheSize)
}

// NewCacheSize creates an empty cache holding up to size tables. A size
// below 1 is treated as 1.
func NewCacheSize(size int) *Cache {
	return &Cache{
		size:   max(size, 1),
		tables: make(map[*Mesh]*Table),
	}
}

// Table returns the cached table for m, building it on first use. Building
// a table beyond the size limit evicts the least recently used one.
func (c *Cache) Table(m *Mesh) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[m]; ok {
		c.touch(m)
		return t, nil
	}
	t, err := NewTable(m)
	if err != nil {
		return nil, err
	}
	if len(c.order) >= c.size {
		delete(c.tables, c.order[0])
		c.order = slices.Delete(c.order, 0, 1)
	}
	c.tables[m] = t
	c.order = append(c.order, m)
	return t, nil
}

func (c *Cache) touch(m *Mesh) {
	if i := slices.Index(c.order, m); i >= 0 {
		c.order = append(slices.Delete(c.order, i, i+1), m)
	}
}

// Forget drops the table for m.
func (c *Cache) Forget(m *Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, m)
	if i := slices.Index(c.order, m); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}
