package kwargs

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryCatalog is an in-memory implementation of Catalog.
// It is primarily intended for testing and for short-lived processes.
type MemoryCatalog struct {
	mu        sync.RWMutex
	templates map[string]*StoredTemplate
	closed    bool
}

// MemoryCatalogDriver is the driver for creating MemoryCatalog instances.
type MemoryCatalogDriver struct{}

func init() {
	RegisterCatalogDriver(CatalogDriverNameMemory, &MemoryCatalogDriver{})
}

// Open creates a new MemoryCatalog. The connection string is ignored.
func (d *MemoryCatalogDriver) Open(connectionString string) (Catalog, error) {
	return NewMemoryCatalog(), nil
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		templates: make(map[string]*StoredTemplate),
	}
}

// Put creates or replaces a template.
func (c *MemoryCatalog) Put(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateStoredTemplate(tmpl); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return newCatalogClosedError()
	}

	now := time.Now()
	stored := copyStoredTemplate(tmpl)
	stored.CreatedAt = now
	if existing, ok := c.templates[tmpl.Name]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	stored.UpdatedAt = now
	c.templates[tmpl.Name] = stored

	tmpl.CreatedAt = stored.CreatedAt
	tmpl.UpdatedAt = stored.UpdatedAt
	return nil
}

// Get returns a copy of the template called name.
func (c *MemoryCatalog) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, newCatalogClosedError()
	}

	tmpl, ok := c.templates[name]
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}
	return copyStoredTemplate(tmpl), nil
}

// Delete removes the template called name.
func (c *MemoryCatalog) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return newCatalogClosedError()
	}

	if _, ok := c.templates[name]; !ok {
		return NewTemplateNotFoundError(name)
	}
	delete(c.templates, name)
	return nil
}

// List returns all template names in ascending order.
func (c *MemoryCatalog) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, newCatalogClosedError()
	}

	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close marks the catalog closed and drops its contents.
func (c *MemoryCatalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.templates = nil
	return nil
}
