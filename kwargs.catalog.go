package kwargs

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// StoredTemplate is a named template persisted in a Catalog together with
// the parameter names it declares.
type StoredTemplate struct {
	Name        string    `yaml:"name"`
	Source      string    `yaml:"source"`
	Names       []string  `yaml:"names"`
	Description string    `yaml:"description,omitempty"`
	CreatedAt   time.Time `yaml:"created_at"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}

// Catalog stores named templates. Implementations must be safe for
// concurrent use.
type Catalog interface {
	// Put creates or replaces the template called tmpl.Name. CreatedAt is
	// kept on replacement and UpdatedAt is refreshed. Both are written back
	// to tmpl.
	Put(ctx context.Context, tmpl *StoredTemplate) error

	// Get returns the template called name, or a template-not-found error.
	Get(ctx context.Context, name string) (*StoredTemplate, error)

	// Delete removes the template called name, or returns a
	// template-not-found error.
	Delete(ctx context.Context, name string) error

	// List returns all template names in ascending order.
	List(ctx context.Context) ([]string, error)

	// Close releases resources. Further calls fail.
	Close() error
}

// CatalogDriver opens a Catalog from a driver-specific connection string.
type CatalogDriver interface {
	Open(connectionString string) (Catalog, error)
}

var (
	catalogDriversMu sync.RWMutex
	catalogDrivers   = make(map[string]CatalogDriver)
)

// RegisterCatalogDriver registers a catalog driver by name.
// This is typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func RegisterCatalogDriver(name string, driver CatalogDriver) {
	catalogDriversMu.Lock()
	defer catalogDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilCatalogDriver)
	}
	if _, exists := catalogDrivers[name]; exists {
		panic(ErrMsgDriverAlreadyRegistered + ": " + name)
	}
	catalogDrivers[name] = driver
}

// OpenCatalog opens a catalog using the named driver.
//
//	catalog, err := kwargs.OpenCatalog("memory", "")
//	catalog, err := kwargs.OpenCatalog("filesystem", "/var/lib/templates")
//	catalog, err := kwargs.OpenCatalog("postgres", "postgres://...")
func OpenCatalog(driverName, connectionString string) (Catalog, error) {
	catalogDriversMu.RLock()
	driver, ok := catalogDrivers[driverName]
	catalogDriversMu.RUnlock()

	if !ok {
		return nil, NewCatalogError(ErrMsgCatalogDriverNotFound, nil).
			WithMetadata(MetaKeyDriver, driverName)
	}
	return driver.Open(connectionString)
}

// ListCatalogDrivers returns the names of all registered drivers, sorted.
func ListCatalogDrivers() []string {
	catalogDriversMu.RLock()
	defer catalogDriversMu.RUnlock()

	names := make([]string, 0, len(catalogDrivers))
	for name := range catalogDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateStoredTemplate checks a template before it is written
func validateStoredTemplate(tmpl *StoredTemplate) error {
	if tmpl == nil {
		return NewCatalogError(ErrMsgNilStoredTemplate, nil)
	}
	if strings.TrimSpace(tmpl.Name) == "" {
		return NewCatalogError(ErrMsgEmptyTemplateName, nil)
	}
	for i, name := range tmpl.Names {
		if name == "" {
			return NewEmptyNameError(i)
		}
	}
	return nil
}

func newCatalogClosedError() error {
	return NewCatalogError(ErrMsgCatalogClosed, nil)
}

func copyStoredTemplate(tmpl *StoredTemplate) *StoredTemplate {
	if tmpl == nil {
		return nil
	}
	clone := *tmpl
	clone.Names = copyStringSlice(tmpl.Names)
	return &clone
}

func copyStringSlice(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
